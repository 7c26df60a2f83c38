package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/Thiht/go-command"
)

func CurrentHandler(stdout, stderr io.Writer) command.Handler {
	return func(ctx context.Context, flagSet *flag.FlagSet, _ []string) int {
		m := newManager(flagSet)
		current, err := m.CurrentVersion()
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		fmt.Fprintln(stdout, current)
		return 0
	}
}

func VersionHandler(stdout io.Writer, version string) command.Handler {
	return func(context.Context, *flag.FlagSet, []string) int {
		fmt.Fprintln(stdout, "bumpversion CLI version", version)
		return 0
	}
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/Thiht/go-command"
	bumpversion "github.com/spectra-logger/bumpversion/pkg"
)

// RefsHandler lists the version references found in the files given as
// arguments. With -check it fails when a reference differs from the current
// version.
func RefsHandler(stdout, stderr io.Writer) command.Handler {
	return func(ctx context.Context, flagSet *flag.FlagSet, args []string) int {
		if len(args) == 0 {
			fmt.Fprintln(stderr, "Error: at least one file is required")
			return 1
		}

		m := newManager(flagSet)
		current, err := m.CurrentVersion()
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		check := command.Lookup[bool](flagSet, "check")

		stale := 0
		for _, arg := range args {
			path := joinRoot(m.Root, arg)
			refs, err := bumpversion.ScanVersionRefs(path)
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
			slog.DebugContext(ctx, "scanned file", slog.String("file", path), slog.Int("refs", len(refs)))

			for _, r := range refs {
				mark := " "
				if r.Version != current {
					mark = "!"
					stale++
				}
				fmt.Fprintf(stdout, "%s %s:%d: %s (%s)\n", mark, arg, r.Line, r.Version, r.Pattern)
			}
		}

		if check && stale > 0 {
			fmt.Fprintf(stderr, "Error: %d reference(s) differ from current version %s\n", stale, current)
			return 1
		}
		return 0
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Thiht/go-command"
	"github.com/spectra-logger/bumpversion/cmd"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cmd.LogLevel})))

	root := command.Root().Help(`Bumps VERSION_NAME in gradle.properties across all Spectra Logger packages.

Usage:
  bumpversion bump -patch
  bumpversion bump -from 0.0.1 -to 0.0.2
  bumpversion bump -snapshot -dry-run
  bumpversion bump -minor -bump-file README.md -commit
  bumpversion current
  bumpversion refs -check README.md CHANGELOG.md`)

	root.SubCommand("bump").
		Action(cmd.BumpHandler(os.Stdout, os.Stderr)).
		Flags(cmd.BumpFlags).
		Help("Bump the version (exactly one of -to, -major, -minor, -patch, -snapshot)")

	root.SubCommand("current").
		Action(cmd.CurrentHandler(os.Stdout, os.Stderr)).
		Flags(cmd.ProjectFlags).
		Help("Print the current version")

	root.SubCommand("refs").
		Action(cmd.RefsHandler(os.Stdout, os.Stderr)).
		Flags(cmd.RefsFlags).
		Help("List version references in the given files")

	root.SubCommand("version").
		Action(cmd.VersionHandler(os.Stdout, Version)).
		Help("Show CLI version and exit")

	root.Execute(context.Background())
}

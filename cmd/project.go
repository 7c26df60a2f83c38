package cmd

import (
	"flag"
	"log/slog"
	"path/filepath"

	"github.com/Thiht/go-command"
	bumpversion "github.com/spectra-logger/bumpversion/pkg"
)

// newManager builds a Manager from the project flags.
func newManager(flagSet *flag.FlagSet) *bumpversion.Manager {
	if command.Lookup[bool](flagSet, "verbose") {
		LogLevel.Set(slog.LevelDebug)
	}

	root := command.Lookup[string](flagSet, "root")
	m := bumpversion.NewManager(root)
	m.UsePropertiesFile(bumpversion.PropertiesFile{
		Path: joinRoot(root, command.Lookup[string](flagSet, "properties")),
		Key:  command.Lookup[string](flagSet, "key"),
	})
	return m
}

func joinRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

package cmd

import (
	"flag"
	"fmt"
	"log/slog"
)

// LogLevel is the level of the default slog handler; -verbose lowers it to debug.
var LogLevel = func() *slog.LevelVar {
	var lv slog.LevelVar
	lv.Set(slog.LevelWarn)
	return &lv
}()

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint(*s)
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func (s *stringList) Get() any {
	return []string(*s)
}

// ProjectFlags are shared by every command operating on a project.
func ProjectFlags(flagSet *flag.FlagSet) {
	flagSet.String("root", ".", "Path to the project root containing gradle.properties")
	flagSet.String("properties", "gradle.properties", "Properties file holding the version, relative to -root unless absolute")
	flagSet.String("key", "VERSION_NAME", "Properties key holding the version")
	flagSet.Bool("verbose", false, "Enable debug logging")
}

func BumpFlags(flagSet *flag.FlagSet) {
	ProjectFlags(flagSet)
	flagSet.String("to", "", "Explicit target version (e.g. 0.0.2)")
	flagSet.Bool("major", false, "Bump major version")
	flagSet.Bool("minor", false, "Bump minor version")
	flagSet.Bool("patch", false, "Bump patch version")
	flagSet.Bool("snapshot", false, "Bump patch and add -SNAPSHOT suffix")
	flagSet.String("from", "", "Expected current version; the bump is refused if it differs")
	flagSet.Bool("dry-run", false, "Show what would change without applying")
	flagSet.Var(&stringList{}, "bump-file", "Additional file whose references to the old version are bumped. May be repeated.")
	flagSet.String("validation-script", "scripts/sync-versions.sh", "Script run after the bump, relative to -root; empty to skip")
	flagSet.Bool("commit", false, "Commit the bumped files and tag the release with git")
}

func RefsFlags(flagSet *flag.FlagSet) {
	ProjectFlags(flagSet)
	flagSet.Bool("check", false, "Fail if any reference differs from the current version")
}

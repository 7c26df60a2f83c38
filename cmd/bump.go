package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Thiht/go-command"
	bumpversion "github.com/spectra-logger/bumpversion/pkg"
)

// BumpHandler bumps the project version. It exits with 1 on any failure,
// printing the reason to stderr.
func BumpHandler(stdout, stderr io.Writer) command.Handler {
	return func(ctx context.Context, flagSet *flag.FlagSet, args []string) int {
		if len(args) > 0 {
			fmt.Fprintf(stderr, "Error: unexpected arguments %v; flags must be specified before positional arguments\n", args)
			return 1
		}

		m := newManager(flagSet)
		m.BumpFiles = command.Lookup[[]string](flagSet, "bump-file")
		m.ValidationScript = command.Lookup[string](flagSet, "validation-script")

		req := bumpversion.BumpRequest{
			To:       command.Lookup[string](flagSet, "to"),
			Major:    command.Lookup[bool](flagSet, "major"),
			Minor:    command.Lookup[bool](flagSet, "minor"),
			Patch:    command.Lookup[bool](flagSet, "patch"),
			Snapshot: command.Lookup[bool](flagSet, "snapshot"),
			From:     command.Lookup[string](flagSet, "from"),
		}
		dryRun := command.Lookup[bool](flagSet, "dry-run")
		commit := command.Lookup[bool](flagSet, "commit")

		if dryRun {
			meta, err := m.DryRun(req)
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
			fmt.Fprintln(stdout, "[DRY RUN] Changes would be:")
			fmt.Fprintf(stdout, "  %s: %s=%s -> %s=%s\n", m.Properties.Path, m.Properties.Key, meta.OldVersion, m.Properties.Key, meta.NewVersion)
			printSummary(stdout, meta, false)
			return 0
		}

		var release *bumpversion.Release
		if commit {
			var err error
			if release, err = bumpversion.OpenRelease(m.Root); err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
			allowed := []string{m.Properties.Path}
			for _, bf := range m.BumpFiles {
				allowed = append(allowed, joinRoot(m.Root, bf))
			}
			if err := release.CheckClean(allowed); err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
		}

		meta, err := m.Run(ctx, req)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		if m.ValidationScript != "" && !meta.Validation.Success {
			fmt.Fprintln(stderr, "Warning: validation script had issues")
		}

		if release != nil {
			hash, err := release.CommitAndTag(meta.NewVersion, meta.UpdatedFiles)
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
			slog.DebugContext(ctx, "created release commit", slog.String("commit", hash.String()), slog.String("tag", "v"+meta.NewVersion))
		}

		printSummary(stdout, meta, release != nil)
		return 0
	}
}

func printSummary(w io.Writer, meta bumpversion.VersionMeta, committed bool) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "VERSION BUMP SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Old version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New version: %s\n", meta.NewVersion)
	fmt.Fprintf(w, "Bump type:   %s\n", meta.BumpType)
	if len(meta.UpdatedFiles) > 0 {
		fmt.Fprintln(w, "Files:")
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	if committed {
		fmt.Fprintf(w, "  1. Push: git push origin v%s && git push\n", meta.NewVersion)
	} else {
		fmt.Fprintln(w, "  1. Verify changes: git diff")
		fmt.Fprintf(w, "  2. Commit: git add . && git commit -m 'release: bump to %s'\n", meta.NewVersion)
		fmt.Fprintf(w, "  3. Tag: git tag -a v%s -m 'Release %s'\n", meta.NewVersion, meta.NewVersion)
		fmt.Fprintf(w, "  4. Push: git push origin v%s && git push\n", meta.NewVersion)
	}
	fmt.Fprintln(w, rule)
}

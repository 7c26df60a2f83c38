// Package main implements the bumpversion CLI tool.
//
// The bumpversion tool bumps the release version of the Spectra Logger
// repository. The version lives in a single place, the VERSION_NAME key of
// gradle.properties; the Gradle builds and Swift packages derive from it.
// Only that line is rewritten, every other byte of the file is preserved.
//
// Command Usage:
//
//	bumpversion <command> [flags]
//
// Commands:
//
//	bump:     Bumps the version. Exactly one of -to, -major, -minor, -patch or -snapshot is required.
//	current:  Prints the current version.
//	refs:     Lists version references found in the given files.
//	version:  Prints the CLI version.
//
// Flags of bump:
//
//	-root:              Project root (defaults to ".").
//	-to:                Explicit target version, used verbatim.
//	-major:             1.2.3 → 2.0.0
//	-minor:             1.2.3 → 1.3.0
//	-patch:             1.2.3 → 1.2.4
//	-snapshot:          1.2.3 → 1.2.4-SNAPSHOT
//	-from:              Expected current version; the bump is refused when it differs.
//	-dry-run:           Shows what would change without writing anything.
//	-bump-file:         Additional file whose references to the old version are bumped. May be repeated.
//	-validation-script: Script run after the bump (defaults to scripts/sync-versions.sh).
//	                    A failing script is reported as a warning and does not undo the bump.
//	-commit:            Commits the bumped files as "release: bump to X" and tags vX.
//
// Before bumping, gradle.properties, shared/build.gradle.kts,
// SpectraLogger/Package.swift and SpectraLoggerUI/Package.swift must exist.
//
// Examples:
//
//	# Bump the patch version (e.g. 0.0.1 → 0.0.2)
//	bumpversion bump -patch
//
//	# Start the next snapshot (e.g. 0.0.1 → 0.0.2-SNAPSHOT)
//	bumpversion bump -snapshot
//
//	# Set an explicit version, refusing if the current one is not 0.0.1
//	bumpversion bump -from 0.0.1 -to 0.1.0-beta1
//
//	# Bump the README install snippets too, then commit and tag
//	bumpversion bump -minor -bump-file README.md -commit
//
//	# Fail when a README references a version other than the current one
//	bumpversion refs -check README.md
//
// Exit status is 0 on success and 1 on any failure, with the reason printed
// to stderr.
//
// The tool does not lock gradle.properties; running two bumps on the same
// checkout at once races.
package main

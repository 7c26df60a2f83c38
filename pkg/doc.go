// Package bumpversion manages the release version of the Spectra Logger
// repository.
//
// It provides functionalities for:
//   - Parsing, formatting and ordering major.minor.patch[-suffix] versions.
//   - Bumping a version by major, minor, patch or snapshot, or replacing it with an explicit target.
//   - Reading and rewriting the VERSION_NAME line of gradle.properties, leaving every other byte untouched.
//   - Rewriting references to the old version in companion files (READMEs, changelogs, manifests).
//   - Running the external version sync check, and committing and tagging the release with git.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//
//	    bumpversion "github.com/spectra-logger/bumpversion/pkg"
//	)
//
//	func main() {
//	    m := bumpversion.NewManager(".")
//	    meta, err := m.Run(context.Background(), bumpversion.BumpRequest{Patch: true})
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package bumpversion

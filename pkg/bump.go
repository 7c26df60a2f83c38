package bumpversion

import (
	"fmt"
	"math"
)

// BumpMode selects how a new version is derived from the current one.
type BumpMode int

const (
	BumpExplicit BumpMode = iota + 1
	BumpMajor
	BumpMinor
	BumpPatch
	BumpSnapshot
)

func (m BumpMode) String() string {
	switch m {
	case BumpExplicit:
		return "explicit"
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpSnapshot:
		return "snapshot"
	}
	return fmt.Sprintf("BumpMode(%d)", int(m))
}

// BumpRequest describes a version bump as selected by a caller. Exactly one of
// To, Major, Minor, Patch or Snapshot must be set.
type BumpRequest struct {
	// To is an explicit target version, used verbatim.
	To string

	Major    bool
	Minor    bool
	Patch    bool
	Snapshot bool

	// From, when set, must equal the current version or the bump is refused.
	From string
}

// Mode returns the single bump mode selected by r.
func (r BumpRequest) Mode() (BumpMode, error) {
	var modes []BumpMode
	if r.To != "" {
		modes = append(modes, BumpExplicit)
	}
	if r.Major {
		modes = append(modes, BumpMajor)
	}
	if r.Minor {
		modes = append(modes, BumpMinor)
	}
	if r.Patch {
		modes = append(modes, BumpPatch)
	}
	if r.Snapshot {
		modes = append(modes, BumpSnapshot)
	}
	if len(modes) != 1 {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidArguments, len(modes))
	}
	return modes[0], nil
}

// CheckExpected fails with ErrVersionMismatch when r.From is set and differs
// from current. The comparison is on the raw strings.
func (r BumpRequest) CheckExpected(current string) error {
	if r.From != "" && r.From != current {
		return fmt.Errorf("%w: from version %s doesn't match current %s", ErrVersionMismatch, r.From, current)
	}
	return nil
}

// Bump derives the next version from current according to r.
// Major, minor and patch bumps reset lower fields and clear the suffix;
// a snapshot bump increments patch and sets the SNAPSHOT suffix; an explicit
// bump returns the parsed target and ignores current.
func Bump(current SemanticVersion, r BumpRequest) (SemanticVersion, error) {
	mode, err := r.Mode()
	if err != nil {
		return SemanticVersion{}, err
	}

	switch mode {
	case BumpExplicit:
		return ParseVersion(r.To)
	case BumpMajor:
		major, err := increment("major", current.Major)
		if err != nil {
			return SemanticVersion{}, err
		}
		return SemanticVersion{Major: major}, nil
	case BumpMinor:
		minor, err := increment("minor", current.Minor)
		if err != nil {
			return SemanticVersion{}, err
		}
		return SemanticVersion{Major: current.Major, Minor: minor}, nil
	case BumpPatch, BumpSnapshot:
		patch, err := increment("patch", current.Patch)
		if err != nil {
			return SemanticVersion{}, err
		}
		next := SemanticVersion{Major: current.Major, Minor: current.Minor, Patch: patch}
		if mode == BumpSnapshot {
			next.Suffix = SnapshotSuffix
		}
		return next, nil
	}
	return SemanticVersion{}, fmt.Errorf("unknown bump mode: %v", mode)
}

// increment returns field+1, refusing to wrap around.
func increment(name string, field int) (int, error) {
	if field == math.MaxInt {
		return 0, fmt.Errorf("%w: %s version %d cannot be incremented", ErrInvalidFormat, name, field)
	}
	return field + 1, nil
}

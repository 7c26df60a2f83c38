package bumpversion

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// SnapshotSuffix is the suffix attached by a snapshot bump.
const SnapshotSuffix = "SNAPSHOT"

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(.+))?$`)

// SemanticVersion is a major.minor.patch[-suffix] version. An empty Suffix means
// the version carries no suffix.
type SemanticVersion struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// ParseVersion parses text of the form "1.2.3" or "1.2.3-suffix".
// Everything after the first "-" is kept verbatim as the suffix.
func ParseVersion(text string) (SemanticVersion, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	var v SemanticVersion
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return SemanticVersion{}, fmt.Errorf("%w: major of %q: %v", ErrInvalidFormat, text, err)
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return SemanticVersion{}, fmt.Errorf("%w: minor of %q: %v", ErrInvalidFormat, text, err)
	}
	if v.Patch, err = strconv.Atoi(m[3]); err != nil {
		return SemanticVersion{}, fmt.Errorf("%w: patch of %q: %v", ErrInvalidFormat, text, err)
	}
	v.Suffix = m[4]
	return v, nil
}

// FormatVersion builds the canonical text form. The suffix is appended
// only when it is non-empty.
func FormatVersion(major, minor, patch int, suffix string) string {
	base := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if suffix != "" {
		return base + "-" + suffix
	}
	return base
}

func (v SemanticVersion) String() string {
	return FormatVersion(v.Major, v.Minor, v.Patch, v.Suffix)
}

// Compare orders two versions the way semantic versioning does: numeric
// fields first, then a suffixed version sorts before the same version without
// one. Suffixes are compared as semver prerelease identifiers when both
// versions are valid semver, and lexically otherwise.
func (v SemanticVersion) Compare(o SemanticVersion) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.Suffix == o.Suffix:
		return 0
	case v.Suffix == "":
		return 1
	case o.Suffix == "":
		return -1
	}
	a, b := "v"+v.String(), "v"+o.String()
	if semver.IsValid(a) && semver.IsValid(b) {
		return semver.Compare(a, b)
	}
	return strings.Compare(v.Suffix, o.Suffix)
}

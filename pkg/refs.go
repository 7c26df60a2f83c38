package bumpversion

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

// RefPattern recognises one kind of version reference. Pattern must have three
// capture groups: the text before the version, the version, and the text after.
type RefPattern struct {
	Pattern *regexp.Regexp
	Name    string
}

const refVersion = `(\d+\.\d+\.\d+(?:-[a-zA-Z0-9.-]+)?)`

// RefPatterns are the version references found in the companion files of a
// release: build scripts, Swift package manifests, READMEs and changelogs.
var RefPatterns = []RefPattern{
	{
		Pattern: regexp.MustCompile(`("[\w.-]+:[\w.-]+:)` + refVersion + `(")`),
		Name:    "Gradle dependency coordinate",
	},
	{
		Pattern: regexp.MustCompile(`((?:from|exact):\s*"v?)` + refVersion + `(")`),
		Name:    "SwiftPM package requirement",
	},
	{
		Pattern: regexp.MustCompile(`(?i)(VERSION(?:_NAME)?\s*[:=]\s*["']?v?)` + refVersion + `(["']?)`),
		Name:    "VERSION assignment",
	},
	{
		Pattern: regexp.MustCompile(`("version"\s*:\s*"v?)` + refVersion + `(")`),
		Name:    "JSON version field",
	},
	{
		Pattern: regexp.MustCompile(`(^#+\s*(?:[Vv]ersion\s+)?\[?v?)` + refVersion + `(\]?)`),
		Name:    "markdown version header",
	},
	{
		Pattern: regexp.MustCompile(`(/download/v?)` + refVersion + `(/)`),
		Name:    "release download URL",
	},
}

// VersionRef is a version reference found in a file. Start and End delimit the
// version within its line.
type VersionRef struct {
	Line    int
	Start   int
	End     int
	Version string
	Pattern string
}

// ScanVersionRefs returns every version reference in the file at path, in line
// order. A version matched by several patterns is reported once, under the
// first pattern that matched it.
func ScanVersionRefs(path string) ([]VersionRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	var refs []VersionRef
	for i, line := range strings.Split(string(data), "\n") {
		refs = append(refs, scanLine(i+1, line)...)
	}
	return refs, nil
}

func scanLine(lineNum int, line string) []VersionRef {
	type span struct{ start, end int }
	seen := make(map[span]bool)

	var refs []VersionRef
	for _, rp := range RefPatterns {
		for _, m := range rp.Pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 8 {
				continue
			}
			s := span{m[4], m[5]}
			if seen[s] {
				continue
			}
			seen[s] = true
			refs = append(refs, VersionRef{
				Line:    lineNum,
				Start:   m[4],
				End:     m[5],
				Version: line[m[4]:m[5]],
				Pattern: rp.Name,
			})
		}
	}
	slices.SortFunc(refs, func(a, b VersionRef) int { return a.Start - b.Start })

	// Drop overlapping spans so replacements never splice into each other.
	kept := refs[:0]
	for _, r := range refs {
		if len(kept) > 0 && r.Start < kept[len(kept)-1].End {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// ReplaceVersionRefs rewrites every reference to oldVersion in the file at
// path with newVersion and returns how many were replaced. References to other
// versions are left alone. The file is only written when something changed.
func ReplaceVersionRefs(path, oldVersion, newVersion string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	replaced := 0
	for i, line := range lines {
		refs := scanLine(i+1, line)
		// Right to left so earlier offsets stay valid.
		for j := len(refs) - 1; j >= 0; j-- {
			r := refs[j]
			if r.Version != oldVersion {
				continue
			}
			line = line[:r.Start] + newVersion + line[r.End:]
			replaced++
		}
		lines[i] = line
	}
	if replaced == 0 {
		return 0, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("writing file %s: %w", path, err)
	}
	return replaced, nil
}

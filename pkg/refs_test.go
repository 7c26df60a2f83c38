package bumpversion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanVersionRefs(t *testing.T) {
	type ref struct {
		version string
		line    int
		pattern string
	}
	tests := []struct {
		name     string
		content  string
		expected []ref
	}{
		{
			name: "README.md",
			content: `# Spectra Logger

` + "```kotlin" + `
implementation("com.spectra.logger:spectra-core:0.0.1")
` + "```" + `

` + "```swift" + `
.package(url: "https://github.com/example/spectra-logger", from: "0.0.1")
` + "```",
			expected: []ref{
				{"0.0.1", 4, "Gradle dependency coordinate"},
				{"0.0.1", 8, "SwiftPM package requirement"},
			},
		},
		{
			name: "CHANGELOG.md",
			content: `# Changelog

## [0.0.2-SNAPSHOT]
- Unreleased

## [0.0.1]
- Initial release`,
			expected: []ref{
				{"0.0.2-SNAPSHOT", 3, "markdown version header"},
				{"0.0.1", 6, "markdown version header"},
			},
		},
		{
			name:    "Package.swift binary target",
			content: `url: "https://github.com/example/spectra-logger/releases/download/v0.0.1/SpectraLogger.xcframework.zip",`,
			expected: []ref{
				{"0.0.1", 1, "release download URL"},
			},
		},
		{
			name:    "properties",
			content: "GROUP=com.spectra.logger\nVERSION_NAME=1.2.3\n",
			expected: []ref{
				{"1.2.3", 2, "VERSION assignment"},
			},
		},
		{
			name:    "package.json",
			content: "{\n  \"name\": \"spectra\",\n  \"version\": \"1.0.0\"\n}",
			expected: []ref{
				{"1.0.0", 3, "JSON version field"},
			},
		},
		{
			name:    "no versions",
			content: "// swift-tools-version: 5.9\nlet package = Package(name: \"SpectraLogger\")\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file")
			writeFile(t, path, tc.content)

			refs, err := ScanVersionRefs(path)
			require.NoError(t, err)
			require.Len(t, refs, len(tc.expected))
			for i, exp := range tc.expected {
				assert.Equal(t, exp.version, refs[i].Version)
				assert.Equal(t, exp.line, refs[i].Line)
				assert.Equal(t, exp.pattern, refs[i].Pattern)
			}
		})
	}
}

func TestScanVersionRefsMissingFile(t *testing.T) {
	_, err := ScanVersionRefs(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestReplaceVersionRefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, `# Spectra Logger

implementation("com.spectra.logger:spectra-core:0.0.1")
implementation("io.ktor:ktor-client-core:2.3.7")
.package(url: "https://github.com/example/spectra-logger", exact: "0.0.1")

## [0.0.1]
`)

	n, err := ReplaceVersionRefs(path, "0.0.1", "0.0.2")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, `# Spectra Logger

implementation("com.spectra.logger:spectra-core:0.0.2")
implementation("io.ktor:ktor-client-core:2.3.7")
.package(url: "https://github.com/example/spectra-logger", exact: "0.0.2")

## [0.0.2]
`, readFile(t, path))
}

func TestReplaceVersionRefsKeepsPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.md")
	writeFile(t, path, "VERSION=v1.0.0\r\nsee /download/v1.0.0/lib.zip\r\n")

	n, err := ReplaceVersionRefs(path, "1.0.0", "1.1.0-SNAPSHOT")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "VERSION=v1.1.0-SNAPSHOT\r\nsee /download/v1.1.0-SNAPSHOT/lib.zip\r\n", readFile(t, path))
}

func TestReplaceVersionRefsNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	content := "implementation(\"com.spectra.logger:spectra-core:0.0.3\")\n"
	writeFile(t, path, content)

	n, err := ReplaceVersionRefs(path, "0.0.1", "0.0.2")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, content, readFile(t, path))
}

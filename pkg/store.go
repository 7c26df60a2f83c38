package bumpversion

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// VersionKey is the properties key holding the library version.
const VersionKey = "VERSION_NAME"

// PropertiesFile is a line-oriented KEY=VALUE file holding a version under Key.
//
// The file is read and written without locking; two concurrent bumps of the
// same file race and the last write wins.
type PropertiesFile struct {
	Path string
	Key  string
}

// NewPropertiesFile returns a PropertiesFile for path using VersionKey.
func NewPropertiesFile(path string) PropertiesFile {
	return PropertiesFile{Path: path, Key: VersionKey}
}

func (p PropertiesFile) key() string {
	if p.Key == "" {
		return VersionKey
	}
	return p.Key
}

// Read returns the trimmed value of the first line starting with "KEY=".
func (p PropertiesFile) Read() (string, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, p.Path)
		}
		return "", fmt.Errorf("reading %s: %w", p.Path, err)
	}
	defer f.Close()

	prefix := p.key() + "="
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", p.Path, err)
	}
	return "", fmt.Errorf("%w: %s not found in %s", ErrNoSuchVersionLine, p.key(), p.Path)
}

// Apply rewrites the line "KEY=oldVersion" to "KEY=newVersion". It targets the
// first line starting with "KEY=", the one Read returns, and every other byte
// of the file is kept. That line must be exactly "KEY=oldVersion" up to a line
// break, whitespace or the end of the file; otherwise Apply fails with
// ErrNoSuchVersionLine and leaves the file alone.
func (p PropertiesFile) Apply(oldVersion, newVersion string) error {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, p.Path)
		}
		return fmt.Errorf("reading %s: %w", p.Path, err)
	}

	oldLine := []byte(p.key() + "=" + oldVersion)
	at := keyLine(data, []byte(p.key()+"="))
	if at < 0 || !matchesLine(data[at:], oldLine) {
		return fmt.Errorf("%w: %q not found in %s", ErrNoSuchVersionLine, oldLine, p.Path)
	}

	out := make([]byte, 0, len(data)-len(oldLine)+len(p.key())+1+len(newVersion))
	out = append(out, data[:at]...)
	out = append(out, p.key()+"="+newVersion...)
	out = append(out, data[at+len(oldLine):]...)

	info, err := os.Stat(p.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", p.Path, err)
	}
	if err := os.WriteFile(p.Path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", p.Path, err)
	}
	return nil
}

// keyLine returns the offset of the first line in data starting with prefix.
func keyLine(data, prefix []byte) int {
	for off := 0; off < len(data); {
		if bytes.HasPrefix(data[off:], prefix) {
			return off
		}
		nl := bytes.IndexByte(data[off:], '\n')
		if nl < 0 {
			return -1
		}
		off += nl + 1
	}
	return -1
}

// matchesLine reports whether rest starts with line followed by a line break,
// whitespace or EOF.
func matchesLine(rest, line []byte) bool {
	if !bytes.HasPrefix(rest, line) {
		return false
	}
	return len(rest) == len(line) || strings.IndexByte("\r\n \t", rest[len(line)]) >= 0
}

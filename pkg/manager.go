package bumpversion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Default project layout of the Spectra Logger repository.
const (
	DefaultPropertiesFile   = "gradle.properties"
	DefaultValidationScript = "scripts/sync-versions.sh"
)

// DefaultRequiredFiles must exist before a bump is attempted.
var DefaultRequiredFiles = []string{
	DefaultPropertiesFile,
	filepath.Join("shared", "build.gradle.kts"),
	filepath.Join("SpectraLogger", "Package.swift"),
	filepath.Join("SpectraLoggerUI", "Package.swift"),
}

// VersionMeta holds metadata about a version bump.
type VersionMeta struct {
	OldVersion   string
	NewVersion   string
	BumpType     string
	UpdatedFiles []string // Files written, or that would be written on a dry run.
	Validation   ValidationResult
}

// Manager bumps the version of a project stored in its properties file.
// The current version is read from disk on every call.
type Manager struct {
	Root             string
	Properties       PropertiesFile
	RequiredFiles    []string // Relative to Root.
	ValidationScript string   // Relative to Root; empty disables validation.
	// BumpFiles are companion files whose references to the old version are
	// rewritten after the properties file.
	BumpFiles []string
	Logger    *slog.Logger
}

// NewManager returns a Manager for the project rooted at root using the
// default layout.
func NewManager(root string) *Manager {
	return &Manager{
		Root:             root,
		Properties:       NewPropertiesFile(filepath.Join(root, DefaultPropertiesFile)),
		RequiredFiles:    append([]string(nil), DefaultRequiredFiles...),
		ValidationScript: DefaultValidationScript,
		Logger:           slog.Default(),
	}
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

// UsePropertiesFile stores the version in p instead of the default properties
// file. p also replaces the default file among the required files.
func (m *Manager) UsePropertiesFile(p PropertiesFile) {
	defaultPath := m.path(DefaultPropertiesFile)
	for i, rel := range m.RequiredFiles {
		if m.path(rel) == defaultPath {
			m.RequiredFiles[i] = p.Path
		}
	}
	m.Properties = p
}

func (m *Manager) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, rel)
}

// ValidateFilesExist fails with ErrFileNotFound naming the first required file
// that is missing.
func (m *Manager) ValidateFilesExist() error {
	for _, rel := range m.RequiredFiles {
		p := m.path(rel)
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrFileNotFound, p)
			}
			return fmt.Errorf("stat %s: %w", p, err)
		}
	}
	m.logger().Debug("all required files exist", slog.Int("count", len(m.RequiredFiles)))
	return nil
}

// CurrentVersion reads the version currently stored in the properties file.
func (m *Manager) CurrentVersion() (string, error) {
	return m.Properties.Read()
}

// Plan reads the current version and computes the new one without writing
// anything. The expected-current check runs before the version is parsed.
// An explicit target is used as is, so a malformed current version does not
// prevent it.
func (m *Manager) Plan(req BumpRequest) (VersionMeta, error) {
	var meta VersionMeta

	current, err := m.CurrentVersion()
	if err != nil {
		return meta, err
	}
	meta.OldVersion = current
	m.logger().Debug("read current version", slog.String("version", current), slog.String("file", m.Properties.Path))

	if err := req.CheckExpected(current); err != nil {
		return meta, err
	}
	mode, err := req.Mode()
	if err != nil {
		return meta, err
	}

	var cur SemanticVersion
	if mode != BumpExplicit {
		if cur, err = ParseVersion(current); err != nil {
			return meta, err
		}
	}
	next, err := Bump(cur, req)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next.String()
	meta.BumpType = mode.String()

	if mode == BumpExplicit {
		if old, err := ParseVersion(current); err == nil && next.Compare(old) <= 0 {
			m.logger().Warn("explicit version does not move forward",
				slog.String("current", current), slog.String("target", meta.NewVersion))
		}
	}
	return meta, nil
}

// DryRun checks the required files and computes the bump, reporting the files
// that would change. Nothing is written.
func (m *Manager) DryRun(req BumpRequest) (VersionMeta, error) {
	if err := m.ValidateFilesExist(); err != nil {
		return VersionMeta{}, err
	}
	meta, err := m.Plan(req)
	if err != nil {
		return meta, err
	}

	meta.UpdatedFiles = []string{m.Properties.Path}
	for _, bf := range m.BumpFiles {
		refs, err := ScanVersionRefs(m.path(bf))
		if err != nil {
			m.logger().Warn("failed to scan bump file", slog.String("file", bf), slog.Any("error", err))
			continue
		}
		for _, r := range refs {
			if r.Version == meta.OldVersion {
				meta.UpdatedFiles = append(meta.UpdatedFiles, m.path(bf))
				break
			}
		}
	}
	return meta, nil
}

// Run checks the required files, bumps the version in the properties file,
// rewrites the bump files and runs the validation script. A failing
// validation is recorded in the result; it does not undo the bump.
func (m *Manager) Run(ctx context.Context, req BumpRequest) (VersionMeta, error) {
	if err := m.ValidateFilesExist(); err != nil {
		return VersionMeta{}, err
	}
	meta, err := m.Plan(req)
	if err != nil {
		return meta, err
	}

	if err := m.Properties.Apply(meta.OldVersion, meta.NewVersion); err != nil {
		return meta, err
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, m.Properties.Path)
	m.logger().Info("updated version", slog.String("file", m.Properties.Path),
		slog.String("old", meta.OldVersion), slog.String("new", meta.NewVersion))

	for _, bf := range m.BumpFiles {
		p := m.path(bf)
		n, err := ReplaceVersionRefs(p, meta.OldVersion, meta.NewVersion)
		if err != nil {
			m.logger().Warn("failed to bump version in file", slog.String("file", p), slog.Any("error", err))
			continue
		}
		if n == 0 {
			m.logger().Warn("no reference to the old version found", slog.String("file", p), slog.String("version", meta.OldVersion))
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, p)
	}

	if m.ValidationScript != "" {
		meta.Validation = RunValidationScript(ctx, m.Root, m.ValidationScript)
		switch {
		case meta.Validation.Skipped:
			m.logger().Warn(meta.Validation.Detail)
		case !meta.Validation.Success:
			m.logger().Warn("version validation failed", slog.String("detail", meta.Validation.Detail))
		default:
			m.logger().Info("version validation passed")
		}
	}
	return meta, nil
}

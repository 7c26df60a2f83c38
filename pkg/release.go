package bumpversion

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const defaultCommitter = "bumpversion"

// Release commits and tags a version bump in the git repository enclosing a
// project directory.
type Release struct {
	repo *git.Repository
	root string
}

// OpenRelease opens the git repository containing dir, searching parent
// directories for the .git directory.
func OpenRelease(dir string) (*Release, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	return &Release{repo: repo, root: wt.Filesystem.Root()}, nil
}

// relPath turns a path into a slash-separated path relative to the worktree.
func (r *Release) relPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", path, err)
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// CheckClean fails with ErrDirtyWorktree when files other than allowed have
// uncommitted changes, untracked files included.
func (r *Release) CheckClean(allowed []string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to check git status: %w", err)
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		rel, err := r.relPath(f)
		if err != nil {
			return err
		}
		allowedSet[rel] = struct{}{}
	}

	var disallowed []string
	for path, st := range status {
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		if _, ok := allowedSet[path]; !ok {
			disallowed = append(disallowed, path)
		}
	}
	if len(disallowed) > 0 {
		slices.Sort(disallowed)
		return fmt.Errorf("%w; uncommitted files not included in commit: %v", ErrDirtyWorktree, disallowed)
	}
	return nil
}

// CommitAndTag stages files, commits them with the message
// "release: bump to <version>" and creates the annotated tag v<version>.
func (r *Release) CommitAndTag(version string, files []string) (plumbing.Hash, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening worktree: %w", err)
	}
	for _, f := range files {
		rel, err := r.relPath(f)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		if _, err := wt.Add(rel); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("git add %s: %w", rel, err)
		}
	}

	sig, err := r.signature()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	hash, err := wt.Commit("release: bump to "+version, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("git commit failed: %w", err)
	}

	tag := "v" + version
	if _, err := r.repo.CreateTag(tag, hash, &git.CreateTagOptions{Tagger: sig, Message: "Release " + version}); err != nil {
		if errors.Is(err, git.ErrTagExists) {
			return hash, fmt.Errorf("git tag %s: tag already exists", tag)
		}
		return hash, fmt.Errorf("git tag %s failed: %w", tag, err)
	}
	return hash, nil
}

// HasTag reports whether the tag v<version> exists.
func (r *Release) HasTag(version string) (bool, error) {
	_, err := r.repo.Tag("v" + version)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// signature builds the commit identity from the repository and global git
// config, falling back to a fixed name when none is configured.
func (r *Release) signature() (*object.Signature, error) {
	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("reading git config: %w", err)
	}
	sig := &object.Signature{Name: cfg.User.Name, Email: cfg.User.Email, When: time.Now()}
	if sig.Name == "" {
		sig.Name = defaultCommitter
	}
	return sig, nil
}

package bumpversion

import "errors"

// Error kinds returned by this package. Callers should match them with errors.Is;
// the returned errors wrap these with the offending value.
var (
	ErrInvalidFormat     = errors.New("invalid version format")
	ErrInvalidArguments  = errors.New("must specify exactly one of explicit/major/minor/patch/snapshot")
	ErrVersionMismatch   = errors.New("version mismatch")
	ErrFileNotFound      = errors.New("required file not found")
	ErrNoSuchVersionLine = errors.New("version line not found")
	ErrDirtyWorktree     = errors.New("working directory is dirty")
)

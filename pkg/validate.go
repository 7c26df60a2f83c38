package bumpversion

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ValidationResult is the outcome of the external version sync check.
type ValidationResult struct {
	// Skipped is set when the script does not exist; Success is then false.
	Skipped bool
	Success bool
	Detail  string
}

// RunValidationScript runs "bash script" with root as working directory and
// waits for it. A relative script path is resolved against root. A missing
// script is reported as skipped rather than as a failure. The script runs
// once; its exit status becomes Success and its captured output Detail.
func RunValidationScript(ctx context.Context, root, script string) ValidationResult {
	path := script
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, script)
	}
	if _, err := os.Stat(path); err != nil {
		return ValidationResult{Skipped: true, Detail: fmt.Sprintf("%s not found, skipping validation", script)}
	}

	cmd := exec.CommandContext(ctx, "bash", path)
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return ValidationResult{Detail: detail}
	}
	return ValidationResult{Success: true, Detail: strings.TrimSpace(stdout.String())}
}

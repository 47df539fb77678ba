package ci

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// CommandRunner runs an external command in dir and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	//nolint:gosec // G204: arguments are revision names from the event payload.
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}

// Differ lists files changed between two revisions.
type Differ struct {
	runner CommandRunner
	logger titlecheck.Logger
}

// NewDiffer creates a Differ. Panics if runner or logger is nil.
func NewDiffer(runner CommandRunner, logger titlecheck.Logger) *Differ {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Differ{runner: runner, logger: logger}
}

// ChangedFiles returns the paths added, modified, renamed or copied in r,
// relative to the repository root, in git's order. Paths are read
// NUL-separated so names with quotes, backslashes or newlines come back
// verbatim.
func (d *Differ) ChangedFiles(ctx context.Context, workspace string, r DiffRange) ([]string, error) {
	args := []string{"diff", "--name-only", "-z", "--diff-filter=d", r.String()}
	d.logger.Verbose("git %s", strings.Join(args, " "))

	out, err := d.runner.Run(ctx, workspace, "git", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w: %w", r, titlecheck.ErrDiffFailed, err)
	}

	var files []string
	for _, name := range strings.Split(string(out), "\x00") {
		if name == "" {
			continue
		}
		files = append(files, name)
	}
	d.logger.Verbose("%d changed files in %s", len(files), r)
	return files, nil
}

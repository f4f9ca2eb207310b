// Package shell provides the recipe runner adapter over os/exec.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner by handing each recipe line to "sh -c".
// Recipe lines are opaque text at this layer; the shell owns word splitting,
// quoting, and redirections.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes one recipe line and returns its exit code. Standard output
// and error pass straight through to the invoking environment; the build
// engine observes nothing but the exit code.
func (r *Runner) Run(ctx context.Context, commandLine string) (int, error) {
	r.logger.Info(commandLine)

	cmd := exec.CommandContext(ctx, "sh", "-c", commandLine) //nolint:gosec // user provided recipe line
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		// The command never ran; report it with an impossible exit code.
		return -1, zerr.With(zerr.Wrap(err, "failed to start command"), "command", commandLine)
	}
	return 0, nil
}

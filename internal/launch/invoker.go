package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"mprog/internal/config"
)

// Invoker hands a generated configuration to the external multi-program
// launcher and waits for completion. The launcher's scheduling and failure
// isolation are an opaque black box; only its aggregate exit status comes
// back.
type Invoker struct {
	config *config.Config
}

// NewInvoker creates a new Invoker
func NewInvoker(cfg *config.Config) *Invoker {
	return &Invoker{config: cfg}
}

// Run blocks until the launcher finishes and returns its exit status. A
// non-zero status is not an error here; the caller propagates it verbatim.
// threads > 0 adds the per-task cpu hint and communicates the thread count
// to every spawned process through OMP_NUM_THREADS.
func (inv *Invoker) Run(ctx context.Context, configPath string, threads int) (int, error) {
	args := []string{}
	if threads > 0 {
		args = append(args, fmt.Sprintf("--cpus-per-task=%d", threads))
	}
	args = append(args, "--multi-prog", configPath)

	cmd := exec.CommandContext(ctx, inv.config.Launcher, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if threads > 0 {
		cmd.Env = append(cmd.Env, fmt.Sprintf("OMP_NUM_THREADS=%d", threads))
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("invoke %s: %w", inv.config.Launcher, err)
	}
	return 0, nil
}

// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

type (
	// CommandRunner runs an external tool with an explicit environment.
	// The production implementation wraps os/exec; tests substitute fakes
	// to observe which invocations the provisioner makes.
	CommandRunner interface {
		// Run executes name with args in dir, with exactly the given
		// environment. Output streams to the runner's writers.
		Run(ctx context.Context, env map[string]string, dir, name string, args ...string) error
	}

	execRunner struct {
		stdout io.Writer
		stderr io.Writer
	}
)

// NewExecRunner returns the os/exec-backed CommandRunner.
func NewExecRunner(stdout, stderr io.Writer) CommandRunner {
	return &execRunner{stdout: stdout, stderr: stderr}
}

func (r *execRunner) Run(ctx context.Context, env map[string]string, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = EnvToSlice(env)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

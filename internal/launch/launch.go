// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"easysql-launcher/internal/issue"
)

type (
	// Launcher runs the application entry point with the virtual
	// environment's interpreter.
	Launcher struct {
		// Interpreter is the venv Python executable.
		Interpreter string

		// Entrypoint is the application script, relative to WorkDir.
		Entrypoint string

		// WorkDir is the project root; the application runs from here.
		WorkDir string

		// Env is the activated environment, passed verbatim to the child.
		Env map[string]string

		// Stdin, Stdout, Stderr are wired through to the application.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of running the application.
	Result struct {
		// ExitCode is the application's exit status.
		ExitCode int

		// Error is set for launcher-side failures (entrypoint missing,
		// spawn failure). It is nil when the application itself merely
		// exited non-zero.
		Error error
	}
)

// Run launches the application and blocks until it exits. The application
// receives no arguments from the launcher.
func (l *Launcher) Run(ctx context.Context) *Result {
	script := filepath.Join(l.WorkDir, l.Entrypoint)
	if _, err := os.Stat(script); err != nil {
		return &Result{ExitCode: 1, Error: issue.NewErrorContext().
			WithOperation("launch easySql").
			WithResource(script).
			WithCatalogId(issue.EntrypointNotFoundId).
			Wrap(err).
			Build()}
	}

	cmd := exec.CommandContext(ctx, l.Interpreter, script)
	cmd.Dir = l.WorkDir
	cmd.Env = envToSlice(l.Env)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to start application: %w", err)}
	}
	return &Result{ExitCode: 0}
}

func envToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

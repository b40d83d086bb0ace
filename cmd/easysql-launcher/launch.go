// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"easysql-launcher/internal/config"
	"easysql-launcher/internal/issue"
	"easysql-launcher/internal/launch"
	"easysql-launcher/internal/provision"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runLaunch is the full pipeline: provision the environment, then hand off
// to the application and mirror its exit status.
func runLaunch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fail(1, err)
	}

	result, err := newProvisioner(cfg).Run(cmd.Context())
	if err != nil {
		return fail(1, err)
	}

	l := &launch.Launcher{
		Interpreter: result.Interpreter,
		Entrypoint:  cfg.Entrypoint,
		WorkDir:     result.ProjectRoot,
		Env:         result.Env,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
	res := l.Run(cmd.Context())

	if res.Error != nil {
		return fail(res.ExitCode, res.Error)
	}
	if res.ExitCode != 0 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(
			fmt.Sprintf("easySql exited with status %d", res.ExitCode)))
		launch.PauseForAck(os.Stdin, os.Stderr, noPause)
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

// newProvisioner wires a provisioner from the launcher config and the
// global flags.
func newProvisioner(cfg *config.Config) *provision.Provisioner {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "launcher"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return provision.New(
		provision.FromLauncherConfig(cfg),
		provision.WithLogger(logger),
	)
}

// fail reports a fatal launcher error and pauses so the message stays
// visible in a double-clicked terminal window, then wraps the code for
// Execute.
func fail(code int, err error) error {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	// Long-form remediation for errors with a catalog entry.
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.CatalogId != 0 {
		if entry := issue.Lookup(ae.CatalogId); entry != nil {
			if rendered, renderErr := entry.Render(); renderErr == nil {
				fmt.Fprintln(os.Stderr, rendered)
			}
		}
	}

	launch.PauseForAck(os.Stdin, os.Stderr, noPause)
	if code == 0 {
		code = 1
	}
	return &ExitError{Code: code, Err: err}
}

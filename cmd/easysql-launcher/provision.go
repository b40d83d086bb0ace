// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"easysql-launcher/internal/config"

	"github.com/spf13/cobra"
)

// provisionCmd runs the environment steps without launching the
// application. Useful for preparing a machine ahead of time or from CI.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Prepare the Python environment without launching easySql",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fail(1, err)
		}

		result, err := newProvisioner(cfg).Run(cmd.Context())
		if err != nil {
			return fail(1, err)
		}

		if result.VenvCreated {
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓")+" virtual environment created")
		} else {
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓")+" virtual environment reused")
		}
		switch {
		case result.ManifestMissing:
			fmt.Fprintln(os.Stdout, WarningStyle.Render("!")+" no requirements file; nothing installed")
		case result.InstallRan:
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓")+" dependencies installed")
		default:
			fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓")+" dependencies already satisfied")
		}
		return nil
	},
}

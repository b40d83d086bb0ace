// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"easysql-launcher/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the launcher configuration",
}

// configShowCmd prints the effective configuration (defaults, file, and
// environment overrides merged) as TOML.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fail(1, err)
		}

		rendered, err := renderConfig(cfg)
		if err != nil {
			return fail(1, err)
		}
		fmt.Fprint(os.Stdout, rendered)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.ConfigFilePath()
		if err != nil {
			return fail(1, err)
		}
		fmt.Fprintln(os.Stdout, path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// renderConfig marshals a config to TOML for display.
func renderConfig(cfg *config.Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(out), nil
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"easysql-launcher/internal/config"
	"easysql-launcher/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables step-by-step provisioning output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// noPause disables the pause-for-acknowledgment on failure
	noPause bool

	// rootCmd represents the base command. Run without arguments it
	// provisions the environment and launches easySql, which is what a
	// double-clicked launcher does.
	rootCmd = &cobra.Command{
		Use:   "easysql-launcher",
		Short: "Bootstraps a Python environment and starts easySql",
		Long: TitleStyle.Render("easysql-launcher") + SubtitleStyle.Render(" - Bootstraps a Python environment and starts easySql") + `

The launcher makes the easySql application runnable on a machine with no
Python tooling set up: it installs the uv package manager if missing,
creates a virtual environment on first run, installs the dependencies
declared in requirements.txt, and then starts the application with the
environment's interpreter. Every step is idempotent; a provisioned
project launches straight away.

` + SubtitleStyle.Render("Examples:") + `
  easysql-launcher            Provision (if needed) and start easySql
  easysql-launcher provision  Prepare the environment without launching
  easysql-launcher check      Report dependency satisfaction
  easysql-launcher config show  Show the effective configuration`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&noPause, "no-pause", false, "do not wait for Enter on failure")

	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command through fang. It is called by main.main()
// and terminates the process with the child's exit code on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies the --config flag and folds config-file UI settings
// into the flag variables when the flags weren't given explicitly.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if !noPause {
		noPause = cfg.UI.NoPause
	}
}

// formatErrorForDisplay formats an error for user display, using the
// ActionableError rendering when available.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"easysql-launcher/internal/config"
	"easysql-launcher/internal/provision"

	"github.com/spf13/cobra"
)

// checkCmd reports per-entry dependency satisfaction without installing
// anything. Unlike the provisioning fast path, which stops at the first
// miss, the report enumerates every entry.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report dependency satisfaction without installing",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fail(1, err)
		}

		missing, err := reportSatisfaction(os.Stdout, cfg)
		if err != nil {
			return fail(1, err)
		}
		if missing > 0 {
			return &ExitError{Code: 1}
		}
		return nil
	},
}

// reportSatisfaction writes one line per manifest entry and returns how
// many are missing.
func reportSatisfaction(w io.Writer, cfg *config.Config) (int, error) {
	root, err := provision.ResolveProjectRoot(cfg.ProjectRoot)
	if err != nil {
		return 0, err
	}

	manifest, err := provision.ReadManifest(filepath.Join(root, cfg.RequirementsFile))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, WarningStyle.Render("no requirements file at ")+filepath.Join(root, cfg.RequirementsFile))
			return 0, nil
		}
		return 0, err
	}

	venv := &provision.Venv{Dir: filepath.Join(root, cfg.VenvDir)}
	if !venv.Exists() {
		fmt.Fprintln(w, WarningStyle.Render("no virtual environment; run 'easysql-launcher provision' first"))
		return len(manifest.Requirements), nil
	}

	site, err := venv.SitePackages()
	if err != nil {
		return 0, err
	}
	installed, err := provision.InstalledDistributions(site)
	if err != nil {
		return 0, err
	}

	missing := 0
	for _, req := range manifest.Requirements {
		if provision.IsSatisfied(req, installed, site) {
			fmt.Fprintln(w, SuccessStyle.Render("✓ ")+req.Name)
		} else {
			fmt.Fprintln(w, ErrorStyle.Render("✗ ")+req.Name)
			missing++
		}
	}
	return missing, nil
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type (
	// Config is the launcher's effective configuration.
	Config struct {
		// ProjectRoot overrides project-root resolution when set. Empty
		// means resolve from the executable's location.
		ProjectRoot string `mapstructure:"project_root" toml:"project_root"`

		// VenvDir is the virtual environment directory name, relative to
		// the project root.
		VenvDir string `mapstructure:"venv_dir" toml:"venv_dir"`

		// RequirementsFile is the dependency manifest name, relative to
		// the project root.
		RequirementsFile string `mapstructure:"requirements_file" toml:"requirements_file"`

		// Entrypoint is the application script launched as the final step,
		// relative to the project root.
		Entrypoint string `mapstructure:"entrypoint" toml:"entrypoint"`

		// PythonVersion is an optional interpreter version request passed
		// to uv when the virtual environment is created (e.g. "3.12").
		PythonVersion string `mapstructure:"python_version" toml:"python_version"`

		// UvInstallURL is where the uv install script is fetched from when
		// uv is absent.
		UvInstallURL string `mapstructure:"uv_install_url" toml:"uv_install_url"`

		// UI holds terminal interaction settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds terminal interaction settings.
	UIConfig struct {
		// Verbose enables step-by-step provisioning output.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`

		// NoPause disables the "press Enter" pause on failure. The pause
		// exists so a double-clicked launcher window doesn't vanish before
		// the user can read the error; scripts and CI set this.
		NoPause bool `mapstructure:"no_pause" toml:"no_pause"`
	}
)

// DefaultConfig returns the configuration matching the expected easySql
// project layout.
func DefaultConfig() *Config {
	return &Config{
		VenvDir:          ".venv",
		RequirementsFile: "requirements.txt",
		Entrypoint:       "easySql.py",
		UvInstallURL:     "https://astral.sh/uv/install.sh",
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.VenvDir == "" {
		return fmt.Errorf("venv_dir must not be empty")
	}
	if filepath.IsAbs(c.VenvDir) || strings.Contains(c.VenvDir, "..") {
		return fmt.Errorf("venv_dir must be a plain relative directory name, got %q", c.VenvDir)
	}
	if c.RequirementsFile == "" {
		return fmt.Errorf("requirements_file must not be empty")
	}
	if c.Entrypoint == "" {
		return fmt.Errorf("entrypoint must not be empty")
	}
	if c.UvInstallURL != "" && !strings.HasPrefix(c.UvInstallURL, "https://") {
		return fmt.Errorf("uv_install_url must be an https URL, got %q", c.UvInstallURL)
	}
	return nil
}

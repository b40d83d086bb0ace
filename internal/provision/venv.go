// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"os"
	"path/filepath"
	"runtime"

	"easysql-launcher/internal/issue"
)

// Venv represents a virtual environment directory, existing or not.
type Venv struct {
	// Dir is the absolute path of the environment directory.
	Dir string
}

// Exists reports whether the environment directory is present. Presence of
// the directory is the reuse criterion: an existing environment is never
// recreated.
func (v *Venv) Exists() bool {
	info, err := os.Stat(v.Dir)
	return err == nil && info.IsDir()
}

// BinDir returns the directory holding the environment's executables.
func (v *Venv) BinDir() string {
	return VenvBinDir(v.Dir)
}

// Interpreter returns the path of the environment's Python interpreter.
func (v *Venv) Interpreter() (string, error) {
	var candidates []string
	if runtime.GOOS == "windows" {
		candidates = []string{
			filepath.Join(v.Dir, "Scripts", "python.exe"),
		}
	} else {
		candidates = []string{
			filepath.Join(v.Dir, "bin", "python3"),
			filepath.Join(v.Dir, "bin", "python"),
		}
	}
	for _, c := range candidates {
		if isExecutable(c) {
			return c, nil
		}
	}
	return "", issue.NewErrorContext().
		WithOperation("locate the Python interpreter").
		WithResource(v.Dir).
		WithCatalogId(issue.InterpreterNotFoundId).
		WithSuggestion("Delete the environment directory and run the launcher again").
		Build()
}

// SitePackages returns the environment's site-packages directory, where
// installed-distribution metadata lives.
func (v *Venv) SitePackages() (string, error) {
	if runtime.GOOS == "windows" {
		dir := filepath.Join(v.Dir, "Lib", "site-packages")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		return "", issue.NewErrorContext().
			WithOperation("locate site-packages").
			WithResource(v.Dir).
			Build()
	}

	// POSIX layout: lib/pythonX.Y/site-packages, version dependent.
	matches, err := filepath.Glob(filepath.Join(v.Dir, "lib", "python*", "site-packages"))
	if err == nil && len(matches) > 0 {
		return matches[0], nil
	}
	return "", issue.NewErrorContext().
		WithOperation("locate site-packages").
		WithResource(v.Dir).
		Wrap(err).
		Build()
}

// VenvBinDir returns the executables directory for a venv at dir, without
// requiring the venv to exist yet.
func VenvBinDir(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts")
	}
	return filepath.Join(dir, "bin")
}

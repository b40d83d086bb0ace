// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"os"
	"path/filepath"
	"strings"

	"easysql-launcher/internal/issue"
)

// ResolveProjectRoot determines the directory holding the application files.
// A non-empty override wins and is made absolute. Otherwise the root derives
// from the launcher executable's own location: for a macOS bundle executable
// (<root>/<Name>.app/Contents/MacOS/<exe>) the root is three levels above
// the executable's directory; for a plain binary it is the executable's
// directory itself.
func ResolveProjectRoot(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", issue.NewErrorContext().
				WithOperation("resolve project root").
				WithResource(override).
				Wrap(err).
				Build()
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("resolve project root").
			WithSuggestion("Set project_root in the launcher config file").
			Wrap(err).
			Build()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if bundleRoot, ok := bundleRootOf(dir); ok {
		return bundleRoot, nil
	}
	return dir, nil
}

// bundleRootOf reports the directory containing the .app bundle when dir is
// a bundle's Contents/MacOS directory.
func bundleRootOf(dir string) (string, bool) {
	if filepath.Base(dir) != "MacOS" {
		return "", false
	}
	contents := filepath.Dir(dir)
	if filepath.Base(contents) != "Contents" {
		return "", false
	}
	app := filepath.Dir(contents)
	if !strings.HasSuffix(filepath.Base(app), ".app") {
		return "", false
	}
	return filepath.Dir(app), true
}

// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizeDistName normalizes a distribution name for comparison: lowercase
// with runs of '-', '_', and '.' collapsed to a single '-'. This makes
// "PyQt6-sip", "pyqt6_sip", and "pyqt6.sip" compare equal, the same rule
// package indexes apply.
func NormalizeDistName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
			continue
		}
		lastDash = false
		b.WriteRune(r)
	}
	return b.String()
}

// InstalledDistributions scans a site-packages directory for installed
// distribution metadata (*.dist-info and *.egg-info entries) and returns the
// set of normalized distribution names.
func InstalledDistributions(sitePackages string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(sitePackages)
	if err != nil {
		return nil, fmt.Errorf("failed to read site-packages %s: %w", sitePackages, err)
	}

	installed := make(map[string]struct{})
	for _, entry := range entries {
		name := entry.Name()
		var stem string
		switch {
		case strings.HasSuffix(name, ".dist-info"):
			stem = strings.TrimSuffix(name, ".dist-info")
		case strings.HasSuffix(name, ".egg-info"):
			stem = strings.TrimSuffix(name, ".egg-info")
		default:
			continue
		}
		// Metadata directories are named <distribution>-<version>; the
		// version part starts at the last hyphen.
		if idx := strings.LastIndexByte(stem, '-'); idx > 0 {
			stem = stem[:idx]
		}
		installed[NormalizeDistName(stem)] = struct{}{}
	}
	return installed, nil
}

// FirstUnsatisfied returns the first manifest entry not present in the
// environment, or nil when every entry is satisfied. Probing stops at the
// first miss: one unsatisfied entry already means a bulk install, so
// checking the rest buys nothing.
//
// An entry is satisfied when its normalized name appears in the installed
// distribution set, or, as a fallback for distributions installed without
// metadata, when a top-level module named after it (hyphens replaced by
// underscores) exists in site-packages.
func FirstUnsatisfied(reqs []Requirement, sitePackages string) (*Requirement, error) {
	installed, err := InstalledDistributions(sitePackages)
	if err != nil {
		return nil, err
	}

	for i := range reqs {
		if !IsSatisfied(reqs[i], installed, sitePackages) {
			return &reqs[i], nil
		}
	}
	return nil, nil
}

// IsSatisfied reports whether a single requirement is present in the
// environment, given the installed-distribution set for its site-packages.
func IsSatisfied(req Requirement, installed map[string]struct{}, sitePackages string) bool {
	if _, ok := installed[NormalizeDistName(req.Name)]; ok {
		return true
	}
	return moduleExists(sitePackages, req.Name)
}

// moduleExists checks for a top-level module or package in site-packages
// matching the distribution name with hyphens replaced by underscores.
func moduleExists(sitePackages, distName string) bool {
	module := strings.ReplaceAll(distName, "-", "_")
	if info, err := os.Stat(filepath.Join(sitePackages, module)); err == nil && info.IsDir() {
		return true
	}
	if info, err := os.Stat(filepath.Join(sitePackages, module+".py")); err == nil && !info.IsDir() {
		return true
	}
	return false
}

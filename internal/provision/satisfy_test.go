// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDistName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PyQt6", "pyqt6"},
		{"PyQt6-sip", "pyqt6-sip"},
		{"pyqt6_sip", "pyqt6-sip"},
		{"zope.interface", "zope-interface"},
		{"a--b__c", "a-b-c"},
	}
	for _, tt := range tests {
		if got := NormalizeDistName(tt.in); got != tt.want {
			t.Errorf("NormalizeDistName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// makeSitePackages creates a site-packages directory with the given
// dist-info entries and returns its path.
func makeSitePackages(t *testing.T, distInfos ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range distInfos {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return dir
}

func TestInstalledDistributions(t *testing.T) {
	site := makeSitePackages(t, "PyQt6-6.7.0.dist-info", "pyqt6_sip-13.6.0.dist-info", "legacy-1.0.egg-info")
	// Non-metadata entries must be ignored.
	if err := os.Mkdir(filepath.Join(site, "PyQt6"), 0o755); err != nil {
		t.Fatalf("Failed to create package dir: %v", err)
	}

	installed, err := InstalledDistributions(site)
	if err != nil {
		t.Fatalf("InstalledDistributions failed: %v", err)
	}

	for _, want := range []string{"pyqt6", "pyqt6-sip", "legacy"} {
		if _, ok := installed[want]; !ok {
			t.Errorf("Expected %q in installed set, got %v", want, installed)
		}
	}
	if len(installed) != 3 {
		t.Errorf("Expected 3 distributions, got %d", len(installed))
	}
}

func TestFirstUnsatisfiedAllPresent(t *testing.T) {
	site := makeSitePackages(t, "PyQt6-6.7.0.dist-info", "numpy-1.26.4.dist-info")

	reqs := ParseRequirements([]byte("PyQt6\nnumpy>=1.20\n"))
	unsat, err := FirstUnsatisfied(reqs, site)
	if err != nil {
		t.Fatalf("FirstUnsatisfied failed: %v", err)
	}
	if unsat != nil {
		t.Errorf("Expected all satisfied, got unsatisfied %q", unsat.Name)
	}
}

func TestFirstUnsatisfiedReportsFirstMiss(t *testing.T) {
	site := makeSitePackages(t, "PyQt6-6.7.0.dist-info")

	reqs := ParseRequirements([]byte("PyQt6\nnumpy>=1.20\npandas\n"))
	unsat, err := FirstUnsatisfied(reqs, site)
	if err != nil {
		t.Fatalf("FirstUnsatisfied failed: %v", err)
	}
	if unsat == nil || unsat.Name != "numpy" {
		t.Errorf("Expected numpy unsatisfied, got %+v", unsat)
	}
}

func TestFirstUnsatisfiedModuleFallback(t *testing.T) {
	// A distribution installed without metadata but present as a top-level
	// module, with the hyphen/underscore mismatch.
	site := makeSitePackages(t)
	if err := os.Mkdir(filepath.Join(site, "my_tool"), 0o755); err != nil {
		t.Fatalf("Failed to create module dir: %v", err)
	}

	reqs := ParseRequirements([]byte("my-tool\n"))
	unsat, err := FirstUnsatisfied(reqs, site)
	if err != nil {
		t.Fatalf("FirstUnsatisfied failed: %v", err)
	}
	if unsat != nil {
		t.Errorf("Expected module fallback to satisfy my-tool, got %+v", unsat)
	}
}

func TestFirstUnsatisfiedEmptyManifest(t *testing.T) {
	site := makeSitePackages(t)

	unsat, err := FirstUnsatisfied(nil, site)
	if err != nil {
		t.Fatalf("FirstUnsatisfied failed: %v", err)
	}
	if unsat != nil {
		t.Errorf("Expected nil for empty manifest, got %+v", unsat)
	}
}

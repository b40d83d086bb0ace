// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"easysql-launcher/internal/config"
)

// setupCheckProject builds a project with a venv containing the given
// dist-info entries and a manifest with the given content.
func setupCheckProject(t *testing.T, manifest string, distInfos ...string) *config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX venv layout")
	}

	root := t.TempDir()
	site := filepath.Join(root, ".venv", "lib", "python3.12", "site-packages")
	if err := os.MkdirAll(site, 0o755); err != nil {
		t.Fatalf("Failed to create site-packages: %v", err)
	}
	for _, d := range distInfos {
		if err := os.Mkdir(filepath.Join(site, d), 0o755); err != nil {
			t.Fatalf("Failed to create dist-info: %v", err)
		}
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(root, "requirements.txt"), []byte(manifest), 0o644); err != nil {
			t.Fatalf("Failed to write manifest: %v", err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.ProjectRoot = root
	return cfg
}

func TestReportSatisfactionAllPresent(t *testing.T) {
	cfg := setupCheckProject(t, "PyQt6\nnumpy>=1.20\n",
		"PyQt6-6.7.0.dist-info", "numpy-1.26.4.dist-info")

	var out bytes.Buffer
	missing, err := reportSatisfaction(&out, cfg)
	if err != nil {
		t.Fatalf("reportSatisfaction failed: %v", err)
	}
	if missing != 0 {
		t.Errorf("Expected 0 missing, got %d", missing)
	}
	if strings.Count(out.String(), "✓") != 2 {
		t.Errorf("Expected two satisfied lines, got:\n%s", out.String())
	}
}

func TestReportSatisfactionEnumeratesAllMisses(t *testing.T) {
	cfg := setupCheckProject(t, "PyQt6\nnumpy\npandas\n", "PyQt6-6.7.0.dist-info")

	var out bytes.Buffer
	missing, err := reportSatisfaction(&out, cfg)
	if err != nil {
		t.Fatalf("reportSatisfaction failed: %v", err)
	}
	if missing != 2 {
		t.Errorf("Expected 2 missing, got %d", missing)
	}
	if strings.Count(out.String(), "✗") != 2 {
		t.Errorf("Expected two missing lines, got:\n%s", out.String())
	}
}

func TestReportSatisfactionMissingManifest(t *testing.T) {
	cfg := setupCheckProject(t, "")

	var out bytes.Buffer
	missing, err := reportSatisfaction(&out, cfg)
	if err != nil {
		t.Fatalf("reportSatisfaction failed: %v", err)
	}
	if missing != 0 {
		t.Errorf("Expected a zero-effect step for missing manifest, got %d missing", missing)
	}
	if !strings.Contains(out.String(), "no requirements file") {
		t.Errorf("Expected warning, got:\n%s", out.String())
	}
}

func TestReportSatisfactionNoVenv(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("PyQt6\n"), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.ProjectRoot = root

	var out bytes.Buffer
	missing, err := reportSatisfaction(&out, cfg)
	if err != nil {
		t.Fatalf("reportSatisfaction failed: %v", err)
	}
	if missing != 1 {
		t.Errorf("Expected every entry missing without a venv, got %d", missing)
	}
}

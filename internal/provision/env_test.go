// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestActivatedEnvPrependsPath(t *testing.T) {
	environ := []string{
		"HOME=/home/u",
		"PATH=/usr/bin",
		"TERM=xterm",
	}
	venv := filepath.Join("/proj", ".venv")

	env := ActivatedEnv(environ, venv)

	sep := string(os.PathListSeparator)
	parts := strings.Split(env["PATH"], sep)
	if len(parts) != 3 {
		t.Fatalf("Expected 3 PATH entries, got %v", parts)
	}
	if parts[0] != filepath.Join("/home/u", ".local", "bin") {
		t.Errorf("Expected local bin first, got %s", parts[0])
	}
	if parts[1] != VenvBinDir(venv) {
		t.Errorf("Expected venv bin second, got %s", parts[1])
	}
	if parts[2] != "/usr/bin" {
		t.Errorf("Expected original PATH preserved last, got %s", parts[2])
	}
	if env["TERM"] != "xterm" {
		t.Errorf("Expected unrelated variables preserved, got %q", env["TERM"])
	}
}

func TestActivatedEnvSetsVirtualEnvAndDropsPythonHome(t *testing.T) {
	environ := []string{
		"HOME=/home/u",
		"PATH=/usr/bin",
		"PYTHONHOME=/opt/python",
	}
	venv := "/proj/.venv"

	env := ActivatedEnv(environ, venv)

	if env["VIRTUAL_ENV"] != venv {
		t.Errorf("Expected VIRTUAL_ENV=%s, got %s", venv, env["VIRTUAL_ENV"])
	}
	if _, ok := env["PYTHONHOME"]; ok {
		t.Error("Expected PYTHONHOME to be dropped")
	}
}

func TestActivatedEnvEmptyPath(t *testing.T) {
	env := ActivatedEnv([]string{"HOME=/home/u"}, "/proj/.venv")
	if env["PATH"] == "" {
		t.Error("Expected a non-empty PATH to be synthesized")
	}
	if strings.HasPrefix(env["PATH"], string(os.PathListSeparator)) ||
		strings.HasSuffix(env["PATH"], string(os.PathListSeparator)) {
		t.Errorf("PATH has dangling separator: %q", env["PATH"])
	}
}

func TestEnvToSliceRoundTrip(t *testing.T) {
	env := map[string]string{"A": "1", "B": "x=y"}
	slice := EnvToSlice(env)
	if len(slice) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(slice))
	}
	found := map[string]bool{}
	for _, e := range slice {
		found[e] = true
	}
	if !found["A=1"] || !found["B=x=y"] {
		t.Errorf("Unexpected slice contents: %v", slice)
	}
}

func TestLookPathEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit semantics are POSIX only")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "uv")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}
	// A non-executable file with the right name must not match.
	other := t.TempDir()
	if err := os.WriteFile(filepath.Join(other, "uv"), []byte(""), 0o644); err != nil {
		t.Fatalf("Failed to write non-executable file: %v", err)
	}

	env := map[string]string{"PATH": other + string(os.PathListSeparator) + dir}
	got, ok := LookPathEnv(env, "uv")
	if !ok {
		t.Fatal("Expected uv to be found")
	}
	if got != tool {
		t.Errorf("Expected %s, got %s", tool, got)
	}
}

func TestLookPathEnvNotFound(t *testing.T) {
	env := map[string]string{"PATH": t.TempDir()}
	if _, ok := LookPathEnv(env, "uv"); ok {
		t.Error("Expected uv to be absent")
	}
}

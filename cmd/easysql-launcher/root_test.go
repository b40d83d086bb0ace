// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"easysql-launcher/internal/config"
	"easysql-launcher/internal/issue"
)

func TestExitErrorMessage(t *testing.T) {
	e := &ExitError{Code: 2}
	if e.Error() != "exit status 2" {
		t.Errorf("Error() = %q", e.Error())
	}

	wrapped := &ExitError{Code: 1, Err: errors.New("boom")}
	if wrapped.Error() != "boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestFormatErrorForDisplayActionable(t *testing.T) {
	err := issue.NewErrorContext().
		WithOperation("install the uv package manager").
		WithSuggestion("Install uv manually").
		Build()

	out := formatErrorForDisplay(err, false)
	if !strings.Contains(out, "install the uv package manager") {
		t.Errorf("Missing operation in %q", out)
	}
	if !strings.Contains(out, "Install uv manually") {
		t.Errorf("Missing suggestion in %q", out)
	}
}

func TestFormatErrorForDisplayPlain(t *testing.T) {
	out := formatErrorForDisplay(errors.New("plain failure"), false)
	if out != "plain failure" {
		t.Errorf("Expected plain message, got %q", out)
	}
}

func TestRenderConfig(t *testing.T) {
	out, err := renderConfig(config.DefaultConfig())
	if err != nil {
		t.Fatalf("renderConfig failed: %v", err)
	}
	for _, want := range []string{"venv_dir = '.venv'", "requirements_file = 'requirements.txt'", "entrypoint = 'easySql.py'"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered config missing %q:\n%s", want, out)
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("Expected dev version string, got %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"easysql-launcher/internal/issue"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// maxInstallScriptSize caps the installer download; the real script is a few
// hundred kilobytes, so anything larger indicates a broken or hijacked
// response.
const maxInstallScriptSize = 4 << 20

// UvTool locates the uv package manager, installing it when absent.
type UvTool struct {
	// InstallURL is where the install script is fetched from.
	InstallURL string

	// Client is the HTTP client for the fetch. Tests inject one backed by
	// httptest.
	Client *http.Client

	// Stdout and Stderr receive the install script's output.
	Stdout io.Writer
	Stderr io.Writer
}

// Ensure returns the path of the uv executable found in env's PATH,
// installing uv first when it is missing. Install failure is fatal for the
// whole provisioning run; the returned error carries manual-install
// remediation.
func (u *UvTool) Ensure(ctx context.Context, env map[string]string) (string, error) {
	if path, ok := LookPathEnv(env, "uv"); ok {
		return path, nil
	}

	if err := u.install(ctx, env); err != nil {
		return "", issue.NewErrorContext().
			WithOperation("install the uv package manager").
			WithResource(u.InstallURL).
			WithCatalogId(issue.UvInstallFailedId).
			WithSuggestion("Install uv manually, then run the launcher again").
			Wrap(err).
			Build()
	}

	// Re-probe: the installer places uv in ~/.local/bin, which the
	// activated PATH already contains.
	if path, ok := LookPathEnv(env, "uv"); ok {
		return path, nil
	}
	return "", issue.NewErrorContext().
		WithOperation("locate uv after installation").
		WithCatalogId(issue.UvNotFoundId).
		WithSuggestion("Install uv manually, then run the launcher again").
		Build()
}

// install fetches the install script and runs it through the embedded shell
// interpreter, so installation works even when no system shell is available
// to the double-clicked launcher.
func (u *UvTool) install(ctx context.Context, env map[string]string) error {
	script, err := u.fetchInstallScript(ctx)
	if err != nil {
		return err
	}
	return u.runInstallScript(ctx, script, env)
}

func (u *UvTool) fetchInstallScript(ctx context.Context) (string, error) {
	if u.InstallURL == "" {
		return "", errors.New("no install URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.InstallURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build install script request: %w", err)
	}

	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download install script: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("install script download returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInstallScriptSize))
	if err != nil {
		return "", fmt.Errorf("failed to read install script: %w", err)
	}
	if len(body) == 0 {
		return "", errors.New("install script download was empty")
	}
	return string(body), nil
}

func (u *UvTool) runInstallScript(ctx context.Context, script string, env map[string]string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "install.sh")
	if err != nil {
		return fmt.Errorf("failed to parse install script: %w", err)
	}

	runner, err := interp.New(
		interp.Dir(homeDir(env)),
		interp.Env(expand.ListEnviron(EnvToSlice(env)...)),
		interp.StdIO(nil, u.Stdout, u.Stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create shell interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return fmt.Errorf("install script exited with status %d", int(exitStatus))
		}
		return fmt.Errorf("install script failed: %w", err)
	}
	return nil
}

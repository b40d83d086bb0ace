// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"easysql-launcher/internal/config"
	"easysql-launcher/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// Config holds the provisioner's inputs.
	Config struct {
		// ProjectRoot overrides project-root resolution when set.
		ProjectRoot string

		// VenvDir is the virtual environment directory name, relative to
		// the project root.
		VenvDir string

		// RequirementsFile is the manifest name, relative to the project
		// root.
		RequirementsFile string

		// PythonVersion is an optional interpreter version request passed
		// to uv when the environment is created.
		PythonVersion string

		// UvInstallURL is where the uv install script is fetched from.
		UvInstallURL string
	}

	// Option configures a Provisioner.
	Option func(*Provisioner)

	// Provisioner runs the environment provisioning sequence.
	Provisioner struct {
		cfg    Config
		logger *log.Logger
		runner CommandRunner
		client *http.Client
		stdout io.Writer
		stderr io.Writer
	}

	// Result is the outcome of a successful provisioning run, carrying
	// everything the launch step needs.
	Result struct {
		// ProjectRoot is the resolved application directory.
		ProjectRoot string

		// Env is the activated environment map for child processes.
		Env map[string]string

		// Interpreter is the venv's Python interpreter path.
		Interpreter string

		// UvPath is the located uv executable.
		UvPath string

		// VenvCreated is true when the environment was created this run
		// (false when an existing one was reused).
		VenvCreated bool

		// InstallRan is true when a bulk dependency install was invoked.
		InstallRan bool

		// ManifestMissing is true when the requirements file was absent
		// and the dependency step was skipped with a warning.
		ManifestMissing bool
	}
)

// FromLauncherConfig maps the launcher configuration onto provisioner inputs.
func FromLauncherConfig(c *config.Config) Config {
	return Config{
		ProjectRoot:      c.ProjectRoot,
		VenvDir:          c.VenvDir,
		RequirementsFile: c.RequirementsFile,
		PythonVersion:    c.PythonVersion,
		UvInstallURL:     c.UvInstallURL,
	}
}

// WithLogger sets the step logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Provisioner) { p.logger = l }
}

// WithRunner substitutes the external-tool runner, for tests.
func WithRunner(r CommandRunner) Option {
	return func(p *Provisioner) { p.runner = r }
}

// WithHTTPClient substitutes the HTTP client used for the installer fetch.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provisioner) { p.client = c }
}

// WithStdio redirects tool output, for tests.
func WithStdio(stdout, stderr io.Writer) Option {
	return func(p *Provisioner) {
		p.stdout = stdout
		p.stderr = stderr
	}
}

// New creates a Provisioner with production defaults, then applies opts.
func New(cfg Config, opts ...Option) *Provisioner {
	p := &Provisioner{
		cfg:    cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "provision"}),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.runner == nil {
		p.runner = NewExecRunner(p.stdout, p.stderr)
	}
	return p
}

// Run executes the provisioning sequence and returns the activated
// environment. Every step is idempotent: a second run against an already
// provisioned project only probes and changes nothing.
func (p *Provisioner) Run(ctx context.Context) (*Result, error) {
	root, err := ResolveProjectRoot(p.cfg.ProjectRoot)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("resolved project root", "dir", root)

	venv := &Venv{Dir: filepath.Join(root, p.cfg.VenvDir)}
	env := ActivatedEnv(os.Environ(), venv.Dir)

	uv := &UvTool{
		InstallURL: p.cfg.UvInstallURL,
		Client:     p.client,
		Stdout:     p.stdout,
		Stderr:     p.stderr,
	}
	uvPath, err := uv.Ensure(ctx, env)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("uv available", "path", uvPath)

	result := &Result{
		ProjectRoot: root,
		Env:         env,
		UvPath:      uvPath,
	}

	if !venv.Exists() {
		p.logger.Info("creating virtual environment", "dir", venv.Dir)
		if err := p.createVenv(ctx, env, root, uvPath, venv); err != nil {
			return nil, err
		}
		result.VenvCreated = true
	} else {
		p.logger.Debug("reusing existing virtual environment", "dir", venv.Dir)
	}

	interpreter, err := venv.Interpreter()
	if err != nil {
		return nil, err
	}
	result.Interpreter = interpreter

	if err := p.reconcileDependencies(ctx, env, root, uvPath, venv, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Provisioner) createVenv(ctx context.Context, env map[string]string, root, uvPath string, venv *Venv) error {
	args := []string{"venv", venv.Dir}
	if p.cfg.PythonVersion != "" {
		args = append(args, "--python", p.cfg.PythonVersion)
	}
	if err := p.runner.Run(ctx, env, root, uvPath, args...); err != nil {
		return issue.NewErrorContext().
			WithOperation("create virtual environment").
			WithResource(venv.Dir).
			WithCatalogId(issue.VenvCreateFailedId).
			Wrap(err).
			Build()
	}
	return nil
}

// reconcileDependencies applies the check-then-install policy: probe each
// manifest entry against the environment's installed distributions and run
// one bulk install if anything is missing. A missing manifest downgrades to
// a warning.
func (p *Provisioner) reconcileDependencies(ctx context.Context, env map[string]string, root, uvPath string, venv *Venv, result *Result) error {
	manifestPath := filepath.Join(root, p.cfg.RequirementsFile)

	manifest, err := ReadManifest(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Warn("requirements file not found; skipping dependency install", "path", manifestPath)
			result.ManifestMissing = true
			return nil
		}
		return issue.NewErrorContext().
			WithOperation("read requirements file").
			WithResource(manifestPath).
			Wrap(err).
			Build()
	}

	if len(manifest.Requirements) == 0 {
		p.logger.Debug("requirements file has no entries")
		return nil
	}

	sitePackages, err := venv.SitePackages()
	if err != nil {
		return err
	}

	unsatisfied, err := FirstUnsatisfied(manifest.Requirements, sitePackages)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("check installed dependencies").
			WithResource(sitePackages).
			Wrap(err).
			Build()
	}
	if unsatisfied == nil {
		p.logger.Debug("all dependencies satisfied", "count", len(manifest.Requirements))
		return nil
	}

	p.logger.Info("installing dependencies", "missing", unsatisfied.Name, "manifest", manifestPath)
	if err := p.runner.Run(ctx, env, root, uvPath, "pip", "install", "-r", manifestPath); err != nil {
		return issue.NewErrorContext().
			WithOperation("install dependencies").
			WithResource(manifestPath).
			WithCatalogId(issue.DependencyInstallFailedId).
			Wrap(err).
			Build()
	}
	result.InstallRan = true
	return nil
}

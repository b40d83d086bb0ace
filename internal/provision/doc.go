// SPDX-License-Identifier: MPL-2.0

// Package provision implements the environment provisioner: the idempotent
// sequence that makes a Python runtime ready for the easySql application.
//
// The steps run strictly in order, each a precondition for the next:
//
//  1. Resolve the project root from the launcher executable's location
//     (bundle-aware) or a configured override.
//  2. Ensure the uv package manager is present, fetching and running its
//     install script when absent.
//  3. Ensure the virtual environment exists; an existing one is reused and
//     never recreated.
//  4. Build the activated environment map (VIRTUAL_ENV, PATH prepends).
//     The map is passed explicitly to child processes; the launcher's own
//     process environment is never mutated.
//  5. Reconcile dependencies from the requirements manifest against the
//     environment's installed-distribution metadata. The first unsatisfied
//     entry triggers exactly one bulk install of the full manifest; a fully
//     satisfied manifest installs nothing.
//
// The main entry point is the Provisioner:
//
//	p := provision.New(provision.FromLauncherConfig(cfg))
//	result, err := p.Run(ctx)
//	// result.Env and result.Interpreter are ready for the launch step
package provision

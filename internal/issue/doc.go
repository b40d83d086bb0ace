// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for the launcher.
//
// ActionableError carries structured context (operation, resource,
// suggestions, cause) so fatal provisioning failures tell the user what went
// wrong AND what to do about it. The catalog holds longer markdown
// remediation texts, rendered with glamour, for failure modes where a
// one-line error is not enough (e.g. the uv installer could not be run and
// the user has to install the tool by hand).
package issue

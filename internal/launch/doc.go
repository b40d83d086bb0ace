// SPDX-License-Identifier: MPL-2.0

// Package launch starts the easySql application with the provisioned
// environment and surfaces its exit status.
//
// The launcher never retries or intercepts the application; it runs the
// process to completion, mirrors the exit code, and on failure pauses for
// user acknowledgment so a double-clicked terminal window doesn't vanish
// before the error can be read.
package launch

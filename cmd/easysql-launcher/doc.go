// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for the easySql launcher.
//
// The root command with no arguments runs the full provision-and-launch
// pipeline; that is the contract for a double-clicked launcher, which gets
// no flags. Subcommands exist for running the pieces separately: provision
// (environment only), check (dependency satisfaction report), and config
// (effective configuration).
package cmd

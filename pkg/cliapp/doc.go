// SPDX-License-Identifier: MPL-2.0

// Package cliapp is the composition root of the framework: it glues the
// package descriptor, the host configuration, the command registry, the
// options engine and the help renderer into one application shell.
//
// The shell owns the invocation flow: an early pass over the common
// options (working directory, log level, help, version), command
// resolution against the registry, the full options parse for the
// resolved command, and finally the command action itself. Diagnostics
// and exit codes follow a fixed contract: syntax failures print the
// relevant help screen and exit with code 1; other failures pass the
// command's exit code through unchanged.
package cliapp

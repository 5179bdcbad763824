// SPDX-License-Identifier: MPL-2.0

// Package manifest reads the package descriptor of an application built
// on the framework: a small clistart.toml file next to the executable
// (or up the directory tree) declaring the program name, version and
// description. The parsed TOML is validated against an embedded CUE
// schema so a malformed descriptor fails at bootstrap with a precise
// message, before any user input is processed.
package manifest

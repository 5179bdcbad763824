// SPDX-License-Identifier: MPL-2.0

// Package clihelp renders usage and help text for applications built on
// the framework. Option lines are laid out by a two-pass column aligner:
// the first pass only measures label widths, the second emits every line
// with descriptions right-aligned to the widest label, clamped to a wrap
// limit. The same rendering closure runs in both passes, so it must
// produce identical label/description pairs each time.
package clihelp

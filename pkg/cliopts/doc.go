// SPDX-License-Identifier: MPL-2.0

// Package cliopts implements the options engine: ordered groups of option
// definitions, the argv scan that matches them, and the missing-mandatory
// bookkeeping that follows a scan.
//
// Declaration order matters everywhere. Groups keep the order they were
// registered in (or jump the queue with IsInsertInFront), definitions keep
// their order inside a group, and both help output and missing-mandatory
// diagnostics reproduce that order. Side effects are explicit function
// values: an Init callback establishes a definition's default on the
// Config before any argument is read, and an Action callback runs each
// time the flag is matched, receiving the captured value if the
// definition takes one.
//
// The engine never prints; scan failures are typed errors and unmatched
// tokens pass through to the caller, which decides whether to warn.
package cliopts

// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context for framework-level
// failures: the ActionableError type carries what was attempted, which
// resource was involved and how to fix it, and a small catalog of known
// issues pairs recurring failures with rendered markdown guidance.
//
// The resolution and parsing cores never use this package; their errors
// are plain typed values. issue is for the bootstrap path (descriptor
// loading, configuration, registry construction), where a bare error
// string leaves the CLI author guessing.
package issue

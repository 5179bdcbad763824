// SPDX-License-Identifier: MPL-2.0

// Package clierr defines the process exit-code taxonomy and the ExitError
// wrapper used to carry a code through error returns instead of calling
// os.Exit deep inside handlers.
//
// Syntax-category failures (unresolvable commands, malformed options,
// missing mandatory options) map to ExitSyntax and make the application
// shell print help; everything else passes through as application-defined
// codes.
package clierr

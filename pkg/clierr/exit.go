// SPDX-License-Identifier: MPL-2.0

package clierr

import (
	"errors"
	"fmt"
)

// ExitCode represents a process exit status code.
type ExitCode int

// The exit-code taxonomy. The values are part of the contract with
// scripts wrapping programs built on this framework; do not renumber.
const (
	// ExitSuccess is a clean run.
	ExitSuccess ExitCode = iota
	// ExitSyntax is a user input error: unresolvable command, malformed
	// or missing options. The shell prints help alongside it.
	ExitSyntax
	// ExitApplication is a command failure with no more specific code.
	ExitApplication
	// ExitInput is a failure to read an input resource.
	ExitInput
	// ExitOutput is a failure to write an output resource.
	ExitOutput
	// ExitChild is a child process failure surfaced as our own.
	ExitChild
	// ExitPrerequisites is an unmet environment precondition.
	ExitPrerequisites
)

// String returns the taxonomy name for diagnostics and logs.
func (c ExitCode) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitSyntax:
		return "syntax"
	case ExitApplication:
		return "application"
	case ExitInput:
		return "input"
	case ExitOutput:
		return "output"
	case ExitChild:
		return "child"
	case ExitPrerequisites:
		return "prerequisites"
	default:
		return fmt.Sprintf("exit(%d)", int(c))
	}
}

// ExitError signals a specific exit code without forcing os.Exit in
// command handlers. The application shell unwraps it at the top level.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", int(e.Code))
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error { return e.Err }

// New wraps err with the given exit code.
func New(code ExitCode, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// Syntax wraps a user input error into the syntax category.
func Syntax(err error) *ExitError {
	return &ExitError{Code: ExitSyntax, Err: err}
}

// CodeOf extracts the exit code carried by err: the ExitError's code when
// one is in the chain, ExitSuccess for nil, ExitApplication otherwise.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitApplication
}

// IsSyntax reports whether err carries the syntax exit code.
func IsSyntax(err error) bool {
	return CodeOf(err) == ExitSyntax
}

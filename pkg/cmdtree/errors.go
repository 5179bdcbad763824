// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic detection with errors.Is. The typed
// errors below wrap these so callers can branch on the failure kind while
// still receiving the exact user-facing diagnostic text.
var (
	// ErrNotSupported indicates a word that matches no registered spelling.
	ErrNotSupported = errors.New("command not supported")
	// ErrNotUnique indicates an abbreviation shared by several spellings.
	ErrNotUnique = errors.New("command not unique")
	// ErrMisspelled indicates a word that kept going past a unique match
	// with characters that no registered spelling continues.
	ErrMisspelled = errors.New("command probably misspelled")
	// ErrDuplicateCommand indicates two sibling spellings that collide.
	ErrDuplicateCommand = errors.New("duplicate command")
	// ErrNoCommands indicates a registry with nothing resolvable in it.
	ErrNoCommands = errors.New("no commands registered")
	// ErrEmptyCommand indicates a declared node with neither a handler nor
	// subcommands, which can never be resolved into anything runnable.
	ErrEmptyCommand = errors.New("command has neither handler nor subcommands")
)

type (
	// NotSupportedError is returned when a word (or word sequence) matches
	// no registered command spelling.
	NotSupportedError struct {
		// Words is the offending word sequence as typed by the user.
		Words string
	}

	// NotUniqueError is returned when an abbreviated word is a prefix of
	// more than one registered spelling.
	NotUniqueError struct {
		Word string
	}

	// MisspelledError is returned when a word continues past a uniquely
	// matched spelling with characters that diverge from it. The displayed
	// text is the same as for an unsupported command; only the type differs.
	MisspelledError struct {
		Words string
	}

	// DuplicateCommandError is a construction-time error raised when a name
	// or alias collides with an existing sibling spelling. It indicates a
	// bug in the caller's command declarations, not a runtime condition.
	DuplicateCommandError struct {
		// Spelling is the colliding name or alias (lowercased).
		Spelling string
		// Existing is the name of the sibling that already claims it.
		Existing string
	}
)

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("Command '%s' is not supported.", e.Words)
}

// Unwrap returns ErrNotSupported for use with errors.Is.
func (e *NotSupportedError) Unwrap() error { return ErrNotSupported }

func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("Command '%s' is not unique.", e.Word)
}

// Unwrap returns ErrNotUnique for use with errors.Is.
func (e *NotUniqueError) Unwrap() error { return ErrNotUnique }

func (e *MisspelledError) Error() string {
	return fmt.Sprintf("Command '%s' is not supported.", e.Words)
}

// Unwrap returns ErrMisspelled for use with errors.Is.
func (e *MisspelledError) Unwrap() error { return ErrMisspelled }

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("duplicate command: spelling '%s' already used by command '%s'",
		e.Spelling, e.Existing)
}

// Unwrap returns ErrDuplicateCommand for use with errors.Is.
func (e *DuplicateCommandError) Unwrap() error { return ErrDuplicateCommand }

// IsResolutionError reports whether err is one of the typed lookup failures
// (not supported, not unique, probably misspelled). These are user input
// errors of the syntax category; construction-time errors are not included.
func IsResolutionError(err error) bool {
	return errors.Is(err, ErrNotSupported) ||
		errors.Is(err, ErrNotUnique) ||
		errors.Is(err, ErrMisspelled)
}

// SPDX-License-Identifier: MPL-2.0

package cliopts

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two scan failures. Both are user input errors
// of the syntax category; they abort the scan immediately.
var (
	// ErrExpectsValue indicates a value-taking option at the very end of
	// argv with no embedded value to capture.
	ErrExpectsValue = errors.New("option expects a value")
	// ErrValueNotAllowed indicates a captured value outside a
	// definition's enumerated value set.
	ErrValueNotAllowed = errors.New("value not allowed")
)

type (
	// ExpectsValueError is returned when a value-taking option has no
	// token left to consume as its value.
	ExpectsValueError struct {
		// Spelling is the flag spelling as typed.
		Spelling string
	}

	// ValueNotAllowedError is returned when a captured value is not in
	// the definition's enumerated set.
	ValueNotAllowedError struct {
		Value    string
		Spelling string
	}
)

func (e *ExpectsValueError) Error() string {
	return fmt.Sprintf("'%s' expects a value", e.Spelling)
}

// Unwrap returns ErrExpectsValue for use with errors.Is.
func (e *ExpectsValueError) Unwrap() error { return ErrExpectsValue }

func (e *ValueNotAllowedError) Error() string {
	return fmt.Sprintf("Value '%s' not allowed for '%s'", e.Value, e.Spelling)
}

// Unwrap returns ErrValueNotAllowed for use with errors.Is.
func (e *ValueNotAllowedError) Unwrap() error { return ErrValueNotAllowed }

// IsParseError reports whether err is one of the typed scan failures.
func IsParseError(err error) bool {
	return errors.Is(err, ErrExpectsValue) || errors.Is(err, ErrValueNotAllowed)
}

// missingMandatoryMessage builds the documented diagnostic for one
// unmatched mandatory definition.
func missingMandatoryMessage(def *Definition) string {
	return fmt.Sprintf("Mandatory '%s' not found", strings.Join(def.Flags, "|"))
}

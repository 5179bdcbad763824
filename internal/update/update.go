// SPDX-License-Identifier: MPL-2.0

// Package update implements the end-of-run update notification. A Checker
// compares the running version against the latest published one; the host
// consults it after the command action completes and prints a short notice
// when a newer release exists. The notifier is advisory only: it never
// downloads or installs anything.
package update

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion indicates a version string is not valid semver.
var ErrInvalidVersion = errors.New("invalid semantic version")

type (
	// Checker reports whether a newer version than current is available.
	// Implementations must not write to standard streams; presentation is
	// the host's responsibility.
	Checker interface {
		// Check returns the latest known version and true when it is strictly
		// newer than current. It returns ErrInvalidVersion (wrapped) when
		// either version string cannot be parsed.
		Check(current string) (latest string, newer bool, err error)
	}

	// StaticChecker is a Checker backed by a fixed latest version. It performs
	// no network I/O, which makes it suitable both for tests and for hosts
	// that resolve the latest version out of band.
	StaticChecker struct {
		Latest string
	}
)

// Check compares current against the configured latest version.
func (c *StaticChecker) Check(current string) (string, bool, error) {
	currentNorm, err := normalize(current)
	if err != nil {
		return "", false, err
	}
	latestNorm, err := normalize(c.Latest)
	if err != nil {
		return "", false, err
	}
	return c.Latest, semver.Compare(currentNorm, latestNorm) < 0, nil
}

// Notice formats the single-line notification printed when a newer version
// exists.
func Notice(program, current, latest string) string {
	return fmt.Sprintf(">>> New version of %s is available: %s -> %s <<<",
		program, current, latest)
}

// normalize prepends the "v" prefix expected by the semver package and
// validates the result.
func normalize(v string) (string, error) {
	norm := v
	if !strings.HasPrefix(norm, "v") {
		norm = "v" + norm
	}
	if !semver.IsValid(norm) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return norm, nil
}

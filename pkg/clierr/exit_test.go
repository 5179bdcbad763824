// SPDX-License-Identifier: MPL-2.0

package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitApplication},
		{name: "exit error", err: New(ExitInput, errors.New("gone")), want: ExitInput},
		{name: "wrapped exit error", err: fmt.Errorf("context: %w", Syntax(errors.New("bad"))), want: ExitSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExitError_Message(t *testing.T) {
	t.Parallel()
	if got, want := New(ExitChild, nil).Error(), "exit status 5"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := Syntax(errors.New("Command 'x' is not supported.")).Error(), "Command 'x' is not supported."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsSyntax(t *testing.T) {
	t.Parallel()
	if !IsSyntax(Syntax(errors.New("bad"))) {
		t.Error("IsSyntax should detect a syntax exit error")
	}
	if IsSyntax(errors.New("bad")) {
		t.Error("IsSyntax should reject a plain error")
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()
	if got := ExitSyntax.String(); got != "syntax" {
		t.Errorf("ExitSyntax.String() = %q, want \"syntax\"", got)
	}
	if got := ExitCode(42).String(); got != "exit(42)" {
		t.Errorf("ExitCode(42).String() = %q, want \"exit(42)\"", got)
	}
}

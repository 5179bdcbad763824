// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"clistart/pkg/clierr"
)

func TestRunCommandExitStatusPassesThrough(t *testing.T) {
	t.Parallel()

	cmd := &runCommand{ctx: testContext()}
	code, err := cmd.Run([]string{"exit 7"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if code != clierr.ExitCode(7) {
		t.Errorf("code = %d, want 7", code)
	}
}

func TestRunCommandOutputAndParams(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	cmd := &runCommand{ctx: ctx}
	code, err := cmd.Run([]string{`echo "hello $1"`, "world"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if code != clierr.ExitSuccess {
		t.Errorf("code = %d, want success", code)
	}
	out := ctx.Out.(*bytes.Buffer).String()
	if !strings.Contains(out, "hello world") {
		t.Errorf("out = %q, want \"hello world\"", out)
	}
}

func TestRunCommandSyntaxError(t *testing.T) {
	t.Parallel()

	cmd := &runCommand{ctx: testContext()}
	code, err := cmd.Run([]string{"if then fi"})
	if err == nil {
		t.Fatal("Run() should fail on a malformed script")
	}
	if code != clierr.ExitSyntax {
		t.Errorf("code = %d, want %d", code, clierr.ExitSyntax)
	}
}

func TestRunCommandNoScript(t *testing.T) {
	t.Parallel()

	cmd := &runCommand{ctx: testContext()}
	if code, err := cmd.Run(nil); err == nil || code != clierr.ExitSyntax {
		t.Errorf("Run(nil) = %d, %v; want syntax failure", code, err)
	}
}

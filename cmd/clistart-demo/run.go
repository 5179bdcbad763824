// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

func runSpec() cmdtree.Spec {
	return cmdtree.Spec{
		Name: "run",
		Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
			return &runCommand{ctx: ctx}
		}),
	}
}

// runCommand executes its first positional argument as a POSIX shell
// script through the embedded interpreter; the rest become the script's
// positional parameters. No external shell is involved.
type runCommand struct {
	ctx *cliapp.Context
}

func (c *runCommand) OptionGroups() []*cliopts.Group { return nil }

func (c *runCommand) Run(args []string) (clierr.ExitCode, error) {
	if len(args) == 0 {
		return clierr.ExitSyntax, errors.New("run expects a script argument")
	}
	script := args[0]

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return clierr.ExitSyntax, fmt.Errorf("script syntax error: %w", err)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(os.Stdin, c.ctx.Out, c.ctx.ErrOut),
	}
	// "--" ends option processing; without it a parameter like "-v"
	// would be taken for a shell option.
	if len(args) > 1 {
		opts = append(opts, interp.Params(append([]string{"--"}, args[1:]...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return clierr.ExitApplication, fmt.Errorf("creating interpreter: %w", err)
	}

	c.ctx.Log.Debug("running script", "params", len(args)-1)
	if err := runner.Run(context.Background(), prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return clierr.ExitCode(status), nil
		}
		return clierr.ExitChild, fmt.Errorf("script execution failed: %w", err)
	}
	return clierr.ExitSuccess, nil
}

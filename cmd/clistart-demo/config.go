// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"clistart/internal/config"
	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

func configSpec() cmdtree.Spec {
	return cmdtree.Spec{
		Name:    "config",
		Aliases: []string{"conf"},
		Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
			return &configCommand{ctx: ctx}
		}),
	}
}

// configCommand shows the effective host-level settings.
type configCommand struct {
	ctx *cliapp.Context
}

func (c *configCommand) OptionGroups() []*cliopts.Group { return nil }

func (c *configCommand) Run(_ []string) (clierr.ExitCode, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return clierr.ExitPrerequisites, fmt.Errorf("resolving configuration folder: %w", err)
	}

	fmt.Fprintf(c.ctx.Out, "configuration folder: %s\n", dir)
	fmt.Fprintf(c.ctx.Out, "log level: %s\n", c.ctx.Config.LogLevel)
	return clierr.ExitSuccess, nil
}

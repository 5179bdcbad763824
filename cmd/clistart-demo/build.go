// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

func buildSpec() cmdtree.Spec {
	return cmdtree.Spec{
		Name:    "build",
		Aliases: []string{"b", "bild"},
		Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
			return &buildCommand{ctx: ctx}
		}),
	}
}

// buildCommand pretends to build the given targets. It exercises the
// repeatable option form.
type buildCommand struct {
	ctx *cliapp.Context
}

func (c *buildCommand) OptionGroups() []*cliopts.Group {
	return []*cliopts.Group{{
		Title: "Build options",
		Definitions: []*cliopts.Definition{
			{
				Flags:      []string{"--target", "-t"},
				Help:       "Target to build",
				HasValue:   true,
				ValueName:  "name",
				IsMultiple: true,
				Action: func(cfg *cliopts.Config, value string) {
					cfg.Append("build.targets", value)
				},
			},
			{
				Flags: []string{"--clean"},
				Help:  "Remove previous outputs first",
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.Set("build.clean", true)
				},
			},
		},
	}}
}

func (c *buildCommand) Run(_ []string) (clierr.ExitCode, error) {
	targets := c.ctx.Config.GetStrings("build.targets")
	if len(targets) == 0 {
		targets = []string{"all"}
	}

	if c.ctx.Config.GetBool("build.clean") {
		fmt.Fprintln(c.ctx.Out, "cleaning previous outputs")
	}
	for _, target := range targets {
		c.ctx.Log.Debug("building", "target", target)
		fmt.Fprintf(c.ctx.Out, "building %s... done\n", target)
	}
	return clierr.ExitSuccess, nil
}

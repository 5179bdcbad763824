// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

func multiSpec() cmdtree.Spec {
	return cmdtree.Spec{
		Name: "multi",
		Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
			return &multiCommand{ctx: ctx}
		}),
	}
}

// multiCommand exercises the mandatory and enumerated option forms
// together with positional arguments.
type multiCommand struct {
	ctx *cliapp.Context
}

func (c *multiCommand) OptionGroups() []*cliopts.Group {
	return []*cliopts.Group{{
		Title: "Multi options",
		Definitions: []*cliopts.Definition{
			{
				Flags:       []string{"--config", "-c"},
				Help:        "Configuration name",
				HasValue:    true,
				ValueName:   "name",
				IsMandatory: true,
				Action: func(cfg *cliopts.Config, value string) {
					cfg.Set("multi.config", value)
				},
			},
			{
				Flags:         []string{"--kind", "-k"},
				Help:          "Build kind",
				HasValue:      true,
				ValueName:     "kind",
				AllowedValues: []string{"debug", "release"},
				Init: func(cfg *cliopts.Config) {
					cfg.Set("multi.kind", "debug")
				},
				Action: func(cfg *cliopts.Config, value string) {
					cfg.Set("multi.kind", value)
				},
			},
		},
	}}
}

func (c *multiCommand) Run(args []string) (clierr.ExitCode, error) {
	fmt.Fprintf(c.ctx.Out, "configuration: %s, kind: %s\n",
		c.ctx.Config.GetString("multi.config"),
		c.ctx.Config.GetString("multi.kind"))
	if len(args) > 0 {
		fmt.Fprintf(c.ctx.Out, "arguments: %s\n", strings.Join(args, " "))
	}
	return clierr.ExitSuccess, nil
}

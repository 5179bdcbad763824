// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"clistart/pkg/cliapp"
	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

// copySpec declares the "copy" namespace. Each leaf copies a file with a
// different transform; the aliases make the subcommands reachable by
// their shortest unambiguous prefixes too.
func copySpec() cmdtree.Spec {
	return cmdtree.Spec{
		Name: "copy",
		Subcommands: []cmdtree.Spec{
			{
				Name:    "binary",
				Aliases: []string{"by"},
				Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
					return &copyCommand{ctx: ctx, transform: binaryTransform}
				}),
			},
			{
				Name:    "ascii",
				Aliases: []string{"ai"},
				Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
					return &copyCommand{ctx: ctx, transform: asciiTransform}
				}),
			},
			{
				Name:    "utf",
				Aliases: []string{"alt"},
				Handler: cliapp.CommandFactory(func(ctx *cliapp.Context) cliapp.Command {
					return &copyCommand{ctx: ctx, transform: utfTransform}
				}),
			},
		},
	}
}

type copyCommand struct {
	ctx       *cliapp.Context
	transform func(data []byte) ([]byte, error)
}

func (c *copyCommand) OptionGroups() []*cliopts.Group {
	return []*cliopts.Group{{
		Title: "Copy options",
		Definitions: []*cliopts.Definition{
			{
				Flags:       []string{"--file", "-f"},
				Help:        "Input file",
				HasValue:    true,
				ValueName:   "file",
				IsMandatory: true,
				Action: func(cfg *cliopts.Config, value string) {
					cfg.Set("copy.input", value)
				},
			},
			{
				Flags:       []string{"--output", "-o"},
				Help:        "Output file",
				HasValue:    true,
				ValueName:   "file",
				IsMandatory: true,
				Action: func(cfg *cliopts.Config, value string) {
					cfg.Set("copy.output", value)
				},
			},
		},
	}}
}

func (c *copyCommand) Run(_ []string) (clierr.ExitCode, error) {
	input := c.ctx.Config.GetString("copy.input")
	output := c.ctx.Config.GetString("copy.output")

	data, err := os.ReadFile(input)
	if err != nil {
		return clierr.ExitInput, fmt.Errorf("reading %s: %w", input, err)
	}
	data, err = c.transform(data)
	if err != nil {
		return clierr.ExitInput, fmt.Errorf("%s: %w", input, err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return clierr.ExitOutput, fmt.Errorf("writing %s: %w", output, err)
	}

	c.ctx.Log.Info("copied", "from", input, "to", output, "bytes", len(data))
	return clierr.ExitSuccess, nil
}

// binaryTransform copies bytes untouched.
func binaryTransform(data []byte) ([]byte, error) {
	return data, nil
}

// asciiTransform substitutes every non-ASCII byte with '?'.
func asciiTransform(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, b := range data {
		if b > 0x7F {
			out[i] = '?'
		} else {
			out[i] = b
		}
	}
	return out, nil
}

// utfTransform copies the input verbatim after checking it is valid UTF-8.
func utfTransform(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("input is not valid UTF-8")
	}
	return data, nil
}

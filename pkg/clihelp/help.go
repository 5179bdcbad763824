// SPDX-License-Identifier: MPL-2.0

package clihelp

import (
	"strings"

	"clistart/pkg/cliopts"
)

// OutputTitle writes the program description as the help header.
func (h *Help) OutputTitle(description string) {
	if description == "" {
		return
	}
	h.Output("%s", TitleStyle.Render(description))
	h.Output("")
}

// OutputUsage writes the usage line for the program or for one resolved
// command. path holds the canonical command words, empty for the
// program-level help; hasCommands adds the <command> placeholder.
func (h *Help) OutputUsage(program string, path []string, hasCommands bool) {
	line := "Usage: " + CmdStyle.Render(program)
	if len(path) > 0 {
		line += " " + strings.Join(path, " ")
	}
	if hasCommands {
		line += " <command>"
	}
	line += " [<options>...] [<args>...]"
	h.Output("%s", line)
}

// OutputCommands writes the alphabetized command list, wrapped at the
// right margin and indented under a "where <command> is one of:" header.
func (h *Help) OutputCommands(names []string) {
	if len(names) == 0 {
		return
	}
	h.Output("")
	h.Output("%s", SubtitleStyle.Render("where <command> is one of:"))

	const indent = "  "
	line := indent
	for i, name := range names {
		entry := name
		if i < len(names)-1 {
			entry += ", "
		}
		if len(line)+len(entry) > rightLimit && line != indent {
			h.Output("%s", strings.TrimRight(line, " "))
			line = indent
		}
		line += entry
	}
	if line != indent {
		h.Output("%s", strings.TrimRight(line, " "))
	}
}

// OutputOptionGroups lays out every group through one aligner session,
// so the left column is shared across all groups — the widest label in
// any group decides the alignment of all of them.
func (h *Help) OutputOptionGroups(groups []*cliopts.Group) {
	h.TwoPassAlign(func() {
		for _, g := range groups {
			h.OutputMaybe("")
			h.OutputMaybe("%s", SubtitleStyle.Render(g.Title+":"))
			for _, def := range g.Definitions {
				h.OutputAligned(optionLabel(def), optionDescription(def))
			}
		}
	})
}

// optionLabel builds the left-column text for one definition, for
// example "  --loglevel <level>".
func optionLabel(def *cliopts.Definition) string {
	label := "  " + strings.Join(def.Flags, "|")
	if def.HasValue {
		name := def.ValueName
		if name == "" {
			name = "s"
		}
		label += " <" + name + ">"
	}
	return label
}

// optionDescription builds the right-column text, annotating enumerated
// value sets and mandatory options.
func optionDescription(def *cliopts.Definition) string {
	desc := def.Help
	if len(def.AllowedValues) > 0 {
		desc += " (" + strings.Join(def.AllowedValues, "|") + ")"
	}
	if def.IsMandatory {
		desc += " (mandatory)"
	}
	return strings.TrimSpace(desc)
}

// SPDX-License-Identifier: MPL-2.0

package cliopts

import "slices"

type (
	// Definition describes one option: its flag spellings, whether and
	// which values it accepts, how often it may appear, and the side
	// effects that wire it to the Config.
	Definition struct {
		// Flags holds the spellings, most explicit first (for example
		// ["--output", "-o"]). Must not be empty.
		Flags []string

		// Help is the description shown in help output.
		Help string

		// HasValue marks a definition that consumes a value, either
		// embedded as spelling=value or as the following token.
		HasValue bool

		// ValueName names the value placeholder in help output ("file",
		// "level"). Empty means the generic "s".
		ValueName string

		// AllowedValues, when non-empty, restricts the captured value to
		// this closed set.
		AllowedValues []string

		// IsMultiple allows the option to appear more than once.
		IsMultiple bool

		// IsMandatory requires at least one occurrence per parse; a
		// missing mandatory option is accumulated as a diagnostic, not
		// raised as an error.
		IsMandatory bool

		// IsEarly marks options processed in a separate pass before
		// command resolution (working directory, log level, help), so
		// their effect applies before anything else is decided.
		IsEarly bool

		// Init establishes the definition's default on the Config. It
		// runs once per invocation, before any argument is read.
		Init func(cfg *Config)

		// Action runs each time the flag is matched. value is the
		// captured value, or "" for definitions without one.
		Action func(cfg *Config, value string)
	}

	// Group is a titled, ordered list of definitions. Common groups are
	// shared by every command of the program; the rest belong to one
	// command. IsInsertInFront gives a group (or, when merging into an
	// existing title, its definitions) help-display priority.
	Group struct {
		Title           string
		IsCommon        bool
		IsInsertInFront bool
		Definitions     []*Definition
	}

	// Options is the engine: the registered command-specific and common
	// groups plus the per-parse bookkeeping of which definitions were
	// matched. It is an explicit value owned by one invocation context,
	// never process-wide state.
	Options struct {
		groups    []*Group
		common    []*Group
		processed map[*Definition]bool
	}
)

// New returns an empty options engine.
func New() *Options {
	return &Options{processed: map[*Definition]bool{}}
}

// AddGroups registers command-specific groups. A group whose title is
// already registered contributes its definitions to the existing group
// instead of duplicating it; fresh titles are appended, or placed first
// when the group asks for front insertion.
func (o *Options) AddGroups(groups ...*Group) {
	o.groups = merge(o.groups, groups)
}

// AddCommonGroups registers groups shared across all commands, with the
// same merge rules as AddGroups.
func (o *Options) AddCommonGroups(groups ...*Group) {
	o.common = merge(o.common, groups)
}

func merge(existing []*Group, incoming []*Group) []*Group {
	for _, g := range incoming {
		target := findGroup(existing, g.Title)
		if target == nil {
			if g.IsInsertInFront {
				existing = append([]*Group{g}, existing...)
			} else {
				existing = append(existing, g)
			}
			continue
		}
		if g.IsInsertInFront {
			target.Definitions = append(slices.Clone(g.Definitions), target.Definitions...)
		} else {
			target.Definitions = append(target.Definitions, g.Definitions...)
		}
	}
	return existing
}

func findGroup(groups []*Group, title string) *Group {
	for _, g := range groups {
		if g.Title == title {
			return g
		}
	}
	return nil
}

// Groups returns the command-specific groups in display order.
func (o *Options) Groups() []*Group { return slices.Clone(o.groups) }

// CommonGroups returns the shared groups in display order.
func (o *Options) CommonGroups() []*Group { return slices.Clone(o.common) }

// AllGroups returns every applicable group, command-specific first, then
// common. This is the iteration order for defaults, missing-mandatory
// diagnostics and help layout alike.
func (o *Options) AllGroups() []*Group {
	all := make([]*Group, 0, len(o.groups)+len(o.common))
	all = append(all, o.groups...)
	all = append(all, o.common...)
	return all
}

// InitConfig runs every definition's Init callback across all groups, in
// registration order, establishing defaults unconditionally before any
// argument is read.
func (o *Options) InitConfig(cfg *Config) {
	for _, g := range o.AllGroups() {
		for _, def := range g.Definitions {
			if def.Init != nil {
				def.Init(cfg)
			}
		}
	}
}

// MissingMandatory returns one diagnostic per mandatory definition whose
// Action never ran during the latest parse, preserving group and
// definition order. Multiplicity does not matter: one occurrence
// satisfies a mandatory option.
func (o *Options) MissingMandatory() []string {
	var missing []string
	for _, g := range o.AllGroups() {
		for _, def := range g.Definitions {
			if def.IsMandatory && !o.processed[def] {
				missing = append(missing, missingMandatoryMessage(def))
			}
		}
	}
	return missing
}

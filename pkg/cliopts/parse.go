// SPDX-License-Identifier: MPL-2.0

package cliopts

import (
	"slices"
	"strings"
)

// Outcome is the result of one argv scan: the tokens not consumed as
// options or their values (everything after a literal "--" separator is
// kept verbatim, the separator included) and one human-readable
// diagnostic per unmatched mandatory definition, in declaration order.
type Outcome struct {
	Remaining        []string
	MissingMandatory []string
}

// Parse scans argv left to right against every registered definition,
// applying Action side effects to cfg as flags match. No state survives
// between calls; each Parse starts a fresh matched set against the same
// Config instance.
func (o *Options) Parse(cfg *Config, argv []string) (*Outcome, error) {
	o.processed = map[*Definition]bool{}
	remaining, err := o.scan(cfg, argv, false)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Remaining:        remaining,
		MissingMandatory: o.MissingMandatory(),
	}, nil
}

// ParseEarly runs the same matching rules but only for definitions
// marked IsEarly. It is meant for the pass before command resolution, so
// options like "change working directory" or "show help" take effect
// before the command's own groups even apply. The returned slice holds
// the tokens the early pass did not consume; command resolution and the
// full parse continue from there.
func (o *Options) ParseEarly(cfg *Config, argv []string) ([]string, error) {
	return o.scan(cfg, argv, true)
}

// scan is the single left-to-right pass shared by Parse and ParseEarly.
func (o *Options) scan(cfg *Config, argv []string, earlyOnly bool) ([]string, error) {
	var remaining []string
	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		// Everything after the separator is positional, verbatim,
		// separator included.
		if tok == "--" {
			remaining = append(remaining, argv[i:]...)
			break
		}

		def, spelling, value, hasEmbedded := o.match(tok)
		if def == nil || (earlyOnly && !def.IsEarly) {
			remaining = append(remaining, tok)
			continue
		}

		if def.HasValue && !hasEmbedded {
			// The next token is consumed unconditionally, even when it
			// looks like another flag; only a truly exhausted argv fails.
			if i+1 >= len(argv) {
				return nil, &ExpectsValueError{Spelling: spelling}
			}
			i++
			value = argv[i]
		}
		if def.HasValue && len(def.AllowedValues) > 0 && !slices.Contains(def.AllowedValues, value) {
			return nil, &ValueNotAllowedError{Value: value, Spelling: spelling}
		}

		if def.Action != nil {
			def.Action(cfg, value)
		}
		o.processed[def] = true
	}
	return remaining, nil
}

// match finds the definition a token denotes. A token matches a spelling
// exactly, or as spelling=value when the definition takes a value and the
// token embeds one; the value is split off at the first '='. The returned
// spelling is the flag form as typed, without any embedded value.
func (o *Options) match(tok string) (def *Definition, spelling, value string, hasEmbedded bool) {
	name, embedded, hasEq := strings.Cut(tok, "=")
	for _, g := range o.AllGroups() {
		for _, d := range g.Definitions {
			for _, s := range d.Flags {
				if s == tok {
					return d, s, "", false
				}
				if hasEq && d.HasValue && s == name {
					return d, s, embedded, true
				}
			}
		}
	}
	return nil, "", "", false
}

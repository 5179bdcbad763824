// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one catalogued issue.
type Id int

const (
	DescriptorNotFoundId Id = iota + 1
	DescriptorParseErrorId
	NoCommandsDeclaredId
	ConfigLoadFailedId
)

// MarkdownMsg is markdown text rendered before display.
type MarkdownMsg string

// Issue pairs a recurring framework-level failure with guidance for the
// CLI author on how to fix it.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render returns the guidance as styled terminal text.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	// render is swappable in tests to avoid terminal detection.
	render = glamour.Render

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundId,
		mdMsg: `
# No package descriptor found!

The application could not locate its 'clistart.toml' descriptor.

## Search locations (in order of precedence):
1. The directory of the invoking executable
2. The current directory and its parents

## Things you can try:
- Create a descriptor next to your executable:
~~~toml
name = "mytool"
version = "1.0.0"
description = "My multi-command tool"
~~~
- Or pass the manifest to the application explicitly at construction.`,
	}

	descriptorParseErrorIssue = &Issue{
		id: DescriptorParseErrorId,
		mdMsg: `
# Failed to parse the package descriptor!

Your 'clistart.toml' contains syntax errors or invalid fields.

## Common issues:
- Invalid TOML syntax (missing quotes, stray brackets)
- A missing required field ('name' or 'version')
- A version that is not a semantic version triplet

## Example of a valid descriptor:
~~~toml
name = "mytool"
version = "1.2.3"
description = "My multi-command tool"
~~~`,
	}

	noCommandsDeclaredIssue = &Issue{
		id: NoCommandsDeclaredId,
		mdMsg: `
# No commands declared!

The command registry resolves nothing: no command was registered before
the application started, or every registered node was invalid.

## Things you can try:
- Register at least one command on the application's registry
- Give pure namespace nodes at least one subcommand
- Check registration errors instead of discarding them`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The host configuration file could not be read.

## Configuration locations:
- $XDG_CONFIG_HOME/clistart/config.toml (Linux)
- Environment variables with the CLISTART prefix

## Things you can try:
- Check the file's TOML syntax
- Remove the file to fall back to defaults
- Override single settings via environment, e.g.:
~~~
$ CLISTART_LOG_LEVEL=debug mytool ...
~~~`,
	}

	issues = map[Id]*Issue{
		descriptorNotFoundIssue.Id():   descriptorNotFoundIssue,
		descriptorParseErrorIssue.Id(): descriptorParseErrorIssue,
		noCommandsDeclaredIssue.Id():   noCommandsDeclaredIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every catalogued issue, in no particular order.
func Values() []*Issue {
	return maps.Values(issues)
}

// Ids returns every catalogued id, sorted.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}

// Get returns the issue for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}

// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	"io"

	"github.com/charmbracelet/log"

	"clistart/pkg/clierr"
	"clistart/pkg/cliopts"
)

type (
	// Context carries everything a command needs for one invocation. It is
	// built by the App after the early options pass and command resolution,
	// handed to the command factory, and discarded when the run ends.
	Context struct {
		// ProgramName is the executable name from the package descriptor.
		ProgramName string
		// Version is the program version from the package descriptor.
		Version string
		// Config is the per-invocation option record. Defaults are applied
		// before the command sees it; option actions mutate it during the
		// full parse.
		Config *cliopts.Config
		// Log is the invocation logger, leveled according to the resolved
		// log level. It writes to ErrOut.
		Log *log.Logger
		// Out is the stream for regular command output.
		Out io.Writer
		// ErrOut is the stream for diagnostics, warnings and logs.
		ErrOut io.Writer
		// CommandPath holds the canonical words of the resolved command
		// ("copy binary" even when invoked as "c by").
		CommandPath []string
	}

	// Command is what a command factory produces: its option groups, which
	// the shell merges with the common groups before parsing, and the
	// action itself. Run receives the positional arguments that survived
	// the parse and returns the exit code for the process.
	Command interface {
		OptionGroups() []*cliopts.Group
		Run(args []string) (clierr.ExitCode, error)
	}

	// CommandFactory builds a Command bound to one invocation context. It
	// is the handler payload registered on command tree nodes.
	CommandFactory func(ctx *Context) Command
)

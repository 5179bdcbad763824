// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	"github.com/charmbracelet/log"

	"clistart/pkg/cliopts"
)

// LogLevels is the closed set accepted by --loglevel, ordered from most
// quiet to most chatty.
var LogLevels = []string{"silent", "warn", "info", "verbose", "debug", "trace"}

// commonGroup builds the options group every application carries. The
// defaultLevel seeds the log level before any flag is read.
func commonGroup(defaultLevel string) *cliopts.Group {
	return &cliopts.Group{
		Title:    "Common options",
		IsCommon: true,
		Definitions: []*cliopts.Definition{
			{
				Flags:   []string{"--help", "-h"},
				Help:    "Quick help",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.IsHelp = true
				},
			},
			{
				Flags:   []string{"--version"},
				Help:    "Show version",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.IsVersion = true
				},
			},
			{
				Flags:         []string{"--loglevel"},
				Help:          "Set log level",
				HasValue:      true,
				ValueName:     "level",
				AllowedValues: LogLevels,
				IsEarly:       true,
				Init: func(cfg *cliopts.Config) {
					cfg.LogLevel = defaultLevel
				},
				Action: func(cfg *cliopts.Config, value string) {
					cfg.LogLevel = value
				},
			},
			{
				Flags:   []string{"-s", "--silent"},
				Help:    "Disable all messages (--loglevel silent)",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.LogLevel = "silent"
				},
			},
			{
				Flags:   []string{"-q", "--quiet"},
				Help:    "Mostly quiet, warnings only (--loglevel warn)",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.LogLevel = "warn"
				},
			},
			{
				Flags:      []string{"--verbose", "-v"},
				Help:       "Informative verbose (--loglevel verbose)",
				IsEarly:    true,
				IsMultiple: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.LogLevel = "verbose"
				},
			},
			{
				Flags:   []string{"-d", "--debug"},
				Help:    "Debug messages (--loglevel debug)",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.LogLevel = "debug"
				},
			},
			{
				Flags:   []string{"-dd", "--trace"},
				Help:    "Trace messages (--loglevel trace)",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.LogLevel = "trace"
				},
			},
			{
				Flags:     []string{"-C"},
				Help:      "Set current folder",
				HasValue:  true,
				ValueName: "folder",
				IsEarly:   true,
				Action: func(cfg *cliopts.Config, value string) {
					cfg.WorkingDir = value
				},
			},
			{
				Flags:   []string{"--no-update-notifier"},
				Help:    "Skip check for a more recent version",
				IsEarly: true,
				Action: func(cfg *cliopts.Config, _ string) {
					cfg.NoUpdateNotifier = true
				},
			},
		},
	}
}

// parseLevel maps the framework's six log levels onto the logger's. The
// silent level parks the threshold above fatal so nothing gets through;
// verbose and trace share the nearest logger level of their neighbors.
func parseLevel(level string) log.Level {
	switch level {
	case "silent":
		return log.FatalLevel + 1
	case "warn":
		return log.WarnLevel
	case "verbose":
		return log.InfoLevel
	case "debug", "trace":
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

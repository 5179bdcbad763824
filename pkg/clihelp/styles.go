// SPDX-License-Identifier: MPL-2.0

package clihelp

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across help
// and diagnostic output. Designed for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for the program title.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for descriptions and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for error diagnostics.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warning diagnostics.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for command and option spellings.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles built from the palette.
var (
	// TitleStyle is for the program title line.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for group titles and section headers.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for the "error:" diagnostic prefix.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for the "warning:" diagnostic prefix.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names inside usage lines.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

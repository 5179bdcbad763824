// SPDX-License-Identifier: MPL-2.0

package clihelp

import (
	"fmt"
	"io"
)

const (
	// middleLimit is the wrap limit for the aligned label column. A label
	// at least this long pushes its description to the next line.
	middleLimit = 40
	// rightLimit is the overall line width used when wrapping the
	// command list.
	rightLimit = 79
)

// Help is one help-rendering session. It owns the output writer and the
// running state of the two-pass aligner; create one per render.
type Help struct {
	w io.Writer

	// limit is the wrap limit for the label column.
	limit int
	// secondPass is false while measuring, true while emitting.
	secondPass bool
	// width is the running maximum label length during the first pass
	// and the fixed left-column width during the second.
	width int
}

// New returns a Help session writing to w.
func New(w io.Writer) *Help {
	return &Help{w: w, limit: middleLimit}
}

// Output writes one formatted line.
func (h *Help) Output(format string, args ...any) {
	fmt.Fprintf(h.w, format+"\n", args...)
}

// TwoPassAlign runs render twice: first to measure every candidate
// label (nothing is emitted), then to emit with the left column fixed to
// the measured maximum, clamped to the wrap limit, plus one separator
// space. render must produce identical label/description pairs per pass.
func (h *Help) TwoPassAlign(render func()) {
	h.secondPass = false
	h.width = 0
	render()
	if h.width > h.limit {
		h.width = h.limit
	}
	h.width++
	h.secondPass = true
	render()
}

// OutputAligned handles one label/description pair. During the first
// pass it only updates the running maximum; during the second it emits
// the pair, splitting over two lines when the label reaches the wrap
// limit.
func (h *Help) OutputAligned(label, description string) {
	if !h.secondPass {
		if len(label) > h.width {
			h.width = len(label)
		}
		return
	}
	if len(label) >= h.limit {
		h.Output("%s", label)
		h.Output("%*s%s", h.width, "", description)
		return
	}
	h.Output("%-*s%s", h.width, label, description)
}

// OutputMaybe writes a formatted line only during the emitting pass.
// Group titles and blank spacers use it so measurement stays silent.
func (h *Help) OutputMaybe(format string, args ...any) {
	if h.secondPass {
		h.Output(format, args...)
	}
}

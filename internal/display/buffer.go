// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display owns the on-screen layout state for the capture view:
// a vertical history region of resolved key names and a single-line
// composed-text bar.
//
// The buffer is pure state with no rendering or I/O of its own, so the
// capture model can draw it and tests can drive it directly.
package display

import (
	"github.com/jeranaias/keyglass/internal/util"
)

// Minimum usable dimensions. Anything smaller degrades to 1x1 rather
// than crashing or writing out of bounds.
const (
	minWidth  = 1
	minHeight = 1
)

// =============================================================================
// BUFFER
// =============================================================================

// Buffer holds the scrolling history region and the composed-text bar.
//
// History uses ring semantics over the visible rows: when the cursor moves
// past the last row it wraps to the top and overwrites the oldest line in
// place. Appending never errors and never grows beyond the visible height.
type Buffer struct {
	width  int
	height int

	rows   []string // fixed-size visible rows, overwritten in place
	cursor int      // next row to write

	composed string // running line of printable characters
}

// New creates a buffer sized to the visible region. Dimensions below the
// 1x1 minimum are clamped.
func New(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Append writes name as the next history line, wrapping to the top row
// once the visible height is exceeded. Printable events also append ch to
// the composed text; the composed line is truncated to the visible width
// (keeping the tail) rather than erroring.
func (b *Buffer) Append(name string, printable bool, ch rune) {
	b.rows[b.cursor] = util.TruncateWidth(name, b.width)
	b.cursor = (b.cursor + 1) % b.height

	if printable {
		b.composed = util.TailWidth(b.composed+string(ch), b.composedWidth())
	}
}

// Visible returns a copy of the visible history rows in screen order.
// Always exactly height entries; rows not yet written are empty strings.
func (b *Buffer) Visible() []string {
	out := make([]string, b.height)
	copy(out, b.rows)
	return out
}

// Composed returns the current composed-text line.
func (b *Buffer) Composed() string {
	return b.composed
}

// Clear resets the history region. The composed text survives: it resets
// only at session start.
func (b *Buffer) Clear() {
	for i := range b.rows {
		b.rows[i] = ""
	}
	b.cursor = 0
}

// Resize adjusts the buffer to new terminal dimensions, best effort: the
// most recently written rows are kept when the region shrinks. The
// composed text is re-truncated to the new width.
func (b *Buffer) Resize(width, height int) {
	width = max(width, minWidth)
	height = max(height, minHeight)

	if b.rows == nil {
		b.width = width
		b.height = height
		b.rows = make([]string, height)
		return
	}
	if width == b.width && height == b.height {
		return
	}

	recent := b.recentRows(height)
	rows := make([]string, height)
	for i, line := range recent {
		rows[i] = util.TruncateWidth(line, width)
	}

	b.width = width
	b.height = height
	b.rows = rows
	b.cursor = len(recent) % height
	b.composed = util.TailWidth(b.composed, b.composedWidth())
}

// Width returns the current visible width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the current visible height.
func (b *Buffer) Height() int {
	return b.height
}

// =============================================================================
// INTERNAL
// =============================================================================

// recentRows returns up to n of the most recently written non-empty rows,
// oldest first. Used when resizing to carry history across dimensions.
func (b *Buffer) recentRows(n int) []string {
	var out []string
	// Walk the ring starting at the cursor (oldest surviving row).
	for i := 0; i < b.height; i++ {
		row := b.rows[(b.cursor+i)%b.height]
		if row != "" {
			out = append(out, row)
		}
	}
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// composedWidth is the cell budget for the composed-text line. One cell is
// reserved so the cursor position never pushes past the terminal edge.
func (b *Buffer) composedWidth() int {
	return max(b.width-1, minWidth)
}

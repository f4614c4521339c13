// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the keyglass application.
package util

import (
	"github.com/mattn/go-runewidth"
)

// UNICODE: Width-aware truncation preserves multi-byte characters.
// Display cells, not bytes or runes, are what matter in a terminal:
// CJK and fullwidth characters occupy two columns.

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width, keeping
// the head of the string. No ellipsis is appended.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// TailWidth truncates a string to a maximum display width, keeping the
// tail of the string. Used for the composed-text bar, where the most
// recently typed characters are the ones worth showing.
func TailWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	width := 0
	// Walk backward until adding one more rune would overflow.
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if width+w > maxWidth {
			return string(runes[i+1:])
		}
		width += w
	}
	return s
}

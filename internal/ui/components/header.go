// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keyglass TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/keyglass/internal/ui/styles"
)

// Header is the fixed top bar: application title plus the capture-scope
// notice so the window always states what it is doing.
type Header struct {
	theme *styles.Theme
}

// NewHeader creates a header component.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{theme: theme}
}

// Render draws the header at the given width.
func (h *Header) Render(width int) string {
	title := h.theme.HeaderTitle.Render("keyglass")
	notice := h.theme.HeaderSubtitle.Render("capturing keys in this window only")

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", notice)
	return h.theme.Header.Width(width).Render(line)
}

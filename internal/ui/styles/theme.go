// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the keyglass TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// HISTORY REGION STYLES
	// ==========================================================================

	HistoryLine    lipgloss.Style
	HistoryControl lipgloss.Style

	// ==========================================================================
	// COMPOSED TEXT BAR STYLES
	// ==========================================================================

	ComposedLabel lipgloss.Style
	ComposedText  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusActive lipgloss.Style
	StatusLabel  lipgloss.Style
	StatusValue  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// ERROR STYLES
	// ==========================================================================

	Error lipgloss.Style
}

// NewTheme creates a theme matched to the current terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles builds all the lipgloss styles.
func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HistoryLine = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.HistoryControl = lipgloss.NewStyle().
		Foreground(Amber)

	t.ComposedLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.ComposedText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.StatusActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)
	t.StatusLabel = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.StatusValue = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)
}

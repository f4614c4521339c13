// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the keyglass TUI.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/keyglass/internal/session"
	"github.com/jeranaias/keyglass/internal/ui/styles"
	"github.com/jeranaias/keyglass/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the fixed bottom bar: capture indicator, session stats, the
// session log location, and the control-key shortcuts.
type StatusBar struct {
	Width int

	theme *styles.Theme
	helps []key.Binding
}

// NewStatusBar creates a status bar component. helps supplies the shortcut
// bindings shown on the right-hand side.
func NewStatusBar(theme *styles.Theme, helps []key.Binding) *StatusBar {
	return &StatusBar{Width: 80, theme: theme, helps: helps}
}

// Render draws the status bar for the given session snapshot and log path.
func (s *StatusBar) Render(st session.Status, logPath string) string {
	// Keep the path from crowding out the rest of the bar on narrow
	// terminals. Truncation happens on the plain string, before styling,
	// so width math never sees escape sequences.
	path := util.TruncateWidth(logPath, max(s.Width/3, 8))

	segments := []string{
		s.theme.StatusActive.Render("REC"),
		s.theme.StatusLabel.Render("keys ") + s.theme.StatusValue.Render(fmt.Sprintf("%d", st.KeyCount)),
		s.theme.StatusLabel.Render("up ") + s.theme.StatusValue.Render(formatDuration(st.Duration)),
		s.theme.StatusLabel.Render("log ") + s.theme.StatusValue.Render(path),
	}
	for _, b := range s.helps {
		h := b.Help()
		segments = append(segments, s.theme.ShortcutKey.Render(h.Key)+s.theme.ShortcutDesc.Render(" "+h.Desc))
	}

	bar := strings.Join(segments, s.theme.StatusLabel.Render("  |  "))
	return s.theme.StatusBar.Width(s.Width).MaxWidth(s.Width).Render(bar)
}

// formatDuration renders a session duration as mm:ss or hh:mm:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/jeranaias/keyglass/internal/util"
)

// =============================================================================
// VIEW - renders both regions from buffer state
// =============================================================================

// View draws the full screen: header, history region, composed-text bar,
// and status bar. It is a pure function of model state, so rendering the
// same state twice produces identical output.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header.Render(m.width))
	b.WriteString("\n")

	for _, row := range m.buf.Visible() {
		b.WriteString(m.renderHistoryRow(row))
		b.WriteString("\n")
	}

	b.WriteString(m.renderComposedBar())

	if m.showStatusBar {
		b.WriteString("\n")
		b.WriteString(m.status.Render(m.sess.Status(), m.log.Path()))
	}

	return b.String()
}

// renderHistoryRow styles one resolved key name. Control names (multi-cell:
// SPACE, ENTER, bracketed fallbacks) get the control accent; single
// printable characters render plain.
func (m Model) renderHistoryRow(row string) string {
	if row == "" {
		return ""
	}
	if len([]rune(row)) > 1 {
		return m.theme.HistoryControl.Render(row)
	}
	return m.theme.HistoryLine.Render(row)
}

// renderComposedBar draws the fixed composed-text region.
func (m Model) renderComposedBar() string {
	label := m.theme.ComposedLabel.Render("> ")
	text := m.buf.Composed()

	// The label takes two cells of the line budget.
	text = util.TailWidth(text, max(m.width-2, 1))
	return label + m.theme.ComposedText.Render(text)
}

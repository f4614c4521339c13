// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keys resolves raw terminal key events into display names.
//
// This file defines the keyboard bindings that control the capture view
// itself, as opposed to the keys being displayed. Control bindings are still
// resolved, displayed, and logged like any other keypress; the binding only
// adds a side effect on top.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the capture view.
type KeyMap struct {
	Quit  key.Binding
	Clear key.Binding
}

// DefaultKeyMap returns the default key bindings for the capture view.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "end session"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear view"),
		),
	}
}

// ShortHelp returns the bindings to show in the status bar help segment.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Clear}
}

// FullHelp returns all binding groups for a full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Clear},
	}
}

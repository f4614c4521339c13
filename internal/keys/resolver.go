// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keys resolves raw terminal key events into display names.
//
// The resolver is a total function: every representable key event maps to a
// non-empty, human-readable name. Printable characters resolve to the
// literal character, recognized control keys resolve to fixed names, and
// everything else falls back to a bracketed representation so no event is
// ever silently dropped.
package keys

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// CONTROL KEY NAMES
// =============================================================================

// Fixed display names for the recognized control keys.
const (
	NameSpace     = "SPACE"
	NameEnter     = "ENTER"
	NameBackspace = "BACKSPACE"
	NameEsc       = "ESC"
	NameTab       = "TAB"
)

// =============================================================================
// KEY PRESS
// =============================================================================

// KeyPress is a resolved key event ready for display and logging.
type KeyPress struct {
	// Name is the human-readable display name (e.g., "a", "SPACE", "[UP]").
	Name string
	// Printable is true when the event is a single printable character
	// that belongs in the composed-text bar.
	Printable bool
	// Ch is the printable character when Printable is true.
	Ch rune
	// Terminator is true when this key ends the capture session (ESC).
	Terminator bool
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve maps a Bubble Tea key message to a KeyPress.
// Total over the event domain: the fallback branch guarantees a non-empty
// name for key types outside the recognized set.
func Resolve(msg tea.KeyMsg) KeyPress {
	switch msg.Type {
	case tea.KeySpace:
		return KeyPress{Name: NameSpace}
	case tea.KeyEnter:
		return KeyPress{Name: NameEnter}
	case tea.KeyBackspace, tea.KeyDelete:
		return KeyPress{Name: NameBackspace}
	case tea.KeyEsc:
		return KeyPress{Name: NameEsc, Terminator: true}
	case tea.KeyTab:
		return KeyPress{Name: NameTab}
	case tea.KeyRunes:
		// Alt-modified runes are not plain text; fall through to the
		// bracketed representation ("[ALT+X]").
		if !msg.Alt && len(msg.Runes) == 1 {
			r := msg.Runes[0]
			// Some input paths deliver space as a plain rune.
			if r == ' ' {
				return KeyPress{Name: NameSpace}
			}
			return KeyPress{Name: string(r), Printable: true, Ch: r}
		}
	}
	return KeyPress{Name: fallbackName(msg)}
}

// ResolveCode maps a raw byte code to a display name. Printable ASCII
// resolves to the literal character, recognized control codes to their
// fixed names, and anything else to a bracketed decimal code.
func ResolveCode(code byte) string {
	switch code {
	case 0x20:
		return NameSpace
	case 0x0D, 0x0A:
		return NameEnter
	case 0x08, 0x7F:
		return NameBackspace
	case 0x1B:
		return NameEsc
	case 0x09:
		return NameTab
	}
	if code > 0x20 && code < 0x7F {
		return string(rune(code))
	}
	return fmt.Sprintf("[%d]", code)
}

// fallbackName builds a bracketed, upper-cased representation of a key
// event outside the recognized set (e.g., "[UP]", "[CTRL+L]", "[ALT+X]").
func fallbackName(msg tea.KeyMsg) string {
	s := msg.String()
	if s == "" {
		s = fmt.Sprintf("%d", int(msg.Type))
	}
	return "[" + strings.ToUpper(s) + "]"
}

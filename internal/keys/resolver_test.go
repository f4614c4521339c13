// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// RESOLVE CODE TESTS
// =============================================================================

func TestResolveCode_PrintableASCII(t *testing.T) {
	// Every printable code resolves to the literal single character.
	for code := byte(0x21); code < 0x7F; code++ {
		got := ResolveCode(code)
		want := string(rune(code))
		if got != want {
			t.Errorf("ResolveCode(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestResolveCode_ControlCodes(t *testing.T) {
	tests := []struct {
		code byte
		want string
	}{
		{0x20, "SPACE"},
		{0x0D, "ENTER"},
		{0x0A, "ENTER"},
		{0x08, "BACKSPACE"},
		{0x7F, "BACKSPACE"},
		{0x1B, "ESC"},
		{0x09, "TAB"},
	}

	for _, tt := range tests {
		if got := ResolveCode(tt.code); got != tt.want {
			t.Errorf("ResolveCode(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestResolveCode_FallbackNeverEmpty(t *testing.T) {
	// Total coverage: every byte resolves to a non-empty name.
	for code := 0; code < 256; code++ {
		got := ResolveCode(byte(code))
		if got == "" {
			t.Fatalf("ResolveCode(%d) returned empty string", code)
		}
	}
}

func TestResolveCode_FallbackIsDecimal(t *testing.T) {
	if got := ResolveCode(0x01); got != "[1]" {
		t.Errorf("ResolveCode(0x01) = %q, want %q", got, "[1]")
	}
	if got := ResolveCode(0xFF); got != "[255]" {
		t.Errorf("ResolveCode(0xFF) = %q, want %q", got, "[255]")
	}
}

// =============================================================================
// RESOLVE KEY MESSAGE TESTS
// =============================================================================

func TestResolve_PrintableRune(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}
	kp := Resolve(msg)

	if kp.Name != "h" {
		t.Errorf("Name = %q, want %q", kp.Name, "h")
	}
	if !kp.Printable {
		t.Error("Printable = false, want true")
	}
	if kp.Ch != 'h' {
		t.Errorf("Ch = %q, want %q", kp.Ch, 'h')
	}
	if kp.Terminator {
		t.Error("Terminator = true for printable rune")
	}
}

func TestResolve_ControlKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "SPACE"},
		{"space as rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, "SPACE"},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "ENTER"},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "BACKSPACE"},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, "BACKSPACE"},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, "ESC"},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "TAB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp := Resolve(tt.msg)
			if kp.Name != tt.want {
				t.Errorf("Name = %q, want %q", kp.Name, tt.want)
			}
			if kp.Printable {
				t.Errorf("control key %q marked printable", tt.want)
			}
		})
	}
}

func TestResolve_EscIsTerminator(t *testing.T) {
	kp := Resolve(tea.KeyMsg{Type: tea.KeyEsc})
	if !kp.Terminator {
		t.Error("ESC not marked as terminator")
	}

	// Nothing else terminates.
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		if Resolve(msg).Terminator {
			t.Errorf("%v marked as terminator", msg)
		}
	}
}

func TestResolve_FallbackBracketed(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, "[UP]"},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, "[CTRL+L]"},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, "[ALT+X]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp := Resolve(tt.msg)
			if kp.Name != tt.want {
				t.Errorf("Name = %q, want %q", kp.Name, tt.want)
			}
			if kp.Name == "" {
				t.Error("fallback produced empty name")
			}
			if kp.Printable {
				t.Error("fallback marked printable")
			}
		})
	}
}

func TestResolve_UnicodeRune(t *testing.T) {
	kp := Resolve(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'日'}})
	if kp.Name != "日" || !kp.Printable {
		t.Errorf("unicode rune resolution: got %+v", kp)
	}
}

// =============================================================================
// KEY MAP TESTS
// =============================================================================

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.Quit.Keys()) == 0 {
		t.Error("Quit binding has no keys")
	}
	if km.Quit.Keys()[0] != "esc" {
		t.Errorf("Quit bound to %q, want esc", km.Quit.Keys()[0])
	}
	if len(km.ShortHelp()) != 2 {
		t.Errorf("ShortHelp has %d bindings, want 2", len(km.ShortHelp()))
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// consent.go - Consent gate for keyglass.
//
// No key is ever recorded before this gate passes. The program prints the
// capture notice, reads exactly one line from the terminal, and proceeds
// only on a case-sensitive match of the literal "yes". Anything else -
// including EOF and an interrupted prompt - declines, which is a normal
// exit, not a failure.
package cli

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"
)

// ConsentAnswer is the only input that starts a capture session.
const ConsentAnswer = "yes"

// ConsentPrompt is printed before the blocking line read.
const ConsentPrompt = "Type YES to continue: "

// CaptureNotice is the plain-language description of what the tool does,
// shown before the consent prompt.
const CaptureNotice = `keyglass - terminal key display

This tool captures keystrokes typed in THIS terminal window only, while it
is running. Every key is shown on screen and appended to a plain-text
session log so you can audit exactly what was recorded. There is no
background capture and no capture outside this window.

Press Esc at any time to end the session.
`

// ConsentGranted reports whether a consent line starts capture. The match
// is exact and case-sensitive: only the literal "yes" (surrounding
// whitespace trimmed) grants consent.
func ConsentGranted(input string) bool {
	return strings.TrimSpace(input) == ConsentAnswer
}

// PromptForConsent prints the capture notice, reads one line, and reports
// whether consent was granted. A read error (EOF, interrupted prompt)
// counts as declined.
func PromptForConsent() bool {
	fmt.Print(CaptureNotice)
	fmt.Println()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	input, err := line.Prompt(ConsentPrompt)
	if err != nil {
		return false
	}
	return ConsentGranted(input)
}

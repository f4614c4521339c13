// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the keyglass CLI.
//
// keyglass has a single entry point with no required arguments; the flags
// here only adjust where the session log goes and expose the usual
// version/help surface.
package cli

import (
	"fmt"
	"strings"
)

// Command identifies what the invocation asked for.
type Command int

const (
	// CmdRun starts the capture TUI (the default).
	CmdRun Command = iota
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Args holds the parsed command line.
type Args struct {
	// LogDir overrides the configured session log directory when non-empty.
	LogDir string
}

// Parse interprets raw command-line arguments (without the program name).
// Unknown flags are an error so a typo never silently starts a capture
// session with unintended settings.
func Parse(raw []string) (Command, Args, error) {
	var args Args

	i := 0
	for i < len(raw) {
		arg := raw[i]
		switch {
		case arg == "--version" || arg == "-v":
			return CmdVersion, args, nil
		case arg == "--help" || arg == "-h":
			return CmdHelp, args, nil
		case arg == "--log-dir":
			if i+1 >= len(raw) {
				return CmdRun, args, fmt.Errorf("--log-dir requires a value")
			}
			args.LogDir = raw[i+1]
			i += 2
		case strings.HasPrefix(arg, "--log-dir="):
			args.LogDir = strings.TrimPrefix(arg, "--log-dir=")
			i++
		default:
			return CmdRun, args, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return CmdRun, args, nil
}

// Usage returns the help text.
func Usage() string {
	return `keyglass - consent-gated terminal key display

Renders each keystroke typed inside its own terminal window and appends a
timestamped record to a plain-text session log. Nothing is captured outside
this terminal, and nothing is captured before you consent.

Usage:
  keyglass [flags]

Flags:
  --log-dir <dir>   Directory for session logs (default "logs",
                    or $KEYGLASS_LOG_DIR)
  -v, --version     Print version information
  -h, --help        Show this help

Keys during capture:
  Esc               End the session
  Ctrl+L            Clear the history view
`
}

// keyglass - a consent-gated terminal key display.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/keyglass/internal/cli"
	"github.com/jeranaias/keyglass/internal/config"
	"github.com/jeranaias/keyglass/internal/logger"
	"github.com/jeranaias/keyglass/internal/session"
	"github.com/jeranaias/keyglass/internal/ui"
	"github.com/jeranaias/keyglass/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cli.Usage())
		os.Exit(1)
	}

	switch cmd {
	case cli.CmdVersion:
		fmt.Printf("keyglass %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	case cli.CmdHelp:
		fmt.Print(cli.Usage())
		return
	}

	os.Exit(runCapture(args))
}

// runCapture walks the session lifecycle: TTY gate, consent gate, log
// start, capture loop, log stop. Returns the process exit code.
func runCapture(args cli.Args) int {
	// TerminalUnavailable is fatal before consent is even requested.
	if err := cli.RequiresTTY("request consent"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.LoadOrInit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if args.LogDir != "" {
		cfg.Log.Dir = args.LogDir
	}
	if !cfg.UI.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Consent gate: nothing is created, opened, or captured before this
	// passes. Declining is a normal exit.
	if !cli.PromptForConsent() {
		fmt.Println("Consent declined. Nothing was captured.")
		return 0
	}

	now := time.Now()
	log, err := logger.Start(cfg.Log.Dir, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Guaranteed cleanup: the footer is written and the handle released
	// even when the capture loop ends abnormally. Stop is idempotent, so
	// the clean path below closing first is fine. The closure keeps the
	// footer stamped at stop time, not at defer time.
	defer func() { log.Stop(time.Now()) }()

	theme := styles.NewTheme()
	sess := session.NewManager(now)
	width, height := cli.GetTerminalSize()
	m := ui.NewModel(theme, log, sess, width, height, cfg.UI.ShowStatusBar)

	// The alternate screen buffer keeps the scrollback clean and restores
	// the terminal to its original state on exit.
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running keyglass: %v\n", err)
		return 1
	}

	if fm, ok := finalModel.(ui.Model); ok && fm.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: session ended: %v\n", fm.Err())
		return 1
	}

	if err := log.Stop(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Session ended. Log written to %s\n", log.Path())
	return 0
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the capture view: the single event loop that turns
// raw terminal key events into display updates and session log entries.
//
// Bubble Tea delivers messages to Update serially on one goroutine, which
// is exactly the concurrency model capture needs: the process blocks
// waiting for the next key, processes it completely - display first, then
// log - and only then reads the next event. No key is ever captured while
// the program is not actively blocked in its own window.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/keyglass/internal/display"
	"github.com/jeranaias/keyglass/internal/keys"
	"github.com/jeranaias/keyglass/internal/session"
	"github.com/jeranaias/keyglass/internal/ui/components"
	"github.com/jeranaias/keyglass/internal/ui/styles"
)

// Fixed rows around the history region: header, composed bar, status bar.
const (
	headerRows   = 1
	composedRows = 1
	statusRows   = 1
)

// Recorder is the session log capability the capture loop writes through.
// It is injected so the loop can be driven in tests without touching the
// filesystem.
type Recorder interface {
	Record(name string, at time.Time) error
	Path() string
}

// =============================================================================
// CAPTURE MODEL
// =============================================================================

// Model is the Bubble Tea model for a running capture session. It owns the
// whole program state for the session - display buffer, session stats, log
// handle - created at entry and torn down at exit, never ambient globals.
type Model struct {
	theme  *styles.Theme
	keymap keys.KeyMap

	buf  *display.Buffer
	log  Recorder
	sess *session.Manager

	header *components.Header
	status *components.StatusBar

	width         int
	height        int
	showStatusBar bool

	// err carries a fatal log write failure out of the event loop.
	err error

	// now is the clock; injectable for tests.
	now func() time.Time
}

// NewModel creates the capture model. width and height seed the layout
// until the first WindowSizeMsg arrives.
func NewModel(theme *styles.Theme, log Recorder, sess *session.Manager, width, height int, showStatusBar bool) Model {
	keymap := keys.DefaultKeyMap()
	m := Model{
		theme:         theme,
		keymap:        keymap,
		log:           log,
		sess:          sess,
		header:        components.NewHeader(theme),
		status:        components.NewStatusBar(theme, keymap.ShortHelp()),
		showStatusBar: showStatusBar,
		now:           time.Now,
	}
	m.resize(width, height)
	m.buf = display.New(width, m.historyHeight())
	return m
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// UPDATE - the capture loop body
// =============================================================================

// Update processes one event. For every key event the order is fixed:
// resolve, update the display buffer, append to the session log. Both
// complete before the next event is read.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.buf.Resize(msg.Width, m.historyHeight())
		return m, nil

	case tea.KeyMsg:
		kp := keys.Resolve(msg)

		// Display update precedes the log append for every event.
		m.buf.Append(kp.Name, kp.Printable, kp.Ch)
		if err := m.log.Record(kp.Name, m.now()); err != nil {
			// Capture must not continue without a log.
			m.err = err
			return m, tea.Quit
		}
		m.sess.RecordKey()

		switch {
		case kp.Terminator:
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlC:
			// SIGINT-equivalent: same clean termination path as ESC.
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Clear):
			m.buf.Clear()
		}
		return m, nil
	}

	return m, nil
}

// =============================================================================
// LAYOUT
// =============================================================================

// resize records new terminal dimensions, clamped to a 1x1 minimum.
func (m *Model) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
	m.status.Width = width
}

// chromeRows is how many rows the fixed regions occupy.
func (m Model) chromeRows() int {
	rows := headerRows + composedRows
	if m.showStatusBar {
		rows += statusRows
	}
	return rows
}

// historyHeight is the row budget for the scrolling history region.
// Degrades to 1 on tiny terminals rather than erroring.
func (m Model) historyHeight() int {
	h := m.height - m.chromeRows()
	if h < 1 {
		return 1
	}
	return h
}

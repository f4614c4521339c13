// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logger persists the human-auditable session record.
//
// One run owns one append-only plain-text file:
//
//	--- Session started 2024-01-15 09:30:00 ---
//	09:30:02 - h
//	09:30:03 - SPACE
//	--- Session ended 2024-01-15 09:30:10 ---
//
// A failed write is fatal for the session. Capture must never continue
// without a log: a silent recovery would mask data loss from the user and
// defeat the transparency the tool exists for.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Log line layouts. The file timestamp is fixed at session start.
const (
	fileTimeLayout   = "20060102_150405"
	headerTimeLayout = "2006-01-02 15:04:05"
	recordTimeLayout = "15:04:05"
)

// Key capture records are sensitive; keep them owner-only.
const (
	logDirPerm  = 0700
	logFilePerm = 0600
)

// =============================================================================
// SESSION LOG
// =============================================================================

// SessionLog is the open, append-only log file for one capture session.
// It is owned by a single goroutine for the lifetime of one run and is
// never shared across sessions.
type SessionLog struct {
	path   string
	f      *os.File
	closed bool
}

// Start creates the log directory if absent, opens a new session file named
// from the start timestamp, and writes the session header.
func Start(dir string, now time.Time) (*SessionLog, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("session_%s.txt", now.Format(fileTimeLayout))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log %s: %w", path, err)
	}

	s := &SessionLog{path: path, f: f}
	if err := s.writeLine(fmt.Sprintf("--- Session started %s ---", now.Format(headerTimeLayout))); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return s, nil
}

// Record appends one timestamped entry for a resolved key name.
func (s *SessionLog) Record(name string, at time.Time) error {
	if s.closed {
		return fmt.Errorf("session log already closed")
	}
	return s.writeLine(fmt.Sprintf("%s - %s", at.Format(recordTimeLayout), name))
}

// Stop appends the session footer and releases the file handle. Idempotent:
// both the normal termination path and the deferred cleanup guard call it,
// and only the first call writes the footer.
func (s *SessionLog) Stop(at time.Time) error {
	if s.closed {
		return nil
	}
	s.closed = true

	werr := s.writeLine(fmt.Sprintf("--- Session ended %s ---", at.Format(headerTimeLayout)))
	cerr := s.f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("failed to close session log: %w", cerr)
	}
	return nil
}

// Path returns the session log file path.
func (s *SessionLog) Path() string {
	return s.path
}

func (s *SessionLog) writeLine(line string) error {
	if _, err := s.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write session log: %w", err)
	}
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks identity and statistics for one capture session.
package session

import (
	"time"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks the current capture session. The capture loop is
// single-threaded, so no locking is needed: the terminal and the session
// state are owned by one goroutine for the whole run.
type Manager struct {
	sessionID string
	startTime time.Time
	keyCount  int
}

// NewManager starts tracking a session beginning at now.
func NewManager(now time.Time) *Manager {
	return &Manager{
		sessionID: generateSessionID(now),
		startTime: now,
	}
}

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// StartTime returns when the session started.
func (m *Manager) StartTime() time.Time {
	return m.startTime
}

// KeyCount returns how many key events the session has processed.
func (m *Manager) KeyCount() int {
	return m.keyCount
}

// RecordKey counts one processed key event.
func (m *Manager) RecordKey() {
	m.keyCount++
}

// Duration returns how long the session has been active.
func (m *Manager) Duration() time.Duration {
	return time.Since(m.startTime)
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time snapshot for the status bar.
type Status struct {
	SessionID string
	StartTime time.Time
	KeyCount  int
	Duration  time.Duration
}

// Status returns a snapshot of the session state.
func (m *Manager) Status() Status {
	return Status{
		SessionID: m.sessionID,
		StartTime: m.startTime,
		KeyCount:  m.keyCount,
		Duration:  time.Since(m.startTime),
	}
}

// generateSessionID creates a unique session ID.
func generateSessionID(now time.Time) string {
	return "sess_" + now.Format("20060102_150405")
}

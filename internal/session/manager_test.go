// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(start)

	if m.SessionID() != "sess_20240601_120000" {
		t.Errorf("SessionID = %q, want %q", m.SessionID(), "sess_20240601_120000")
	}
	if !m.StartTime().Equal(start) {
		t.Errorf("StartTime = %v, want %v", m.StartTime(), start)
	}
	if m.KeyCount() != 0 {
		t.Errorf("KeyCount = %d, want 0", m.KeyCount())
	}
}

func TestRecordKey(t *testing.T) {
	m := NewManager(time.Now())
	for i := 0; i < 7; i++ {
		m.RecordKey()
	}
	if m.KeyCount() != 7 {
		t.Errorf("KeyCount = %d, want 7", m.KeyCount())
	}
}

func TestStatus_Snapshot(t *testing.T) {
	m := NewManager(time.Now().Add(-time.Minute))
	m.RecordKey()

	st := m.Status()
	if st.SessionID != m.SessionID() {
		t.Errorf("Status.SessionID = %q, want %q", st.SessionID, m.SessionID())
	}
	if st.KeyCount != 1 {
		t.Errorf("Status.KeyCount = %d, want 1", st.KeyCount)
	}
	if st.Duration < time.Minute {
		t.Errorf("Status.Duration = %v, want >= 1m", st.Duration)
	}
}

// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// mockSessionCleaner is a mock implementation for testing.
type mockSessionCleaner struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockSessionCleaner) CleanupExpired(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return 2, nil
}

func (m *mockSessionCleaner) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestSessionJanitorService_String(t *testing.T) {
	svc := NewSessionJanitorService(&mockSessionCleaner{}, time.Minute, zerolog.Nop())
	if got := svc.String(); got != "session-janitor" {
		t.Errorf("String() = %q, want %q", got, "session-janitor")
	}
}

func TestSessionJanitorService_DefaultInterval(t *testing.T) {
	svc := NewSessionJanitorService(&mockSessionCleaner{}, 0, zerolog.Nop())
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", svc.interval)
	}
}

func TestSessionJanitorService_Sweeps(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"cleanup succeeds", nil},
		{"cleanup errors keep the loop alive", errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := &mockSessionCleaner{err: tt.err}
			svc := NewSessionJanitorService(cleaner, 20*time.Millisecond, zerolog.Nop())

			ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
			defer cancel()

			err := svc.Serve(ctx)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() error = %v, want deadline exceeded", err)
			}
			if got := cleaner.getCalls(); got < 2 {
				t.Errorf("CleanupExpired() called %d times, want at least 2", got)
			}
		})
	}
}

func TestSessionJanitorService_ImplementsSutureService(t *testing.T) {
	var _ suture.Service = (*SessionJanitorService)(nil)
}

// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SessionCleaner removes expired sessions. Satisfied by session.Store.
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// SessionJanitorService periodically purges expired sessions.
type SessionJanitorService struct {
	store    SessionCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSessionJanitorService creates a janitor sweeping store every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSessionJanitorService(store SessionCleaner, interval time.Duration, logger zerolog.Logger) *SessionJanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SessionJanitorService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "session-janitor").Logger(),
		name:     "session-janitor",
	}
}

// Serve implements the suture.Service interface.
func (s *SessionJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("session janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session janitor shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionJanitorService) sweep(ctx context.Context) {
	start := time.Now()
	n, err := s.store.CleanupExpired(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session cleanup failed")
		return
	}
	if n > 0 {
		s.logger.Debug().
			Int("removed", n).
			Dur("duration", time.Since(start)).
			Msg("expired sessions removed")
	}
}

// String returns the service name for logging.
func (s *SessionJanitorService) String() string {
	return s.name
}

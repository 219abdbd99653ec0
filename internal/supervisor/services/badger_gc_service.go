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

// GarbageCollector reclaims storage space. Satisfied by *session.Factory.
type GarbageCollector interface {
	RunGC() error
}

// BadgerGCService periodically runs BadgerDB value log garbage collection
// for the session store. Session updates rewrite whole records, so the
// value log grows without it.
type BadgerGCService struct {
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewBadgerGCService creates a GC service running every interval
// (default 10m).
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerGCService(gc GarbageCollector, interval time.Duration, logger zerolog.Logger) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &BadgerGCService{
		gc:       gc,
		interval: interval,
		logger:   logger.With().Str("service", "badger-gc").Logger(),
		name:     "badger-gc",
	}
}

// Serve implements the suture.Service interface. GC failures are logged
// and retried on the next tick rather than restarting the service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("value log gc failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("value log gc complete")
		}
	}
}

// String returns the service name for logging.
func (s *BadgerGCService) String() string {
	return s.name
}

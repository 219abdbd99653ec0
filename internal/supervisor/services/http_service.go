// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the What2Eat API server under supervision.
//
// ListenAndServe runs in its own goroutine. When the supervisor cancels
// the context the server is drained with Shutdown, bounded by the
// configured timeout, before Serve returns.
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	name            string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout
// defaults to 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	var addr string
	if s, ok := server.(*http.Server); ok {
		addr = s.Addr
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
		name:            "http-server",
	}
}

// Serve implements suture.Service.
//
// http.ErrServerClosed is not an error. A bind failure is returned
// wrapped so the supervisor restarts the service with backoff.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.logger.Info().Str("addr", h.addr).Msg("http server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// ctx is already cancelled, so drain on a fresh one.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("http server draining")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

// String returns the service name for logging.
func (h *HTTPServerService) String() string {
	return h.name
}

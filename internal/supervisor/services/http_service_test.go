// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeServer blocks in ListenAndServe until Shutdown, unless listenErr is set.
type fakeServer struct {
	listenErr   error
	shutdownErr error
	listens     atomic.Int32
	shutdowns   atomic.Int32
	started     chan struct{}
	stop        chan struct{}
	stopOnce    sync.Once
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}, 1), stop: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

func (f *fakeServer) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestNewHTTPServerService(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit", 30 * time.Second, 30 * time.Second},
		{"zero defaults", 0, 10 * time.Second},
		{"negative defaults", -time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHTTPServerService(newFakeServer(), tt.timeout, zerolog.Nop())
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q", svc.String())
			}
		})
	}

	svc := NewHTTPServerService(&http.Server{Addr: ":8080"}, 0, zerolog.Nop())
	if svc.addr != ":8080" {
		t.Errorf("addr = %q, want :8080", svc.addr)
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Run("drains on cancellation", func(t *testing.T) {
		server := newFakeServer()
		svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		server.waitStarted(t)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
		if server.shutdowns.Load() != 1 {
			t.Errorf("Shutdown calls = %d, want 1", server.shutdowns.Load())
		}
	})

	t.Run("bind failure is returned", func(t *testing.T) {
		bindErr := errors.New("bind: address already in use")
		server := newFakeServer()
		server.listenErr = bindErr
		svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

		if err := svc.Serve(context.Background()); !errors.Is(err, bindErr) {
			t.Errorf("Serve() = %v, want %v", err, bindErr)
		}
	})

	t.Run("shutdown failure is returned", func(t *testing.T) {
		shutdownErr := errors.New("deadline exceeded draining")
		server := newFakeServer()
		server.shutdownErr = shutdownErr
		svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		server.waitStarted(t)
		cancel()

		if err := <-errCh; !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want %v", err, shutdownErr)
		}
	})
}

func TestHTTPServerService_UnderSupervisor(t *testing.T) {
	server := newFakeServer()
	sup := suture.New("test-api", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(server, time.Second, zerolog.Nop()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	server.waitStarted(t)
	cancel()
	<-errCh

	if server.shutdowns.Load() < 1 {
		t.Error("server was not shut down")
	}
}

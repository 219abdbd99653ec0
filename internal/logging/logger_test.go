// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

// Init mutates global state, so these tests do not run in parallel.
func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("menu", "bibimbap").Msg("test message")

	output := buf.String()
	for _, want := range []string{"test message", `"level":"info"`, `"menu":"bibimbap"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("hidden")
	Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithSessionID(ctx, "0d8f2b6e-1111-2222-3333-abcdef124f1a")

	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-1"`) {
		t.Errorf("request_id missing: %s", out)
	}
	if !strings.Contains(out, `"session_id":"0d8f...4f1a"`) {
		t.Errorf("session_id not masked: %s", out)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("empty context returned a request id")
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"empty session", SanitizeSessionID, "", ""},
		{"short session", SanitizeSessionID, "abc", "***"},
		{"long session", SanitizeSessionID, "abcdefghijklmnop", "abcd...mnop"},
		{"appid redacted", SanitizeError, "GET https://x/?appid=k: timeout", "upstream error (details redacted)"},
		{"plain error", SanitizeError, "connection refused", "connection refused"},
		{"long error", SanitizeError, strings.Repeat("x", 250), strings.Repeat("x", 200) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSlogLogger(NewTestLogger(&buf))
	logger.WithGroup("sup").With("service", "http").Warn("restarting", "attempt", 2, "ok", false)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"message":"restarting"`, `"sup.service":"http"`, `"sup.attempt":2`, `"sup.ok":false`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(NewTestLogger(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled on a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on a warn logger")
	}
}

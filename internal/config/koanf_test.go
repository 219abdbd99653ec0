// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Weather.APIKey != "" {
		t.Errorf("Weather.APIKey should be empty by default")
	}
	if cfg.Weather.CacheTTL != 10*time.Minute {
		t.Errorf("Weather.CacheTTL = %v, want 10m", cfg.Weather.CacheTTL)
	}
	if !cfg.Session.IsMemoryStore() {
		t.Errorf("Session.Store = %q, want memory", cfg.Session.Store)
	}
	if cfg.Recommend.Selection.Alternatives != 3 {
		t.Errorf("Recommend.Selection.Alternatives = %d, want 3", cfg.Recommend.Selection.Alternatives)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"ENVIRONMENT", "server.environment"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"OPENWEATHER_API_KEY", "weather.api_key"},
		{"WEATHER_CACHE_TTL", "weather.cache_ttl"},
		{"SESSION_STORE", "session.store"},
		{"SESSION_TTL", "session.ttl"},
		{"CATALOG_PATH", "catalog.path"},
		{"RECOMMEND_SEED", "recommend.seed"},
		{"RECOMMEND_ALTERNATIVES", "recommend.selection.alternatives"},
		{"recommend_hot_at", "recommend.weather.hot_at"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server: {}"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("server: {}"), 0o600); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENWEATHER_API_KEY", "abc123")
	t.Setenv("WEATHER_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://what2eat.kr, https://www.what2eat.kr")
	t.Setenv("RECOMMEND_SEED", "7")
	t.Setenv("RECOMMEND_ALTERNATIVES", "2")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Weather.APIKey != "abc123" {
		t.Errorf("Weather.APIKey = %q, want abc123", cfg.Weather.APIKey)
	}
	if cfg.Weather.CacheTTL != 90*time.Second {
		t.Errorf("Weather.CacheTTL = %v, want 90s", cfg.Weather.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://www.what2eat.kr" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.Seed != 7 {
		t.Errorf("Recommend.Seed = %d, want 7", cfg.Recommend.Seed)
	}
	if cfg.Recommend.Selection.Alternatives != 2 {
		t.Errorf("Recommend.Selection.Alternatives = %d, want 2", cfg.Recommend.Selection.Alternatives)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Points.MealTimeMiss != -80 {
		t.Errorf("Recommend.Points.MealTimeMiss = %d, want -80 (default)", cfg.Recommend.Points.MealTimeMiss)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
// and the precedence of environment variables over it.
func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

logging:
  level: "warn"

session:
  store: badger
  store_path: /tmp/what2eat-sessions
  ttl: 30m

recommend:
  points:
    context_match: 40
  selection:
    positive_pool_size: 6
`
	configPath := filepath.Join(tmpDir, "what2eat.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env beats file)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Session.Store != SessionStoreBadger || cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Recommend.Points.ContextMatch != 40 {
		t.Errorf("Recommend.Points.ContextMatch = %d, want 40", cfg.Recommend.Points.ContextMatch)
	}
	if cfg.Recommend.Selection.PositivePoolSize != 6 {
		t.Errorf("Recommend.Selection.PositivePoolSize = %d, want 6", cfg.Recommend.Selection.PositivePoolSize)
	}
	if cfg.Recommend.Points.MealTimeMatch != 30 {
		t.Errorf("Recommend.Points.MealTimeMatch = %d, want 30 (default)", cfg.Recommend.Points.MealTimeMatch)
	}
}

func TestLoadFrom_MissingExplicitFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadWithKoanf_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad store", map[string]string{"SESSION_STORE": "redis"}, "SESSION_STORE"},
		{"badger without path", map[string]string{"SESSION_STORE": "badger", "SESSION_STORE_PATH": ""}, "SESSION_STORE_PATH"},
		{"placeholder key", map[string]string{"OPENWEATHER_API_KEY": "your_api_key_here"}, "OPENWEATHER_API_KEY"},
		{"base url with path", map[string]string{"OPENWEATHER_BASE_URL": "https://api.openweathermap.org/data"}, "OPENWEATHER_BASE_URL"},
		{"base url with ftp scheme", map[string]string{"OPENWEATHER_BASE_URL": "ftp://api.openweathermap.org"}, "OPENWEATHER_BASE_URL"},
		{"base url with query", map[string]string{"OPENWEATHER_BASE_URL": "https://api.openweathermap.org?units=metric"}, "OPENWEATHER_BASE_URL"},
		{"inverted thresholds", map[string]string{"RECOMMEND_COLD_AT": "40"}, "recommend"},
		{"rate limit out of range", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Environment(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS should not warn in development")
	}

	cfg.Server.Environment = "production"
	if !cfg.IsProduction() || !cfg.ShouldWarnAboutCORS() {
		t.Error("production with wildcard CORS should warn")
	}
}

func TestValidateWeatherBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"https://api.openweathermap.org", false},
		{"https://api.openweathermap.org/", false},
		{"http://127.0.0.1:8089", false},
		{"https://api.openweathermap.org/data/2.5", true},
		{"https://api.openweathermap.org/?appid=x", true},
		{"api.openweathermap.org", true},
		{"https://", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			err := validateWeatherBaseURL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWeatherBaseURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

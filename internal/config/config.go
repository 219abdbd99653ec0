// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package config

import (
	"time"

	"github.com/tomtom215/what2eat/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	engine, err := recommend.NewEngine(catalog, &cfg.Recommend, logger)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
	Weather   WeatherConfig    `koanf:"weather"`
	Session   SessionConfig    `koanf:"session"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings. The service has no
// accounts, so there is no authentication section.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// WeatherConfig holds OpenWeather client settings.
//
// Environment Variables:
//   - OPENWEATHER_API_KEY: API key; empty means the dummy report is always used
//   - OPENWEATHER_BASE_URL: upstream base URL (default: https://api.openweathermap.org)
//   - WEATHER_TIMEOUT: per-request timeout (default: 5s)
//   - WEATHER_CACHE_TTL: how long a report is reused per location (default: 10m)
//   - WEATHER_RATE_PER_MINUTE: outbound request budget (default: 50)
//   - WEATHER_BURST: outbound burst size (default: 5)
type WeatherConfig struct {
	APIKey        string        `koanf:"api_key"`
	BaseURL       string        `koanf:"base_url"`
	Timeout       time.Duration `koanf:"timeout"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
	RatePerMinute int           `koanf:"rate_per_minute"`
	Burst         int           `koanf:"burst"`
}

// SessionConfig holds questionnaire session storage settings.
type SessionConfig struct {
	// Store is the backend: "memory" or "badger".
	Store string `koanf:"store"`

	// StorePath is the BadgerDB directory, required when Store is "badger".
	StorePath string `koanf:"store_path"`

	// TTL is how long an idle session lives.
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired sessions are purged.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// CatalogConfig holds menu catalog settings.
type CatalogConfig struct {
	// Path to a catalog JSON file. Empty uses the embedded catalog.
	Path string `koanf:"path"`
}

// Load reads configuration with the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsMemoryStore reports whether sessions are kept in process memory.
func (s *SessionConfig) IsMemoryStore() bool {
	return s.Store == "" || s.Store == SessionStoreMemory
}

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreBadger = "badger"
)

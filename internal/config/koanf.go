// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/what2eat/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/what2eat/config.yaml",
	"/etc/what2eat/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Weather: WeatherConfig{
			APIKey:        "", // No key: dummy weather
			BaseURL:       "https://api.openweathermap.org",
			Timeout:       5 * time.Second,
			CacheTTL:      10 * time.Minute,
			RatePerMinute: 50,
			Burst:         5,
		},
		Session: SessionConfig{
			Store:           SessionStoreMemory,
			StorePath:       "/data/sessions",
			TTL:             2 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is LoadWithKoanf with an explicit config file. An empty path
// searches CONFIG_PATH and DefaultConfigPaths; a non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// OPENWEATHER_API_KEY -> weather.api_key
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Weather mappings
	"openweather_api_key":     "weather.api_key",
	"openweather_base_url":    "weather.base_url",
	"weather_timeout":         "weather.timeout",
	"weather_cache_ttl":       "weather.cache_ttl",
	"weather_rate_per_minute": "weather.rate_per_minute",
	"weather_burst":           "weather.burst",

	// Session mappings
	"session_store":            "session.store",
	"session_store_path":       "session.store_path",
	"session_ttl":              "session.ttl",
	"session_cleanup_interval": "session.cleanup_interval",

	// Catalog mappings
	"catalog_path": "catalog.path",

	// Recommendation engine mappings
	"recommend_seed":               "recommend.seed",
	"recommend_alternatives":       "recommend.selection.alternatives",
	"recommend_positive_pool_size": "recommend.selection.positive_pool_size",
	"recommend_fallback_pool_size": "recommend.selection.fallback_pool_size",
	"recommend_exponent":           "recommend.selection.exponent",
	"recommend_floor":              "recommend.selection.floor",
	"recommend_hot_at":             "recommend.weather.hot_at",
	"recommend_cold_at":            "recommend.weather.cold_at",
	"recommend_weather_bonus":      "recommend.weather.bonus",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - OPENWEATHER_API_KEY -> weather.api_key
//   - SESSION_STORE -> session.store
//   - RECOMMEND_SEED -> recommend.seed
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables never
	// pollute the config.
	return ""
}

// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateWeather(); err != nil {
		return err
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateWeather validates the OpenWeather client configuration
func (c *Config) validateWeather() error {
	if err := validateWeatherBaseURL(c.Weather.BaseURL); err != nil {
		return err
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}
	if c.Weather.CacheTTL < 0 {
		return fmt.Errorf("WEATHER_CACHE_TTL must not be negative")
	}
	if c.Weather.RatePerMinute < 1 {
		return fmt.Errorf("WEATHER_RATE_PER_MINUTE must be at least 1")
	}
	if c.Weather.Burst < 1 {
		return fmt.Errorf("WEATHER_BURST must be at least 1")
	}
	if c.Weather.APIKey != "" && containsPlaceholder(c.Weather.APIKey) {
		return fmt.Errorf("OPENWEATHER_API_KEY looks like a placeholder")
	}
	return nil
}

// validateWeatherBaseURL requires an http(s) origin. The client appends
// /data/2.5/weather itself, so a path or query would be doubled.
func validateWeatherBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("OPENWEATHER_BASE_URL is not a URL: %w", err)
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("OPENWEATHER_BASE_URL scheme must be http or https, got %q", u.Scheme)
	case u.Host == "":
		return fmt.Errorf("OPENWEATHER_BASE_URL host is required")
	case strings.TrimSuffix(u.Path, "/") != "":
		return fmt.Errorf("OPENWEATHER_BASE_URL must be an origin without a path, got %q", u.Path)
	case u.RawQuery != "":
		return fmt.Errorf("OPENWEATHER_BASE_URL must not carry a query")
	}
	return nil
}

// validSessionStores defines the allowed session store backends
var validSessionStores = map[string]bool{
	SessionStoreMemory: true,
	SessionStoreBadger: true,
}

// validateSession validates session store configuration
func (c *Config) validateSession() error {
	if !validSessionStores[c.Session.Store] {
		return fmt.Errorf("SESSION_STORE must be one of: memory, badger")
	}
	if c.Session.Store == SessionStoreBadger && c.Session.StorePath == "" {
		return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=badger")
	}
	if c.Session.TTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1m")
	}
	if c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}

// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package logging

import (
	"strings"
)

// SanitizeSessionID masks a session ID.
// Example: "0d8f2b6e-...-4f1a" -> "0d8f...4f1a"
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

// SanitizeError removes potentially sensitive information from error
// messages. Upstream URLs carry the OpenWeather appid, so anything that
// mentions it is replaced wholesale.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"appid",
		"api_key",
		"apikey",
		"secret",
		"token",
		"authorization",
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "upstream error (details redacted)"
		}
	}

	return truncateString(err, 200)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

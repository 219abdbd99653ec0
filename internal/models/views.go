// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package models

import (
	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/session"
	"github.com/tomtom215/what2eat/internal/weather"
)

// StepList is the payload of GET /api/v1/steps.
type StepList struct {
	Steps []menu.StepConfig `json:"steps"`
	Total int               `json:"total"`
}

// MenuList is the payload of GET /api/v1/menus.
type MenuList struct {
	Version int         `json:"version"`
	Count   int         `json:"count"`
	Items   []menu.Item `json:"items"`
}

// MenuDetail is the payload of GET /api/v1/menus/{id}.
type MenuDetail struct {
	Item  menu.Item      `json:"item"`
	Share menu.ShareCard `json:"share"`
}

// ReasonResult is the payload of POST /api/v1/reason.
type ReasonResult struct {
	MenuID string         `json:"menu_id"`
	Reason string         `json:"reason"`
	Share  menu.ShareCard `json:"share"`
}

// WeatherView is a weather report together with what the service derives
// from it.
type WeatherView struct {
	Weather    weather.Report `json:"weather"`
	ContextTag string         `json:"context_tag,omitempty"`
	Message    string         `json:"message"`
}

// NewWeatherView derives the context tag and the display message.
func NewWeatherView(r weather.Report, rng weather.RNG) WeatherView {
	snap := weather.SnapshotFromReport(r)
	return WeatherView{
		Weather:    r,
		ContextTag: snap.ContextTag(),
		Message:    weather.Message(snap.Temp, snap.Condition, rng),
	}
}

// SessionView is a session together with the step it is on.
type SessionView struct {
	Session     *session.State  `json:"session"`
	CurrentStep menu.StepConfig `json:"current_step"`
	TotalSteps  int             `json:"total_steps"`
}

// NewSessionView wraps a session state for rendering.
func NewSessionView(s *session.State) SessionView {
	return SessionView{
		Session:     s,
		CurrentStep: s.CurrentStep(),
		TotalSteps:  menu.StepCount(),
	}
}

// SessionWeather is the payload of POST /api/v1/sessions/{id}/weather.
type SessionWeather struct {
	SessionView
	WeatherView
	// Applied is false when the session already had weather.
	Applied bool `json:"applied"`
}

// SessionRecommendation is the payload of the session recommend and retry
// endpoints.
type SessionRecommendation struct {
	SessionView
	Result *recommend.Response `json:"result"`
}

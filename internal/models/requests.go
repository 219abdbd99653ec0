// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package models

import (
	"github.com/tomtom215/what2eat/internal/recommend"
)

// RecommendRequest is the body of POST /api/v1/recommend.
//
// Selections are validated against the tag vocabulary. WeatherTemp is the
// current temperature in °C and only adjusts scores when present.
type RecommendRequest struct {
	Selections  recommend.Selections `json:"selections"`
	ExcludeIDs  []string             `json:"exclude_ids" validate:"omitempty,max=200,dive,required,max=64"`
	WeatherTemp *float64             `json:"weather_temp" validate:"omitempty,gte=-90,lte=60"`
	Seed        int64                `json:"seed"`
}

// ReasonRequest is the body of POST /api/v1/reason.
type ReasonRequest struct {
	MenuID     string               `json:"menu_id" validate:"required,max=64"`
	Selections recommend.Selections `json:"selections"`
}

// SelectRequest is the body of POST /api/v1/sessions/{id}/select.
//
// Exactly one of Option or Values is given:
//   - Option toggles a single option of the step
//   - Values replaces the step's selection (an empty list clears it)
type SelectRequest struct {
	Step   string   `json:"step" validate:"required,facet"`
	Option string   `json:"option" validate:"required_without=Values,excluded_with=Values"`
	Values []string `json:"values" validate:"omitempty,max=11,dive,required"`
}

// IsToggle reports whether the request toggles a single option.
func (r *SelectRequest) IsToggle() bool {
	return r.Values == nil
}

// CoordinatesRequest is the body of POST /api/v1/sessions/{id}/weather.
// Missing coordinates are allowed: the dummy weather is used instead.
type CoordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

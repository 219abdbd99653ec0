// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"github.com/tomtom215/what2eat/internal/menu"
)

// Selections is the user's answers, one tag set per facet. An empty slice
// means nothing was chosen. The engine never mutates a Selections value.
type Selections struct {
	MealTime      []string `json:"mealTime" validate:"omitempty,max=5,dive,menutag=mealTime"`
	Companion     []string `json:"companion" validate:"omitempty,max=5,dive,menutag=companion"`
	Cuisine       []string `json:"cuisine" validate:"omitempty,max=7,dive,menutag=cuisine"`
	CookingMethod []string `json:"cookingMethod" validate:"omitempty,max=6,dive,menutag=cookingMethod"`
	Taste         []string `json:"taste" validate:"omitempty,max=7,dive,menutag=taste"`
	DishType      []string `json:"dishType" validate:"omitempty,max=8,dive,menutag=dishType"`
	Temperature   []string `json:"temperature" validate:"omitempty,max=3,dive,menutag=temperature"`
	Budget        []string `json:"budget" validate:"omitempty,max=5,dive,menutag=budget"`
	Context       []string `json:"context" validate:"omitempty,max=11,dive,menutag=context"`
}

// Values returns the raw selection for facet f, sentinels included.
func (s *Selections) Values(f menu.Facet) []string {
	switch f {
	case menu.FacetMealTime:
		return s.MealTime
	case menu.FacetCompanion:
		return s.Companion
	case menu.FacetCuisine:
		return s.Cuisine
	case menu.FacetCookingMethod:
		return s.CookingMethod
	case menu.FacetTaste:
		return s.Taste
	case menu.FacetDishType:
		return s.DishType
	case menu.FacetTemperature:
		return s.Temperature
	case menu.FacetBudget:
		return s.Budget
	case menu.FacetContext:
		return s.Context
	default:
		return nil
	}
}

// Set replaces the selection for facet f. Unknown facets are ignored.
func (s *Selections) Set(f menu.Facet, values []string) {
	v := append([]string(nil), values...)
	switch f {
	case menu.FacetMealTime:
		s.MealTime = v
	case menu.FacetCompanion:
		s.Companion = v
	case menu.FacetCuisine:
		s.Cuisine = v
	case menu.FacetCookingMethod:
		s.CookingMethod = v
	case menu.FacetTaste:
		s.Taste = v
	case menu.FacetDishType:
		s.DishType = v
	case menu.FacetTemperature:
		s.Temperature = v
	case menu.FacetBudget:
		s.Budget = v
	case menu.FacetContext:
		s.Context = v
	}
}

// Effective returns the selection for facet f with the "no preference"
// sentinels removed. A nil result means the facet does not constrain.
func (s *Selections) Effective(f menu.Facet) []string {
	var out []string
	for _, v := range s.Values(f) {
		if !menu.IsSentinel(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsEmpty reports whether no facet has any value, sentinels included.
func (s *Selections) IsEmpty() bool {
	for _, f := range menu.SelectionFacets {
		if len(s.Values(f)) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s *Selections) Clone() Selections {
	var out Selections
	for _, f := range menu.SelectionFacets {
		if v := s.Values(f); v != nil {
			out.Set(f, v)
		}
	}
	return out
}

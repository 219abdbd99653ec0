// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"slices"
	"testing"

	"github.com/tomtom215/what2eat/internal/menu"
)

func TestSelections_Effective(t *testing.T) {
	t.Parallel()

	sel := Selections{
		CookingMethod: []string{menu.Any},
		Context:       []string{menu.Pass},
		Temperature:   []string{menu.Hot, menu.RoomTemp},
		Taste:         []string{menu.Spicy, menu.Sour},
	}

	tests := []struct {
		facet menu.Facet
		want  []string
	}{
		{menu.FacetCookingMethod, nil},
		{menu.FacetContext, nil},
		{menu.FacetTemperature, []string{menu.Hot}},
		{menu.FacetTaste, []string{menu.Spicy, menu.Sour}},
		{menu.FacetBudget, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.facet), func(t *testing.T) {
			t.Parallel()
			if got := sel.Effective(tt.facet); !slices.Equal(got, tt.want) {
				t.Errorf("Effective(%s) = %v, want %v", tt.facet, got, tt.want)
			}
		})
	}
}

func TestSelections_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(&Selections{}).IsEmpty() {
		t.Error("zero Selections is not empty")
	}
	// A sentinel is still an answer.
	if (&Selections{Context: []string{menu.Pass}}).IsEmpty() {
		t.Error("Selections with only a sentinel reported empty")
	}
}

func TestSelections_SetAndValues(t *testing.T) {
	t.Parallel()

	var sel Selections
	in := []string{menu.Lunch, menu.Dinner}
	for _, f := range menu.SelectionFacets {
		sel.Set(f, in)
		if got := sel.Values(f); !slices.Equal(got, in) {
			t.Errorf("Values(%s) = %v after Set", f, got)
		}
	}

	in[0] = "changed"
	if sel.MealTime[0] != menu.Lunch {
		t.Error("Set kept a reference to the caller's slice")
	}

	sel.Set("unknown", in)
	if sel.Values("unknown") != nil {
		t.Error("unknown facet returned values")
	}
}

func TestSelections_Clone(t *testing.T) {
	t.Parallel()

	orig := Selections{MealTime: []string{menu.Lunch}, Taste: []string{menu.Spicy}}
	clone := orig.Clone()
	clone.MealTime[0] = menu.Dinner
	clone.Taste = append(clone.Taste, menu.Sweet)

	if orig.MealTime[0] != menu.Lunch || len(orig.Taste) != 1 {
		t.Errorf("modifying the clone changed the original: %+v", orig)
	}
	if clone.Budget != nil {
		t.Error("clone invented a budget selection")
	}
}

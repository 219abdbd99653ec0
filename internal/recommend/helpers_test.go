// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"math/rand"

	"github.com/tomtom215/what2eat/internal/menu"
)

// testItem returns a plain lunch item that can be tweaked by mut. Two items
// built from the same mut differ only in id.
func testItem(id string, mut func(*menu.Item)) menu.Item {
	it := menu.Item{
		ID:          id,
		Name:        id,
		Description: "desc-" + id,
		Calories:    menu.MidCalorie,
		Tags: menu.Tags{
			MealTime:    []string{menu.Lunch},
			Companion:   []string{menu.Friends},
			Cuisine:     []string{menu.Korean},
			Taste:       []string{menu.Salty},
			DishType:    []string{menu.Rice},
			Temperature: []string{menu.Hot},
			Budget:      []string{menu.Moderate},
			Texture:     []string{menu.Springy},
			Satiety:     menu.Normal,
		},
	}
	if mut != nil {
		mut(&it)
	}
	return it
}

func scoredByID(scored []ScoredItem) map[string]ScoredItem {
	out := make(map[string]ScoredItem, len(scored))
	for _, s := range scored {
		out[s.Item.ID] = s
	}
	return out
}

func scoredItem(id string, score int, cuisine, dish string) ScoredItem {
	return ScoredItem{
		Item: testItem(id, func(it *menu.Item) {
			it.Tags.Cuisine = []string{cuisine}
			it.Tags.DishType = []string{dish}
		}),
		Score: score,
	}
}

// fixedRNG always returns v.
type fixedRNG float64

func (f fixedRNG) Float64() float64 { return float64(f) }

func seeded(seed int64) RNG {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // test randomness
}

func ptr(f float64) *float64 { return &f }

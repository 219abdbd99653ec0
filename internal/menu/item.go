// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

// Item is an immutable catalog record.
type Item struct {
	// ID is the stable identifier used for exclusion and lookups.
	ID string `json:"id"`

	// Name is the Korean display name.
	Name string `json:"name"`

	// NameEn is the English display name.
	NameEn string `json:"nameEn"`

	// Emoji is shown next to the name on the result card.
	Emoji string `json:"emoji"`

	// ImageKeywords are optional search keywords for a stock photo.
	ImageKeywords []string `json:"imageKeywords,omitempty"`

	// Description is the static blurb used when no reason applies.
	Description string `json:"description"`

	// SpicyLevel ranges from 0 (not spicy) to 3.
	SpicyLevel int `json:"spicyLevel"`

	// CookTime is a free-form preparation time hint.
	CookTime string `json:"cookTime"`

	// Calories is one of LowCalorie, MidCalorie or HighCalorie.
	Calories string `json:"calories"`

	// PriceRange is a free-form price hint.
	PriceRange string `json:"priceRange"`

	// Tags holds the controlled-vocabulary tags of every facet.
	Tags Tags `json:"tags"`
}

// Tags are the facet tags of an item. Every facet is a set except Satiety.
type Tags struct {
	MealTime      []string `json:"mealTime"`
	Companion     []string `json:"companion"`
	Cuisine       []string `json:"cuisine"`
	CookingMethod []string `json:"cookingMethod,omitempty"`
	Taste         []string `json:"taste"`
	DishType      []string `json:"dishType"`
	Temperature   []string `json:"temperature"`
	Budget        []string `json:"budget"`
	Context       []string `json:"context"`
	Texture       []string `json:"texture"`
	Satiety       string   `json:"satiety"`
}

// Values returns the item's tags for facet f. Satiety is returned as a
// single-element slice when set.
func (t *Tags) Values(f Facet) []string {
	switch f {
	case FacetMealTime:
		return t.MealTime
	case FacetCompanion:
		return t.Companion
	case FacetCuisine:
		return t.Cuisine
	case FacetCookingMethod:
		return t.CookingMethod
	case FacetTaste:
		return t.Taste
	case FacetDishType:
		return t.DishType
	case FacetTemperature:
		return t.Temperature
	case FacetBudget:
		return t.Budget
	case FacetContext:
		return t.Context
	case FacetTexture:
		return t.Texture
	case FacetSatiety:
		if t.Satiety == "" {
			return nil
		}
		return []string{t.Satiety}
	default:
		return nil
	}
}

// Has reports whether the item carries value under facet f.
func (t *Tags) Has(f Facet, value string) bool {
	return Contains(t.Values(f), value)
}

// Contains reports whether value is present in set.
func Contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Intersection returns the values of want that also appear in have, in the
// order of want.
func Intersection(have, want []string) []string {
	var out []string
	for _, w := range want {
		if Contains(have, w) {
			out = append(out, w)
		}
	}
	return out
}

// Intersects reports whether the two sets share at least one value.
func Intersects(a, b []string) bool {
	for _, v := range b {
		if Contains(a, v) {
			return true
		}
	}
	return false
}

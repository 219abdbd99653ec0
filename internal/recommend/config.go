// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"fmt"
)

// Weighted draw calibration. The draw weight of a pooled candidate is
// n^WeightExponent + WeightFloor where n is its score normalized into [0, 1].
const (
	// WeightExponent sharpens the preference for top-scoring candidates.
	WeightExponent = 1.8

	// WeightFloor keeps every pooled candidate drawable.
	WeightFloor = 0.05
)

// Config contains all tunable constants of the recommendation engine.
// Point values are calibration, not contracts; only their signs and
// relative ordering are relied upon.
type Config struct {
	// Points holds the additive score contributions per facet.
	Points PointsConfig `json:"points" koanf:"points"`

	// Filter holds the hard-filter survivor thresholds.
	Filter FilterConfig `json:"filter" koanf:"filter"`

	// Selection holds candidate-pool and weighted-draw parameters.
	Selection SelectionConfig `json:"selection" koanf:"selection"`

	// Weather holds the temperature bonus thresholds.
	Weather WeatherConfig `json:"weather" koanf:"weather"`

	// Seed is the random seed for the engine's shared random source.
	// If zero, the source is seeded from the operating system.
	Seed int64 `json:"seed" koanf:"seed"`
}

// PointsConfig defines the score contribution of each facet.
type PointsConfig struct {
	MealTimeMatch int `json:"meal_time_match" koanf:"meal_time_match"`
	MealTimeMiss  int `json:"meal_time_miss" koanf:"meal_time_miss"`

	CompanionMatch int `json:"companion_match" koanf:"companion_match"`
	CompanionMiss  int `json:"companion_miss" koanf:"companion_miss"`

	// TastePerMatch is awarded for each matched taste.
	TastePerMatch int `json:"taste_per_match" koanf:"taste_per_match"`
	// TasteCoverage is scaled by the fraction of selected tastes matched.
	TasteCoverage int `json:"taste_coverage" koanf:"taste_coverage"`
	TasteMiss     int `json:"taste_miss" koanf:"taste_miss"`

	TemperatureMatch int `json:"temperature_match" koanf:"temperature_match"`
	TemperatureMiss  int `json:"temperature_miss" koanf:"temperature_miss"`

	BudgetMatch int `json:"budget_match" koanf:"budget_match"`
	BudgetMiss  int `json:"budget_miss" koanf:"budget_miss"`

	CookingMethodMatch int `json:"cooking_method_match" koanf:"cooking_method_match"`
	CookingMethodMiss  int `json:"cooking_method_miss" koanf:"cooking_method_miss"`

	// ContextMatch is bonus-only; a context mismatch never costs points.
	ContextMatch int `json:"context_match" koanf:"context_match"`

	// TexturePerMatch is awarded per item texture that suits a selected taste.
	TexturePerMatch int `json:"texture_per_match" koanf:"texture_per_match"`

	SatietyMatch int `json:"satiety_match" koanf:"satiety_match"`
	SatietyMiss  int `json:"satiety_miss" koanf:"satiety_miss"`
}

// FilterConfig controls when the cuisine and dish type hard filters apply.
// A filter is skipped when it would leave fewer survivors than its minimum.
type FilterConfig struct {
	MinCuisineSurvivors  int `json:"min_cuisine_survivors" koanf:"min_cuisine_survivors"`
	MinDishTypeSurvivors int `json:"min_dish_type_survivors" koanf:"min_dish_type_survivors"`
}

// SelectionConfig controls candidate pooling and the weighted draw.
type SelectionConfig struct {
	// MinPositive is how many positively scored items are needed before the
	// pool is restricted to positive scores.
	MinPositive int `json:"min_positive" koanf:"min_positive"`

	// PositivePoolSize caps the pool when enough positives exist.
	PositivePoolSize int `json:"positive_pool_size" koanf:"positive_pool_size"`

	// FallbackPoolSize caps the pool otherwise.
	FallbackPoolSize int `json:"fallback_pool_size" koanf:"fallback_pool_size"`

	// Alternatives is the number of runner-up suggestions.
	Alternatives int `json:"alternatives" koanf:"alternatives"`

	// Exponent and Floor shape the draw weights.
	Exponent float64 `json:"exponent" koanf:"exponent"`
	Floor    float64 `json:"floor" koanf:"floor"`
}

// WeatherConfig controls the current-temperature bonus.
type WeatherConfig struct {
	// HotAt is the temperature (°C) at or above which cold dishes get Bonus.
	HotAt float64 `json:"hot_at" koanf:"hot_at"`
	// ColdAt is the temperature (°C) at or below which hot dishes get Bonus.
	ColdAt float64 `json:"cold_at" koanf:"cold_at"`
	Bonus  int     `json:"bonus" koanf:"bonus"`
}

// DefaultConfig returns the calibrated production defaults.
func DefaultConfig() *Config {
	return &Config{
		Points: PointsConfig{
			MealTimeMatch:      30,
			MealTimeMiss:       -80,
			CompanionMatch:     20,
			CompanionMiss:      -15,
			TastePerMatch:      20,
			TasteCoverage:      15,
			TasteMiss:          -30,
			TemperatureMatch:   15,
			TemperatureMiss:    -20,
			BudgetMatch:        15,
			BudgetMiss:         -10,
			CookingMethodMatch: 10,
			CookingMethodMiss:  -5,
			ContextMatch:       25,
			TexturePerMatch:    5,
			SatietyMatch:       8,
			SatietyMiss:        -5,
		},
		Filter: FilterConfig{
			MinCuisineSurvivors:  3,
			MinDishTypeSurvivors: 2,
		},
		Selection: SelectionConfig{
			MinPositive:      3,
			PositivePoolSize: 10,
			FallbackPoolSize: 8,
			Alternatives:     3,
			Exponent:         WeightExponent,
			Floor:            WeightFloor,
		},
		Weather: WeatherConfig{
			HotAt:  28,
			ColdAt: 5,
			Bonus:  8,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	p := c.Points
	if p.MealTimeMatch < 0 || p.MealTimeMiss > 0 {
		return fmt.Errorf("points.meal_time_match must be >= 0 and points.meal_time_miss <= 0, got %d/%d", p.MealTimeMatch, p.MealTimeMiss)
	}
	if p.ContextMatch < 0 {
		return fmt.Errorf("points.context_match must be non-negative, got %d", p.ContextMatch)
	}
	if p.TastePerMatch < 0 || p.TasteCoverage < 0 {
		return fmt.Errorf("points.taste_per_match and points.taste_coverage must be non-negative")
	}

	if c.Filter.MinCuisineSurvivors < 0 {
		return fmt.Errorf("filter.min_cuisine_survivors must be non-negative, got %d", c.Filter.MinCuisineSurvivors)
	}
	if c.Filter.MinDishTypeSurvivors < 0 {
		return fmt.Errorf("filter.min_dish_type_survivors must be non-negative, got %d", c.Filter.MinDishTypeSurvivors)
	}

	s := c.Selection
	if s.PositivePoolSize < 1 {
		return fmt.Errorf("selection.positive_pool_size must be positive, got %d", s.PositivePoolSize)
	}
	if s.FallbackPoolSize < 1 {
		return fmt.Errorf("selection.fallback_pool_size must be positive, got %d", s.FallbackPoolSize)
	}
	if s.MinPositive < 1 {
		return fmt.Errorf("selection.min_positive must be positive, got %d", s.MinPositive)
	}
	if s.Alternatives < 0 {
		return fmt.Errorf("selection.alternatives must be non-negative, got %d", s.Alternatives)
	}
	if s.Exponent <= 0 {
		return fmt.Errorf("selection.exponent must be positive, got %f", s.Exponent)
	}
	if s.Floor <= 0 {
		return fmt.Errorf("selection.floor must be positive, got %f", s.Floor)
	}

	if c.Weather.ColdAt >= c.Weather.HotAt {
		return fmt.Errorf("weather.cold_at must be < weather.hot_at, got %.1f >= %.1f", c.Weather.ColdAt, c.Weather.HotAt)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

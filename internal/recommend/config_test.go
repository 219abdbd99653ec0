// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	// The meal time miss must outweigh any single positive facet so that
	// meal time dominates.
	p := cfg.Points
	if -p.MealTimeMiss <= p.ContextMatch+p.TastePerMatch+p.TasteCoverage {
		t.Errorf("meal time miss %d does not dominate", p.MealTimeMiss)
	}
	if cfg.Selection.Exponent != WeightExponent || cfg.Selection.Floor != WeightFloor {
		t.Errorf("selection weights = %v/%v", cfg.Selection.Exponent, cfg.Selection.Floor)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"positive meal time miss", func(c *Config) { c.Points.MealTimeMiss = 5 }},
		{"negative meal time match", func(c *Config) { c.Points.MealTimeMatch = -1 }},
		{"negative context", func(c *Config) { c.Points.ContextMatch = -1 }},
		{"negative taste per match", func(c *Config) { c.Points.TastePerMatch = -1 }},
		{"negative taste coverage", func(c *Config) { c.Points.TasteCoverage = -1 }},
		{"negative cuisine survivors", func(c *Config) { c.Filter.MinCuisineSurvivors = -1 }},
		{"negative dish survivors", func(c *Config) { c.Filter.MinDishTypeSurvivors = -1 }},
		{"zero positive pool", func(c *Config) { c.Selection.PositivePoolSize = 0 }},
		{"zero fallback pool", func(c *Config) { c.Selection.FallbackPoolSize = 0 }},
		{"zero min positive", func(c *Config) { c.Selection.MinPositive = 0 }},
		{"negative alternatives", func(c *Config) { c.Selection.Alternatives = -1 }},
		{"zero exponent", func(c *Config) { c.Selection.Exponent = 0 }},
		{"zero floor", func(c *Config) { c.Selection.Floor = 0 }},
		{"inverted weather thresholds", func(c *Config) { c.Weather.ColdAt = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	orig := DefaultConfig()
	clone := orig.Clone()
	clone.Points.MealTimeMatch = 1
	clone.Selection.Alternatives = 9

	if orig.Points.MealTimeMatch != 30 || orig.Selection.Alternatives != 3 {
		t.Error("modifying the clone changed the original")
	}
}

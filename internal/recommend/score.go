// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"math"

	"github.com/tomtom215/what2eat/internal/menu"
)

// Breakdown keys.
const (
	KeyMealTime      = "mealTime"
	KeyCompanion     = "companion"
	KeyTaste         = "taste"
	KeyTemperature   = "temperature"
	KeyBudget        = "budget"
	KeyCookingMethod = "cookingMethod"
	KeyContext       = "context"
	KeyTexture       = "texture"
	KeySatiety       = "satiety"
	KeyDishTime      = "dishTimeAffinity"
	KeyWeatherTemp   = "weatherTemp"
)

// Scorer computes additive preference scores. It is immutable and safe for
// concurrent use.
type Scorer struct {
	cfg   *Config
	rules []SynergyRule
}

// NewScorer creates a scorer. A nil config uses DefaultConfig and nil rules
// use the built-in synergy table.
func NewScorer(cfg *Config, rules []SynergyRule) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rules == nil {
		rules = defaultSynergyRules
	}
	return &Scorer{cfg: cfg, rules: rules}
}

// Score scores items with the default configuration and rule table.
func Score(items []menu.Item, sel *Selections, exclude []string, weatherTemp *float64) []ScoredItem {
	return NewScorer(nil, nil).Score(items, sel, exclude, weatherTemp)
}

// Score drops excluded items, applies the cuisine and dish type hard filters
// and returns one ScoredItem per surviving item in input order. It has no
// randomness: identical inputs always yield identical output.
func (s *Scorer) Score(items []menu.Item, sel *Selections, exclude []string, weatherTemp *float64) []ScoredItem {
	if sel == nil {
		sel = &Selections{}
	}

	candidates := s.Filter(items, sel, exclude)
	out := make([]ScoredItem, 0, len(candidates))
	for i := range candidates {
		out = append(out, s.scoreItem(&candidates[i], sel, weatherTemp))
	}
	return out
}

// Filter applies the exclusion list and the hard filters. The cuisine and
// dish type filters are skipped when they would leave too few items.
func (s *Scorer) Filter(items []menu.Item, sel *Selections, exclude []string) []menu.Item {
	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	pool := make([]menu.Item, 0, len(items))
	for i := range items {
		if _, ok := excluded[items[i].ID]; !ok {
			pool = append(pool, items[i])
		}
	}

	pool = hardFilter(pool, menu.FacetCuisine, sel.Effective(menu.FacetCuisine), s.cfg.Filter.MinCuisineSurvivors)
	pool = hardFilter(pool, menu.FacetDishType, sel.Effective(menu.FacetDishType), s.cfg.Filter.MinDishTypeSurvivors)
	return pool
}

func hardFilter(items []menu.Item, f menu.Facet, want []string, minSurvivors int) []menu.Item {
	if len(want) == 0 {
		return items
	}
	var kept []menu.Item
	for i := range items {
		if menu.Intersects(items[i].Tags.Values(f), want) {
			kept = append(kept, items[i])
		}
	}
	if len(kept) < minSurvivors {
		return items
	}
	return kept
}

func (s *Scorer) scoreItem(it *menu.Item, sel *Selections, weatherTemp *float64) ScoredItem {
	p := s.cfg.Points
	b := make(map[string]int)

	matchOrMiss(b, KeyMealTime, it, sel, menu.FacetMealTime, p.MealTimeMatch, p.MealTimeMiss)
	matchOrMiss(b, KeyCompanion, it, sel, menu.FacetCompanion, p.CompanionMatch, p.CompanionMiss)
	s.scoreTaste(b, it, sel)
	matchOrMiss(b, KeyTemperature, it, sel, menu.FacetTemperature, p.TemperatureMatch, p.TemperatureMiss)
	matchOrMiss(b, KeyBudget, it, sel, menu.FacetBudget, p.BudgetMatch, p.BudgetMiss)
	matchOrMiss(b, KeyCookingMethod, it, sel, menu.FacetCookingMethod, p.CookingMethodMatch, p.CookingMethodMiss)

	if ctx := sel.Effective(menu.FacetContext); len(ctx) > 0 && menu.Intersects(it.Tags.Context, ctx) {
		b[KeyContext] = p.ContextMatch
	}

	s.scoreTexture(b, it, sel)
	s.scoreMealTimeFit(b, it, sel)
	s.scoreSynergy(b, it, sel)
	s.scoreWeather(b, it, weatherTemp)

	total := 0
	for _, v := range b {
		total += v
	}
	return ScoredItem{Item: *it, Score: total, Breakdown: b}
}

// matchOrMiss awards match when the item shares a tag with the effective
// selection and miss otherwise. Facets with no effective selection are skipped.
func matchOrMiss(b map[string]int, key string, it *menu.Item, sel *Selections, f menu.Facet, match, miss int) {
	want := sel.Effective(f)
	if len(want) == 0 {
		return
	}
	if menu.Intersects(it.Tags.Values(f), want) {
		b[key] = match
	} else {
		b[key] = miss
	}
}

func (s *Scorer) scoreTaste(b map[string]int, it *menu.Item, sel *Selections) {
	want := sel.Effective(menu.FacetTaste)
	if len(want) == 0 {
		return
	}
	k := len(menu.Intersection(it.Tags.Taste, want))
	if k == 0 {
		b[KeyTaste] = s.cfg.Points.TasteMiss
		return
	}
	coverage := math.Round(float64(k) / float64(len(want)) * float64(s.cfg.Points.TasteCoverage))
	b[KeyTaste] = k*s.cfg.Points.TastePerMatch + int(coverage)
}

func (s *Scorer) scoreTexture(b map[string]int, it *menu.Item, sel *Selections) {
	preferred := make(map[string]struct{})
	for _, t := range sel.Effective(menu.FacetTaste) {
		for _, tex := range textureAffinity[t] {
			preferred[tex] = struct{}{}
		}
	}
	if len(preferred) == 0 {
		return
	}
	n := 0
	for _, tex := range it.Tags.Texture {
		if _, ok := preferred[tex]; ok {
			n++
		}
	}
	b[KeyTexture] = n * s.cfg.Points.TexturePerMatch
}

func (s *Scorer) scoreMealTimeFit(b map[string]int, it *menu.Item, sel *Selections) {
	meal, ok := primaryMealTime(sel)
	if !ok {
		return
	}

	switch {
	case menu.Contains(satietyPreference[meal], it.Tags.Satiety):
		b[KeySatiety] = s.cfg.Points.SatietyMatch
	case menu.Contains(satietyAvoid[meal], it.Tags.Satiety):
		b[KeySatiety] = s.cfg.Points.SatietyMiss
	}

	table := dishTimeAffinity[meal]
	for _, dt := range it.Tags.DishType {
		if pts, ok := table[dt]; ok {
			b[KeyDishTime] += pts
		}
	}
}

func (s *Scorer) scoreSynergy(b map[string]int, it *menu.Item, sel *Selections) {
	for i := range s.rules {
		r := &s.rules[i]
		if !r.Holds(sel) {
			continue
		}
		for _, e := range r.Effects {
			if menu.Contains(effectValues(it, e.Facet), e.Value) {
				b[e.Key] += e.Points
			}
		}
	}
}

func effectValues(it *menu.Item, f menu.Facet) []string {
	if f == FacetCalories {
		return []string{it.Calories}
	}
	return it.Tags.Values(f)
}

func (s *Scorer) scoreWeather(b map[string]int, it *menu.Item, temp *float64) {
	if temp == nil {
		return
	}
	w := s.cfg.Weather
	switch {
	case *temp >= w.HotAt && it.Tags.Has(menu.FacetTemperature, menu.Cold):
		b[KeyWeatherTemp] = w.Bonus
	case *temp <= w.ColdAt && it.Tags.Has(menu.FacetTemperature, menu.Hot):
		b[KeyWeatherTemp] = w.Bonus
	}
}

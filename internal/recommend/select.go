// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"math"
	"sort"
)

// Rank sorts a copy of scored by score descending. Ties keep id order so the
// ranking is reproducible.
func Rank(scored []ScoredItem) []ScoredItem {
	ranked := make([]ScoredItem, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.ID < ranked[j].Item.ID
	})
	return ranked
}

// CandidatePool ranks scored items and keeps the best of them. When at least
// MinPositive items score above zero only positives are pooled, up to
// PositivePoolSize; otherwise the top FallbackPoolSize items are pooled.
func CandidatePool(scored []ScoredItem, cfg *SelectionConfig) []ScoredItem {
	ranked := Rank(scored)

	positives := 0
	for _, s := range ranked {
		if s.Score > 0 {
			positives++
		}
	}

	if positives >= cfg.MinPositive {
		return ranked[:min(positives, cfg.PositivePoolSize)]
	}
	return ranked[:min(len(ranked), cfg.FallbackPoolSize)]
}

// Weights returns the draw weight of each pooled candidate. pool must be
// ranked best first. Scores are normalized against the pool's top score and
// max(lowest score, 1), clamped to [0, 1], raised to exponent and lifted by
// floor so that no candidate is undrawable.
func Weights(pool []ScoredItem, exponent, floor float64) []float64 {
	if len(pool) == 0 {
		return nil
	}
	top := float64(pool[0].Score)
	lo := math.Max(float64(pool[len(pool)-1].Score), 1)
	span := top - lo + 1

	weights := make([]float64, len(pool))
	for i, s := range pool {
		n := 0.0
		if span > 0 {
			n = (float64(s.Score) - lo + 1) / span
		}
		n = math.Min(math.Max(n, 0), 1)
		weights[i] = math.Pow(n, exponent) + floor
	}
	return weights
}

// draw returns an index chosen proportionally to weights.
func draw(weights []float64, rng RNG) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return 0
}

// PickFrom selects a primary recommendation from scored items by weighted
// draw and chooses diverse alternatives from the rest of the pool.
// An empty input yields an empty Pick; a single candidate is returned
// without consulting rng.
func PickFrom(scored []ScoredItem, rng RNG, cfg *SelectionConfig) Pick {
	if cfg == nil {
		cfg = &DefaultConfig().Selection
	}

	pool := CandidatePool(scored, cfg)
	switch len(pool) {
	case 0:
		return Pick{Alternatives: []ScoredItem{}}
	case 1:
		p := pool[0]
		return Pick{Primary: &p, Alternatives: []ScoredItem{}, Pool: pool}
	}

	idx := draw(Weights(pool, cfg.Exponent, cfg.Floor), rng)
	primary := pool[idx]

	rest := make([]ScoredItem, 0, len(pool)-1)
	rest = append(rest, pool[:idx]...)
	rest = append(rest, pool[idx+1:]...)

	return Pick{
		Primary:      &primary,
		Alternatives: Alternatives(&primary, rest, cfg.Alternatives),
		Pool:         pool,
	}
}

// Alternatives picks up to n items from rest, which must be ranked best
// first and must not contain primary. Candidates that introduce a cuisine or
// dish type not yet represented are preferred; remaining slots are filled in
// score order.
func Alternatives(primary *ScoredItem, rest []ScoredItem, n int) []ScoredItem {
	if n <= 0 {
		return []ScoredItem{}
	}
	if len(rest) <= n {
		out := make([]ScoredItem, len(rest))
		copy(out, rest)
		return out
	}

	usedCuisine := toSet(primary.Item.Tags.Cuisine)
	usedDish := toSet(primary.Item.Tags.DishType)

	selected := make([]ScoredItem, 0, n)
	taken := make([]bool, len(rest))

	// Greedy pass: accept candidates that widen the represented tags.
	for i := range rest {
		if len(selected) == n {
			break
		}
		tags := &rest[i].Item.Tags
		if !addsNew(usedCuisine, tags.Cuisine) && !addsNew(usedDish, tags.DishType) {
			continue
		}
		selected = append(selected, rest[i])
		taken[i] = true
		addAll(usedCuisine, tags.Cuisine)
		addAll(usedDish, tags.DishType)
	}

	// Fill pass: score order, no diversity constraint.
	for i := range rest {
		if len(selected) == n {
			break
		}
		if !taken[i] {
			selected = append(selected, rest[i])
			taken[i] = true
		}
	}

	return selected
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	addAll(set, values)
	return set
}

func addAll(set map[string]struct{}, values []string) {
	for _, v := range values {
		set[v] = struct{}{}
	}
}

func addsNew(set map[string]struct{}, values []string) bool {
	for _, v := range values {
		if _, ok := set[v]; !ok {
			return true
		}
	}
	return false
}

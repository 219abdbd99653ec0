// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/what2eat/internal/menu"
)

func TestWeights_Pinned(t *testing.T) {
	t.Parallel()

	pool := []ScoredItem{
		scoredItem("a", 10, menu.Korean, menu.Rice),
		scoredItem("b", 5, menu.Korean, menu.Rice),
		scoredItem("c", 1, menu.Korean, menu.Rice),
	}
	got := Weights(pool, WeightExponent, WeightFloor)
	want := []float64{1.05, math.Pow(0.5, 1.8) + 0.05, math.Pow(0.1, 1.8) + 0.05}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("weight[%d] = %f, want %f", i, got[i], want[i])
		}
	}

	total := got[0] + got[1] + got[2]
	if p := got[0] / total; math.Abs(p-0.72263) > 1e-4 {
		t.Errorf("P(top) = %f, want ~0.72263", p)
	}
}

func TestWeights_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		if got := Weights(nil, WeightExponent, WeightFloor); got != nil {
			t.Errorf("Weights(nil) = %v, want nil", got)
		}
	})

	t.Run("equal scores are uniform", func(t *testing.T) {
		t.Parallel()
		pool := []ScoredItem{
			scoredItem("a", 7, menu.Korean, menu.Rice),
			scoredItem("b", 7, menu.Korean, menu.Rice),
		}
		got := Weights(pool, WeightExponent, WeightFloor)
		if got[0] != got[1] {
			t.Errorf("weights = %v, want equal", got)
		}
	})

	t.Run("all negative scores fall back to the floor", func(t *testing.T) {
		t.Parallel()
		pool := []ScoredItem{
			scoredItem("a", -10, menu.Korean, menu.Rice),
			scoredItem("b", -40, menu.Korean, menu.Rice),
		}
		for i, w := range Weights(pool, WeightExponent, WeightFloor) {
			if w != WeightFloor {
				t.Errorf("weight[%d] = %f, want floor %f", i, w, WeightFloor)
			}
		}
	})

	t.Run("negative tail is clamped", func(t *testing.T) {
		t.Parallel()
		pool := []ScoredItem{
			scoredItem("a", 50, menu.Korean, menu.Rice),
			scoredItem("b", -30, menu.Korean, menu.Rice),
		}
		got := Weights(pool, WeightExponent, WeightFloor)
		if got[1] != WeightFloor {
			t.Errorf("weight[1] = %f, want floor", got[1])
		}
	})
}

func TestDraw(t *testing.T) {
	t.Parallel()

	weights := []float64{1.05, math.Pow(0.5, 1.8) + 0.05, math.Pow(0.1, 1.8) + 0.05}
	tests := []struct {
		r    float64
		want int
	}{
		{0.0, 0},
		{0.5, 0},
		{0.8, 1},
		{0.99, 2},
	}
	for _, tt := range tests {
		if got := draw(weights, fixedRNG(tt.r)); got != tt.want {
			t.Errorf("draw(r=%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCandidatePool(t *testing.T) {
	t.Parallel()

	cfg := &DefaultConfig().Selection

	t.Run("positives only when at least three", func(t *testing.T) {
		t.Parallel()
		var scored []ScoredItem
		for i := 0; i < 15; i++ {
			scored = append(scored, scoredItem(string(rune('a'+i)), 20-i*2, menu.Korean, menu.Rice))
		}
		pool := CandidatePool(scored, cfg)
		if len(pool) != cfg.PositivePoolSize {
			t.Fatalf("len = %d, want %d", len(pool), cfg.PositivePoolSize)
		}
		for _, s := range pool {
			if s.Score <= 0 {
				t.Errorf("pool contains non-positive score %d", s.Score)
			}
		}
		if pool[0].Score != 20 {
			t.Errorf("pool not ranked, first score %d", pool[0].Score)
		}
	})

	t.Run("fewer positives than the pool size", func(t *testing.T) {
		t.Parallel()
		scored := []ScoredItem{
			scoredItem("a", 5, menu.Korean, menu.Rice),
			scoredItem("b", 4, menu.Korean, menu.Rice),
			scoredItem("c", 3, menu.Korean, menu.Rice),
			scoredItem("d", -3, menu.Korean, menu.Rice),
		}
		if pool := CandidatePool(scored, cfg); len(pool) != 3 {
			t.Errorf("len = %d, want 3 positives", len(pool))
		}
	})

	t.Run("falls back to top overall", func(t *testing.T) {
		t.Parallel()
		var scored []ScoredItem
		for i := 0; i < 12; i++ {
			scored = append(scored, scoredItem(string(rune('a'+i)), 1-i*10, menu.Korean, menu.Rice))
		}
		pool := CandidatePool(scored, cfg)
		if len(pool) != cfg.FallbackPoolSize {
			t.Errorf("len = %d, want %d", len(pool), cfg.FallbackPoolSize)
		}
	})

	t.Run("ties are ordered by id", func(t *testing.T) {
		t.Parallel()
		scored := []ScoredItem{
			scoredItem("z", 5, menu.Korean, menu.Rice),
			scoredItem("a", 5, menu.Korean, menu.Rice),
			scoredItem("m", 5, menu.Korean, menu.Rice),
		}
		pool := CandidatePool(scored, cfg)
		if pool[0].Item.ID != "a" || pool[2].Item.ID != "z" {
			t.Errorf("order = %s,%s,%s", pool[0].Item.ID, pool[1].Item.ID, pool[2].Item.ID)
		}
	})
}

func TestPickFrom_ZeroOneMany(t *testing.T) {
	t.Parallel()

	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		p := PickFrom(nil, seeded(1), nil)
		if p.Primary != nil {
			t.Errorf("Primary = %v, want nil", p.Primary.Item.ID)
		}
		if p.Alternatives == nil || len(p.Alternatives) != 0 {
			t.Errorf("Alternatives = %v, want empty", p.Alternatives)
		}
	})

	t.Run("one", func(t *testing.T) {
		t.Parallel()
		only := scoredItem("only", -50, menu.Korean, menu.Rice)
		// the rng must not be consulted
		p := PickFrom([]ScoredItem{only}, nil, nil)
		if p.Primary == nil || p.Primary.Item.ID != "only" {
			t.Fatalf("Primary = %v, want only", p.Primary)
		}
		if len(p.Alternatives) != 0 {
			t.Errorf("Alternatives = %d, want 0", len(p.Alternatives))
		}
	})

	t.Run("many", func(t *testing.T) {
		t.Parallel()
		c := menu.MustDefault()
		sel := &Selections{MealTime: []string{menu.Lunch}, Taste: []string{menu.Spicy}}
		scored := Score(c.Items(), sel, []string{"ramyeon"}, nil)

		for seed := int64(1); seed <= 50; seed++ {
			p := PickFrom(scored, seeded(seed), nil)
			if p.Primary == nil {
				t.Fatal("Primary is nil")
			}

			inPool := false
			for _, s := range p.Pool {
				if s.Item.ID == p.Primary.Item.ID {
					inPool = true
				}
			}
			if !inPool {
				t.Errorf("seed %d: primary %s not in pool", seed, p.Primary.Item.ID)
			}
			if p.Primary.Item.ID == "ramyeon" {
				t.Errorf("seed %d: excluded item picked", seed)
			}
			if len(p.Alternatives) != 3 {
				t.Errorf("seed %d: %d alternatives, want 3", seed, len(p.Alternatives))
			}
			for _, a := range p.Alternatives {
				if a.Item.ID == p.Primary.Item.ID {
					t.Errorf("seed %d: alternative repeats primary", seed)
				}
			}
		}
	})

	t.Run("same seed same pick", func(t *testing.T) {
		t.Parallel()
		scored := Score(menu.MustDefault().Items(), &Selections{MealTime: []string{menu.Dinner}}, nil, nil)
		a := PickFrom(scored, seeded(99), nil)
		b := PickFrom(scored, seeded(99), nil)
		if a.Primary.Item.ID != b.Primary.Item.ID {
			t.Errorf("primary %s != %s", a.Primary.Item.ID, b.Primary.Item.ID)
		}
	})
}

func TestAlternatives_DiversityFirst(t *testing.T) {
	t.Parallel()

	primary := scoredItem("p", 100, menu.Korean, menu.Soup)
	rest := []ScoredItem{
		scoredItem("same", 90, menu.Korean, menu.Soup),
		scoredItem("noodle", 80, menu.Korean, menu.Noodle),
		scoredItem("chinese", 70, menu.Chinese, menu.Soup),
		scoredItem("japanese", 60, menu.Japanese, menu.Rice),
		scoredItem("same2", 50, menu.Korean, menu.Soup),
	}

	got := Alternatives(&primary, rest, 3)
	want := []string{"noodle", "chinese", "japanese"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Item.ID != want[i] {
			t.Errorf("alt[%d] = %s, want %s", i, got[i].Item.ID, want[i])
		}
		differs := !menu.Intersects(primary.Item.Tags.Cuisine, got[i].Item.Tags.Cuisine) ||
			!menu.Intersects(primary.Item.Tags.DishType, got[i].Item.Tags.DishType)
		if !differs {
			t.Errorf("alt[%d] = %s shares cuisine and dish type with primary", i, got[i].Item.ID)
		}
	}
}

func TestAlternatives_FillsInScoreOrder(t *testing.T) {
	t.Parallel()

	primary := scoredItem("p", 100, menu.Korean, menu.Soup)
	rest := []ScoredItem{
		scoredItem("a", 90, menu.Korean, menu.Soup),
		scoredItem("b", 80, menu.Korean, menu.Soup),
		scoredItem("new", 70, menu.Western, menu.Soup),
		scoredItem("c", 60, menu.Korean, menu.Soup),
	}

	got := Alternatives(&primary, rest, 3)
	want := []string{"new", "a", "b"}
	for i := range want {
		if got[i].Item.ID != want[i] {
			t.Errorf("alt[%d] = %s, want %s", i, got[i].Item.ID, want[i])
		}
	}
}

func TestAlternatives_SmallPool(t *testing.T) {
	t.Parallel()

	primary := scoredItem("p", 100, menu.Korean, menu.Soup)
	rest := []ScoredItem{
		scoredItem("a", 90, menu.Korean, menu.Soup),
		scoredItem("b", 80, menu.Korean, menu.Soup),
	}

	got := Alternatives(&primary, rest, 3)
	if len(got) != 2 {
		t.Errorf("len = %d, want whole rest (2)", len(got))
	}
	if got := Alternatives(&primary, rest, 0); len(got) != 0 {
		t.Errorf("n=0 gave %d alternatives", len(got))
	}
}

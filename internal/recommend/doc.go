// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package recommend implements the menu recommendation engine.
//
// # Pipeline
//
// A run takes a snapshot of the user's Selections, a list of excluded item
// ids and an optional current temperature, and goes through three pure
// stages:
//
//   - Score: exclusion, soft-fallback hard filters on cuisine and dish type,
//     then an additive per-facet score with synergy rules and weather bonus
//   - PickFrom: ranks, builds a candidate pool and draws a primary item with
//     probability proportional to n^Exponent + Floor, then picks diverse
//     alternatives
//   - Explain: a short justification sentence from lookup tables
//
// # Design Principles
//
//   - Deterministic: Score has no randomness; draws take an explicit RNG
//   - Degrade-to-neutral: unknown tags simply fail to match, an empty result
//     is a nil Primary, never an error
//   - Declarative: synergy rules are data (see SynergyRules)
//
// # Usage
//
//	engine, err := recommend.NewEngine(menu.MustDefault(), recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Selections: recommend.Selections{
//	        MealTime: []string{"아침"},
//	        Context:  []string{"해장"},
//	    },
//	})
//
// # Thread Safety
//
// Engine is safe for concurrent use. The only shared mutable state is the
// shared random source, which is guarded by a mutex. It is seeded from
// Config.Seed, or from crypto/rand when that is zero. Requests carrying their
// own Seed use a private source instead.
package recommend

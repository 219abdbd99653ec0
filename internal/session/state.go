// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/weather"
)

// Common errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidStep     = errors.New("invalid step")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNotOptional     = errors.New("step is not optional")
)

// LastResult is what the most recent recommendation run produced.
type LastResult struct {
	PrimaryID      string   `json:"primary_id,omitempty"`
	AlternativeIDs []string `json:"alternative_ids,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

// State is one visitor's progress through the questionnaire.
type State struct {
	ID         string               `json:"id"`
	Step       int                  `json:"step"`
	Complete   bool                 `json:"complete"`
	Selections recommend.Selections `json:"selections"`
	ExcludeIDs []string             `json:"exclude_ids"`
	Weather    weather.Snapshot     `json:"weather"`
	LastResult *LastResult          `json:"last_result,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	ExpiresAt  time.Time            `json:"expires_at"`
}

// New returns a fresh state that expires ttl from now.
func New(id string, ttl time.Duration) *State {
	now := time.Now()
	return &State{
		ID:         id,
		ExcludeIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

// IsExpired checks if the session has expired.
func (s *State) IsExpired() bool {
	return s.expiredAt(time.Now())
}

func (s *State) expiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Touch marks the state as used at now and slides its expiry.
func (s *State) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// CurrentStep returns the step the visitor is on.
func (s *State) CurrentStep() menu.StepConfig {
	step, _ := menu.StepAt(s.Step)
	return step
}

// Reset starts the questionnaire over. Weather is kept: it is fetched once
// per visit.
func (s *State) Reset() {
	s.Step = 0
	s.Complete = false
	s.Selections = recommend.Selections{}
	s.ExcludeIDs = []string{}
	s.LastResult = nil
}

// Toggle adds optionID to the step's selection, or removes it when already
// selected.
func (s *State) Toggle(stepID, optionID string) error {
	step, err := lookupStep(stepID)
	if err != nil {
		return err
	}
	if !step.HasOption(optionID) {
		return fmt.Errorf("%w: %q is not an option of %s", ErrInvalidOption, optionID, stepID)
	}

	current := s.Selections.Values(step.ID)
	var updated []string
	if menu.Contains(current, optionID) {
		for _, v := range current {
			if v != optionID {
				updated = append(updated, v)
			}
		}
	} else {
		updated = append(append(updated, current...), optionID)
	}
	s.Selections.Set(step.ID, updated)
	return nil
}

// Set replaces the step's selection. Duplicates are dropped, order kept.
func (s *State) Set(stepID string, values []string) error {
	step, err := lookupStep(stepID)
	if err != nil {
		return err
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if !step.HasOption(v) {
			return fmt.Errorf("%w: %q is not an option of %s", ErrInvalidOption, v, stepID)
		}
		if !menu.Contains(out, v) {
			out = append(out, v)
		}
	}
	s.Selections.Set(step.ID, out)
	return nil
}

// Next advances one step. On the last step it marks the questionnaire
// complete instead and returns true.
func (s *State) Next() bool {
	if s.Step >= menu.StepCount()-1 {
		s.Step = menu.StepCount() - 1
		s.Complete = true
		return true
	}
	s.Step++
	return false
}

// Prev goes back one step, stopping at the first.
func (s *State) Prev() {
	s.Complete = false
	if s.Step > 0 {
		s.Step--
	}
}

// Skip answers the current optional step with the pass sentinel and
// advances. It reports completion like Next.
func (s *State) Skip() (bool, error) {
	step := s.CurrentStep()
	if !step.Optional {
		return false, fmt.Errorf("%w: %s", ErrNotOptional, step.ID)
	}
	s.Selections.Set(step.ID, []string{menu.Pass})
	return s.Next(), nil
}

// ApplyWeather records the weather for this session. It only takes effect
// once; later calls return false and change nothing. The weather's context
// tag is injected only when no context has been chosen.
func (s *State) ApplyWeather(snap weather.Snapshot) bool {
	if s.Weather.Loaded {
		return false
	}
	snap.Loaded = true
	s.Weather = snap

	if tag := snap.ContextTag(); tag != "" && len(s.Selections.Context) == 0 {
		s.Selections.Set(menu.FacetContext, []string{tag})
	}
	return true
}

// RecordResult remembers what a recommendation run returned.
func (s *State) RecordResult(resp *recommend.Response) {
	last := &LastResult{}
	if resp.Found() {
		last.PrimaryID = resp.Primary.Item.ID
		last.Reason = resp.Primary.Reason
		for i := range resp.Alternatives {
			last.AlternativeIDs = append(last.AlternativeIDs, resp.Alternatives[i].Item.ID)
		}
	}
	s.LastResult = last
}

// Retry excludes the last primary recommendation from future runs. It
// returns false when there was nothing to exclude.
func (s *State) Retry() bool {
	if s.LastResult == nil || s.LastResult.PrimaryID == "" {
		return false
	}
	if !menu.Contains(s.ExcludeIDs, s.LastResult.PrimaryID) {
		s.ExcludeIDs = append(s.ExcludeIDs, s.LastResult.PrimaryID)
	}
	return true
}

// Request builds an engine request from a snapshot of the state.
func (s *State) Request(requestID string) recommend.Request {
	return recommend.Request{
		Selections:  s.Selections.Clone(),
		ExcludeIDs:  append([]string(nil), s.ExcludeIDs...),
		WeatherTemp: copyFloat(s.Weather.Temp),
		RequestID:   requestID,
	}
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	out := *s
	out.Selections = s.Selections.Clone()
	out.ExcludeIDs = append([]string{}, s.ExcludeIDs...)
	out.Weather.Temp = copyFloat(s.Weather.Temp)
	if s.Weather.Condition != nil {
		c := *s.Weather.Condition
		out.Weather.Condition = &c
	}
	if s.LastResult != nil {
		last := *s.LastResult
		last.AlternativeIDs = append([]string(nil), s.LastResult.AlternativeIDs...)
		out.LastResult = &last
	}
	return &out
}

func lookupStep(stepID string) (menu.StepConfig, error) {
	step, _, ok := menu.StepByID(menu.Facet(stepID))
	if !ok {
		return menu.StepConfig{}, fmt.Errorf("%w: %q", ErrInvalidStep, stepID)
	}
	return step, nil
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

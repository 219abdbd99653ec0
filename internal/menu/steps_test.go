// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

import (
	"strings"
	"testing"
)

func TestSteps_Order(t *testing.T) {
	t.Parallel()

	got := Steps()
	if len(got) != len(SelectionFacets) {
		t.Fatalf("len(Steps()) = %d, want %d", len(got), len(SelectionFacets))
	}
	for i, f := range SelectionFacets {
		if got[i].ID != f {
			t.Errorf("step %d = %s, want %s", i, got[i].ID, f)
		}
		if !got[i].MultiSelect {
			t.Errorf("step %s should be multi-select", f)
		}
	}
}

func TestSteps_OnlyContextOptional(t *testing.T) {
	t.Parallel()

	for _, s := range Steps() {
		if s.Optional != (s.ID == FacetContext) {
			t.Errorf("step %s optional = %v", s.ID, s.Optional)
		}
	}
}

func TestSteps_OptionsInVocabulary(t *testing.T) {
	t.Parallel()

	for _, s := range Steps() {
		for _, o := range s.Options {
			if IsSentinel(o.ID) {
				continue
			}
			if !InVocabulary(s.ID, o.ID) {
				t.Errorf("step %s option %q is not in the vocabulary", s.ID, o.ID)
			}
		}
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Steps()
	a[0].Options[0].Label = "changed"
	if b := Steps(); b[0].Options[0].Label == "changed" {
		t.Error("Steps() exposed internal options")
	}
}

func TestStepByID(t *testing.T) {
	t.Parallel()

	s, idx, ok := StepByID(FacetTaste)
	if !ok || idx != 4 || s.ID != FacetTaste {
		t.Errorf("StepByID(taste) = %v, %d, %v", s.ID, idx, ok)
	}
	if !s.HasOption(Spicy) || s.HasOption(Hot) {
		t.Error("HasOption returned wrong membership")
	}

	if _, _, ok := StepByID("nope"); ok {
		t.Error("StepByID(nope) should not be found")
	}
	if _, ok := StepAt(-1); ok {
		t.Error("StepAt(-1) should not be found")
	}
	if _, ok := StepAt(StepCount()); ok {
		t.Error("StepAt(len) should not be found")
	}
}

func TestNewShareCard(t *testing.T) {
	t.Parallel()

	it := Item{Name: "김치 찌개"}
	card := NewShareCard(&it, "추운 날 몸을 따뜻하게 녹여줄 거예요.")

	if card.Title != "오늘 메뉴는 김치 찌개이다!" {
		t.Errorf("Title = %q", card.Title)
	}
	if !strings.HasSuffix(card.Description, "\n추운 날 몸을 따뜻하게 녹여줄 거예요.") {
		t.Errorf("Description = %q", card.Description)
	}
	if card.MapURL != "https://map.kakao.com/link/search/%EA%B9%80%EC%B9%98%20%EC%B0%8C%EA%B0%9C" {
		t.Errorf("MapURL = %q", card.MapURL)
	}
	if card.Clipboard != "오늘은 김치 찌개 어때? 같이 먹을래요?" {
		t.Errorf("Clipboard = %q", card.Clipboard)
	}
	if card.SiteURL != "https://what2eat.kr" {
		t.Errorf("SiteURL = %q", card.SiteURL)
	}
}

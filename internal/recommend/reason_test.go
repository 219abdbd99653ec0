// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"strings"
	"testing"

	"github.com/tomtom215/what2eat/internal/menu"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	hangover := testItem("haejang", func(it *menu.Item) {
		it.Tags.Context = []string{menu.Hangover}
		it.Tags.Taste = []string{menu.Spicy, menu.Salty}
		it.Tags.Texture = []string{menu.Chewy}
		it.Tags.Companion = []string{menu.Solo}
	})
	plain := testItem("plain", func(it *menu.Item) {
		it.Tags.Texture = nil
	})

	tests := []struct {
		name string
		item menu.Item
		sel  *Selections
		want string
	}{
		{
			name: "nil selections",
			item: hangover,
			sel:  nil,
			want: "desc-haejang",
		},
		{
			name: "empty selections",
			item: hangover,
			sel:  &Selections{},
			want: "desc-haejang",
		},
		{
			name: "context then texture",
			item: hangover,
			sel:  &Selections{Context: []string{menu.Hangover}},
			want: "속이 풀리는 해장 메뉴로 딱이에요! 쫄깃한 식감이 일품이에요!",
		},
		{
			name: "matched tastes are joined",
			item: hangover,
			sel:  &Selections{Taste: []string{menu.Salty, menu.Spicy}},
			want: "짭조름 + 매콤 맛을 좋아하신다면 강력 추천! 쫄깃한 식감이 일품이에요!",
		},
		{
			name: "two fragments at most",
			item: hangover,
			sel: &Selections{
				Context:   []string{menu.Hangover},
				Taste:     []string{menu.Spicy},
				Companion: []string{menu.Solo},
			},
			want: "속이 풀리는 해장 메뉴로 딱이에요! 매콤 맛을 좋아하신다면 강력 추천!",
		},
		{
			name: "companion",
			item: hangover,
			sel:  &Selections{Companion: []string{menu.Solo}},
			want: "혼자서도 편하게 즐기기 좋아요. 쫄깃한 식감이 일품이에요!",
		},
		{
			name: "pass is ignored",
			item: plain,
			sel:  &Selections{Context: []string{menu.Pass}},
			want: "desc-plain",
		},
		{
			name: "nothing applies",
			item: plain,
			sel:  &Selections{Context: []string{menu.Rainy}, Taste: []string{menu.Sweet}},
			want: "desc-plain",
		},
		{
			name: "unmatched context is skipped",
			item: hangover,
			sel:  &Selections{Context: []string{menu.Diet, menu.Hangover}},
			want: "속이 풀리는 해장 메뉴로 딱이에요! 쫄깃한 식감이 일품이에요!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Explain(&tt.item, tt.sel); got != tt.want {
				t.Errorf("Explain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExplain_CatalogItemsAlwaysHaveText(t *testing.T) {
	t.Parallel()

	sel := &Selections{MealTime: []string{menu.Dinner}, Taste: []string{menu.Numbing}}
	for _, it := range menu.MustDefault().Items() {
		if got := Explain(&it, sel); strings.TrimSpace(got) == "" {
			t.Errorf("%s: empty reason", it.ID)
		}
	}
}

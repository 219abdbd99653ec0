// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"strings"

	"github.com/tomtom215/what2eat/internal/menu"
)

// maxReasonFragments is how many fragments a reason may combine.
const maxReasonFragments = 2

var contextReasons = map[string]string{
	menu.Hangover: "속이 풀리는 해장 메뉴로 딱이에요!",
	menu.Diet:     "가볍고 건강하게 즐길 수 있어요!",
	menu.Unwell:   "몸이 안 좋을 때 부담 없이 먹기 좋아요.",
	menu.Rainy:    "비 오는 날 분위기와 찰떡이에요!",
	menu.HotDay:   "더운 날씨에 딱 맞는 선택이에요!",
	menu.ColdDay:  "추운 날 몸을 따뜻하게 녹여줄 거예요.",
	menu.GoodDay:  "좋은 날엔 맛있는 걸로 기분 UP!",
	menu.InAHurry: "빠르게 든든하게 해결할 수 있어요!",
}

var companionReasons = map[string]string{
	menu.Solo:     "혼자서도 편하게 즐기기 좋아요.",
	menu.Couple:   "데이트 메뉴로 분위기 있는 선택!",
	menu.Friends:  "친구들과 나눠 먹으면 더 맛있어요!",
	menu.Family:   "온 가족이 함께 즐기기 좋은 메뉴예요.",
	menu.TeamMeal: "다 같이 먹으면 분위기 최고!",
}

// textureReasons is consulted in this order.
var textureReasons = []struct {
	texture  string
	sentence string
}{
	{menu.Crispy, "바삭한 식감이 매력적이에요!"},
	{menu.Chewy, "쫄깃한 식감이 일품이에요!"},
	{menu.Soft, "부드럽게 넘어가는 맛이 좋아요."},
	{menu.Crunchy, "아삭한 채소가 식감을 더해요!"},
	{menu.Thick, "꾸덕한 식감이 중독적이에요!"},
}

// Explain builds a short justification for recommending it under sel.
// Fragments are tried in priority order: a matched situational context, the
// matched tastes, a matched companion and finally a texture highlight. The
// first two are joined with a space. With empty selections, or when nothing
// applies, the item's static description is returned.
func Explain(it *menu.Item, sel *Selections) string {
	if sel == nil || sel.IsEmpty() {
		return it.Description
	}

	var fragments []string

	for _, c := range sel.Effective(menu.FacetContext) {
		if sentence, ok := contextReasons[c]; ok && it.Tags.Has(menu.FacetContext, c) {
			fragments = append(fragments, sentence)
			break
		}
	}

	if tastes := menu.Intersection(it.Tags.Taste, sel.Effective(menu.FacetTaste)); len(tastes) > 0 {
		fragments = append(fragments, strings.Join(tastes, " + ")+" 맛을 좋아하신다면 강력 추천!")
	}

	for _, c := range sel.Effective(menu.FacetCompanion) {
		if sentence, ok := companionReasons[c]; ok && it.Tags.Has(menu.FacetCompanion, c) {
			fragments = append(fragments, sentence)
			break
		}
	}

	if len(fragments) < maxReasonFragments {
		for _, tr := range textureReasons {
			if it.Tags.Has(menu.FacetTexture, tr.texture) {
				fragments = append(fragments, tr.sentence)
				break
			}
		}
	}

	if len(fragments) == 0 {
		return it.Description
	}
	if len(fragments) > maxReasonFragments {
		fragments = fragments[:maxReasonFragments]
	}
	return strings.Join(fragments, " ")
}

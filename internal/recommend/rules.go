// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"github.com/tomtom215/what2eat/internal/menu"
)

// FacetCalories addresses an item's calorie class in rule effects. It is not
// a selection facet.
const FacetCalories menu.Facet = "calories"

// Condition holds when the selection for Facet shares a value with Values.
type Condition struct {
	Facet  menu.Facet `json:"facet"`
	Values []string   `json:"values"`
}

// Effect awards Points to items carrying Value under Facet. The contribution
// is recorded in the score breakdown under Key.
type Effect struct {
	Facet  menu.Facet `json:"facet"`
	Value  string     `json:"value"`
	Points int        `json:"points"`
	Key    string     `json:"key"`
}

// SynergyRule is a declarative cross-facet bonus. All conditions must hold.
// Every matching effect applies, so a rule may be two-sided.
type SynergyRule struct {
	Label      string      `json:"label"`
	Conditions []Condition `json:"conditions"`
	Effects    []Effect    `json:"effects"`
}

// Holds reports whether every condition of the rule is met by sel.
func (r *SynergyRule) Holds(sel *Selections) bool {
	for _, c := range r.Conditions {
		if !menu.Intersects(sel.Values(c.Facet), c.Values) {
			return false
		}
	}
	return true
}

func synergyKey(label string) string {
	return "synergy:" + label
}

func bonus(label string, f menu.Facet, value string, points int, when ...Condition) SynergyRule {
	return SynergyRule{
		Label:      label,
		Conditions: when,
		Effects:    []Effect{{Facet: f, Value: value, Points: points, Key: synergyKey(label)}},
	}
}

func when(f menu.Facet, values ...string) Condition {
	return Condition{Facet: f, Values: values}
}

// defaultSynergyRules is evaluated in order; bonuses stack.
var defaultSynergyRules = []SynergyRule{
	bonus("비+뜨거운=국물", menu.FacetDishType, menu.Soup, 15,
		when(menu.FacetContext, menu.Rainy), when(menu.FacetTemperature, menu.Hot)),
	bonus("비=분식", menu.FacetDishType, menu.Snack, 8,
		when(menu.FacetContext, menu.Rainy)),
	bonus("추운날+국찌개=매콤", menu.FacetTaste, menu.Spicy, 10,
		when(menu.FacetContext, menu.ColdDay), when(menu.FacetDishType, menu.Soup)),
	bonus("더운날=차가운", menu.FacetTemperature, menu.Cold, 15,
		when(menu.FacetContext, menu.HotDay)),
	bonus("아침해장=국물", menu.FacetDishType, menu.Soup, 20,
		when(menu.FacetContext, menu.Hangover), when(menu.FacetMealTime, menu.Breakfast)),
	{
		Label:      "다이어트=저칼",
		Conditions: []Condition{when(menu.FacetContext, menu.Diet)},
		Effects: []Effect{
			{Facet: FacetCalories, Value: menu.LowCalorie, Points: 15, Key: synergyKey("다이어트=저칼")},
			{Facet: FacetCalories, Value: menu.HighCalorie, Points: -15, Key: synergyKey("anti-diet")},
		},
	},
	bonus("혼밥+시간없어=분식", menu.FacetDishType, menu.Snack, 10,
		when(menu.FacetCompanion, menu.Solo), when(menu.FacetContext, menu.InAHurry)),
	bonus("회식=고기", menu.FacetDishType, menu.Grill, 12,
		when(menu.FacetCompanion, menu.TeamMeal)),
	bonus("연인=양식", menu.FacetCuisine, menu.Western, 8,
		when(menu.FacetCompanion, menu.Couple)),
}

// SynergyRules returns a copy of the built-in rule table.
func SynergyRules() []SynergyRule {
	out := make([]SynergyRule, len(defaultSynergyRules))
	for i, r := range defaultSynergyRules {
		out[i] = SynergyRule{
			Label:      r.Label,
			Conditions: append([]Condition(nil), r.Conditions...),
			Effects:    append([]Effect(nil), r.Effects...),
		}
	}
	return out
}

// textureAffinity maps a taste to the textures that suit it.
var textureAffinity = map[string][]string{
	menu.Spicy:   {menu.Chewy, menu.Springy},
	menu.Nutty:   {menu.Crispy, menu.Soft, menu.Thick},
	menu.Sour:    {menu.Crunchy, menu.Springy},
	menu.Mild:    {menu.Soft, menu.Crunchy},
	menu.Sweet:   {menu.Soft, menu.Moist, menu.Crispy},
	menu.Numbing: {menu.Chewy, menu.Crunchy},
}

// satietyPreference lists the satiety levels that suit each meal time.
var satietyPreference = map[string][]string{
	menu.Breakfast: {menu.Light, menu.Normal},
	menu.Lunch:     {menu.Normal, menu.Hearty},
	menu.Dinner:    {menu.Hearty, menu.Stuffed},
	menu.LateNight: {menu.Light, menu.Normal},
	menu.SnackTime: {menu.Light},
}

// satietyAvoid lists satiety levels that are penalised at a meal time.
var satietyAvoid = map[string][]string{
	menu.Breakfast: {menu.Stuffed},
	menu.LateNight: {menu.Stuffed},
	menu.SnackTime: {menu.Hearty, menu.Stuffed},
}

// dishTimeAffinity adjusts dish types by meal time. A zero entry still
// counts as a known pairing.
var dishTimeAffinity = map[string]map[string]int{
	menu.Breakfast: {menu.Rice: 5, menu.Snack: 8, menu.Soup: 5, menu.Dessert: 3, menu.Noodle: -5},
	menu.Lunch:     {menu.Rice: 5, menu.Noodle: 5, menu.Soup: 3, menu.Grill: 0},
	menu.Dinner:    {menu.Grill: 8, menu.Soup: 5, menu.Noodle: 3, menu.Rice: 0},
	menu.LateNight: {menu.Snack: 5, menu.Noodle: 5, menu.Grill: 3, menu.Dessert: 3},
	menu.SnackTime: {menu.Dessert: 10, menu.Snack: 8, menu.Salad: 3, menu.Noodle: -5},
}

// primaryMealTime returns the first selected meal time that has tables.
func primaryMealTime(sel *Selections) (string, bool) {
	for _, m := range sel.MealTime {
		if _, ok := satietyPreference[m]; ok {
			return m, true
		}
	}
	return "", false
}

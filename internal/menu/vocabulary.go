// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

// Facet identifies one question dimension of the recommendation flow.
// Facet values double as step IDs and as the JSON keys of item tags.
type Facet string

const (
	FacetMealTime      Facet = "mealTime"
	FacetCompanion     Facet = "companion"
	FacetCuisine       Facet = "cuisine"
	FacetCookingMethod Facet = "cookingMethod"
	FacetTaste         Facet = "taste"
	FacetDishType      Facet = "dishType"
	FacetTemperature   Facet = "temperature"
	FacetBudget        Facet = "budget"
	FacetContext       Facet = "context"
	FacetTexture       Facet = "texture"
	FacetSatiety       Facet = "satiety"
)

// Sentinel option values. Any and Pass never appear on catalog items;
// RoomTemp is also an ordinary temperature tag.
const (
	// Any means "no preference" for cuisine, cooking method, dish type and budget.
	Any = "상관없음"
	// Pass marks a skipped optional step.
	Pass = "패스"
	// RoomTemp means the user has no temperature preference.
	RoomTemp = "상온"
)

// Meal times.
const (
	Breakfast = "아침"
	Lunch     = "점심"
	Dinner    = "저녁"
	LateNight = "야식"
	SnackTime = "간식"
)

// Companions.
const (
	Solo     = "혼밥"
	Couple   = "연인"
	Friends  = "친구"
	Family   = "가족"
	TeamMeal = "회식"
)

// Cuisines.
const (
	Korean   = "한식"
	Chinese  = "중식"
	Japanese = "일식"
	Western  = "양식"
	Asian    = "아시안"
	Other    = "기타"
)

// Cooking methods.
const (
	Broth     = "국물"
	GrillFry  = "구이볶음"
	DeepFried = "튀김"
	Steamed   = "찜삶음"
	Raw       = "날것"
)

// Tastes.
const (
	Spicy   = "매콤"
	Nutty   = "고소"
	Sour    = "새콤"
	Salty   = "짭조름"
	Sweet   = "달콤"
	Mild    = "담백"
	Numbing = "얼얼"
)

// Dish types.
const (
	Rice    = "밥"
	Noodle  = "면"
	Soup    = "국찌개"
	Grill   = "고기구이"
	Snack   = "빵분식"
	Salad   = "샐러드"
	Dessert = "디저트"
)

// Serving temperatures.
const (
	Hot  = "뜨거운"
	Cold = "차가운"
)

// Budgets.
const (
	Cheap    = "가성비"
	Moderate = "적당"
	Splurge  = "좀쓸게"
	Flex     = "플렉스"
)

// Situational contexts. The last four are never offered as options but are
// carried by items and produced by the weather adapter.
const (
	Hangover = "해장"
	Diet     = "다이어트"
	Rainy    = "비"
	Blue     = "우울해"
	Payday   = "월급날"
	Netflix  = "넷플릭스"
	InAHurry = "시간없어"
	Unwell   = "컨디션"
	HotDay   = "더운날"
	ColdDay  = "추운날"
	GoodDay  = "기분좋은날"
)

// Textures.
const (
	Crispy  = "바삭"
	Chewy   = "쫄깃"
	Soft    = "부드러움"
	Crunchy = "아삭"
	Thick   = "꾸덕"
	Springy = "탱글"
	Moist   = "촉촉"
)

// Satiety levels.
const (
	Light   = "가벼움"
	Normal  = "적당함"
	Hearty  = "든든함"
	Stuffed = "배터짐"
)

// Calorie classes.
const (
	LowCalorie  = "저칼로리"
	MidCalorie  = "보통"
	HighCalorie = "고칼로리"
)

// Vocabulary lists the controlled tag values of each facet in display order.
var vocabulary = map[Facet][]string{
	FacetMealTime:      {Breakfast, Lunch, Dinner, LateNight, SnackTime},
	FacetCompanion:     {Solo, Couple, Friends, Family, TeamMeal},
	FacetCuisine:       {Korean, Chinese, Japanese, Western, Asian, Other},
	FacetCookingMethod: {Broth, GrillFry, DeepFried, Steamed, Raw},
	FacetTaste:         {Spicy, Nutty, Sour, Salty, Sweet, Mild, Numbing},
	FacetDishType:      {Rice, Noodle, Soup, Grill, Snack, Salad, Dessert},
	FacetTemperature:   {Hot, Cold, RoomTemp},
	FacetBudget:        {Cheap, Moderate, Splurge, Flex},
	FacetContext: {
		Hangover, Diet, Rainy, Blue, Payday, Netflix, InAHurry,
		Unwell, HotDay, ColdDay, GoodDay,
	},
	FacetTexture: {Crispy, Chewy, Soft, Crunchy, Thick, Springy, Moist},
	FacetSatiety: {Light, Normal, Hearty, Stuffed},
}

var calorieClasses = []string{LowCalorie, MidCalorie, HighCalorie}

// Vocabulary returns a copy of the controlled values for a facet, or nil for
// an unknown facet.
func Vocabulary(f Facet) []string {
	v, ok := vocabulary[f]
	if !ok {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// InVocabulary reports whether value is a controlled tag of facet f.
func InVocabulary(f Facet, value string) bool {
	for _, v := range vocabulary[f] {
		if v == value {
			return true
		}
	}
	return false
}

// IsSentinel reports whether value is one of the "no preference" markers.
func IsSentinel(value string) bool {
	return value == Any || value == Pass || value == RoomTemp
}

// SelectionFacets are the facets a user answers, in step order.
var SelectionFacets = []Facet{
	FacetMealTime,
	FacetCompanion,
	FacetCuisine,
	FacetCookingMethod,
	FacetTaste,
	FacetDishType,
	FacetTemperature,
	FacetBudget,
	FacetContext,
}

// taggedFacets are all facets an item can carry tags for.
var taggedFacets = []Facet{
	FacetMealTime,
	FacetCompanion,
	FacetCuisine,
	FacetCookingMethod,
	FacetTaste,
	FacetDishType,
	FacetTemperature,
	FacetBudget,
	FacetContext,
	FacetTexture,
	FacetSatiety,
}

// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

// StepOption is one selectable answer of a step.
type StepOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	IconURL     string `json:"iconUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// StepConfig describes one question of the selection flow.
type StepConfig struct {
	ID          Facet        `json:"id"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	MultiSelect bool         `json:"multiSelect"`
	Optional    bool         `json:"optional"`
	Options     []StepOption `json:"options"`
}

// HasOption reports whether id is one of the step's option IDs.
func (s *StepConfig) HasOption(id string) bool {
	for _, o := range s.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

var steps = []StepConfig{
	{
		ID:          FacetMealTime,
		Title:       "식사 시간",
		Subtitle:    "언제 드실 예정인가요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Breakfast, Label: "아침", Emoji: "🌤️", Description: "가벼운 하루의 시작"},
			{ID: Lunch, Label: "점심", Emoji: "☀️", Description: "든든한 에너지 충전"},
			{ID: Dinner, Label: "저녁", Emoji: "🌙", Description: "수고한 나를 위한 보상"},
			{ID: LateNight, Label: "야식", Emoji: "🌜", Description: "참을 수 없는 유혹"},
			{ID: SnackTime, Label: "브런치 · 간식", Emoji: "☕", Description: "입이 심심할 때"},
		},
	},
	{
		ID:          FacetCompanion,
		Title:       "누구와",
		Subtitle:    "함께하는 분이 있나요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Solo, Label: "나홀로 힐링", Emoji: "🧑", Description: "오롯이 즐기는 밥상"},
			{ID: Couple, Label: "연인과 달콤하게", Emoji: "💕", Description: "분위기가 필요한 오늘"},
			{ID: Friends, Label: "친구와 즐겁게", Emoji: "👥", Description: "수다와 함께 냠냠"},
			{ID: Family, Label: "가족과 따뜻하게", Emoji: "👨‍👩‍👧‍👦", Description: "다같이 도란도란"},
			{ID: TeamMeal, Label: "회식 · 단체", Emoji: "🎉", Description: "왁자지껄 신나게"},
		},
	},
	{
		ID:          FacetCuisine,
		Title:       "요리 스타일",
		Subtitle:    "어느 나라 요리가 끌리나요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Korean, Label: "한식", Emoji: "🇰🇷", IconURL: "https://flagcdn.com/w80/kr.png", Description: "한국인은 밥심"},
			{ID: Chinese, Label: "중식", Emoji: "🇨🇳", IconURL: "https://flagcdn.com/w80/cn.png", Description: "기름진 불맛의 매력"},
			{ID: Japanese, Label: "일식", Emoji: "🇯🇵", IconURL: "https://flagcdn.com/w80/jp.png", Description: "정갈하고 깊은 맛"},
			{ID: Western, Label: "양식", Emoji: "🇺🇸", IconURL: "https://flagcdn.com/w80/us.png", Description: "우아한 서양의 맛"},
			{ID: Asian, Label: "아시안", Emoji: "🇻🇳", IconURL: "https://flagcdn.com/w80/vn.png", Description: "이국적인 향신료"},
			{ID: Other, Label: "멕시칸 · 기타", Emoji: "🌮", IconURL: "https://flagcdn.com/w80/mx.png", Description: "색다른 별미가 필요할 때"},
			{ID: Any, Label: "상관없음", Emoji: "🔀", Description: "아무거나 다 좋아!"},
		},
	},
	{
		ID:          FacetCookingMethod,
		Title:       "조리 방식",
		Subtitle:    "어떤 식으로 조리된 요리가 당기나요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Broth, Label: "국물 자작하게", Emoji: "🍲", Description: "호로록 마시는 식감"},
			{ID: GrillFry, Label: "불판 위 구이·볶음", Emoji: "🍳", Description: "지글지글 소리까지 맛있는"},
			{ID: DeepFried, Label: "바삭바삭 튀김", Emoji: "🍤", Description: "기름에 튀긴 건 다 맛있어"},
			{ID: Steamed, Label: "부드러운 찜·삶음", Emoji: "♨️", Description: "건강하고 촉촉하게"},
			{ID: Raw, Label: "신선한 날것·콜드", Emoji: "🥗", Description: "재료 본연의 산뜻함"},
			{ID: Any, Label: "상관없음", Emoji: "🔀", Description: "맛있으면 장땡!"},
		},
	},
	{
		ID:          FacetTaste,
		Title:       "맛 취향",
		Subtitle:    "어떤 맛을 원하시나요? (복수 선택 가능)",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Spicy, Label: "스트레스 쫙 매콤", Emoji: "🌶️", Description: "침샘폭발 틈새공략"},
			{ID: Nutty, Label: "크리미 & 고소", Emoji: "🧈", Description: "풍미 가득 느끼함"},
			{ID: Sour, Label: "상큼 발랄 새콤", Emoji: "🍋", Description: "입맛 돋우는 산뜻함"},
			{ID: Salty, Label: "마성의 단짠/짭조름", Emoji: "🧂", Description: "무한 흡입 감칠맛"},
			{ID: Sweet, Label: "기분 업! 달콤상콤", Emoji: "🍯", Description: "당 충전 100%"},
			{ID: Mild, Label: "속 편한 담백함", Emoji: "🥬", Description: "가볍고 깔끔한 마무리"},
			{ID: Numbing, Label: "마라 마라! 얼얼함", Emoji: "🔥", Description: "중독성 강한 향신료"},
		},
	},
	{
		ID:          FacetDishType,
		Title:       "음식 종류",
		Subtitle:    "어떤 메뉴가 생각나시나요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Rice, Label: "든든한 밥", Emoji: "🍚", Description: "비빔밥, 덮밥, 볶음밥"},
			{ID: Noodle, Label: "호로록 면", Emoji: "🍜", Description: "라면, 파스타, 냉면"},
			{ID: Soup, Label: "뜨끈한 국/찌개", Emoji: "🍲", Description: "김치찌개, 탕, 전골"},
			{ID: Grill, Label: "육식파 고기", Emoji: "🥩", Description: "삼겹살, 스테이크"},
			{ID: Snack, Label: "빵돌이/빵순이 & 분식", Emoji: "🍕", Description: "떡볶이, 피자, 샌드위치"},
			{ID: Salad, Label: "가벼운 샐러드/포케", Emoji: "🥗", Description: "건강 챙기기 건강식"},
			{ID: Dessert, Label: "디저트 & 카페", Emoji: "🍰", Description: "여유로운 브런치"},
			{ID: Any, Label: "상관없음", Emoji: "🔀", Description: "뭐든 좋아요"},
		},
	},
	{
		ID:          FacetTemperature,
		Title:       "온도",
		Subtitle:    "뜨겁게? 차갑게?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Hot, Label: "이열치열 뜨거움", Emoji: "🔥", Description: "호호 불어먹는 맛"},
			{ID: Cold, Label: "얼어죽어도 아이스", Emoji: "❄️", Description: "가슴 뻥 뚫리는 시원함"},
			{ID: RoomTemp, Label: "상관없음", Emoji: "🌡️", Description: "딱 먹기 좋은 온도"},
		},
	},
	{
		ID:          FacetBudget,
		Title:       "예산",
		Subtitle:    "생각해둔 가격대가 있나요?",
		MultiSelect: true,
		Options: []StepOption{
			{ID: Cheap, Label: "가성비 굿", Emoji: "💰", Description: "~8,000원의 소확행"},
			{ID: Moderate, Label: "적당하게", Emoji: "💳", Description: "8,000~15,000원의 즐거움"},
			{ID: Splurge, Label: "조금 무리해서", Emoji: "💎", Description: "15,000~25,000원 은근한 사치"},
			{ID: Flex, Label: "오늘 내가 쏜다!", Emoji: "👑", Description: "25,000원~ 눈치보지 마!"},
			{ID: Any, Label: "상관없음", Emoji: "🔀", Description: "돈이 문제인가!"},
		},
	},
	{
		ID:          FacetContext,
		Title:       "특별한 상황",
		Subtitle:    "현재 어떤 상황이신가요?",
		MultiSelect: true,
		Optional:    true,
		Options: []StepOption{
			{ID: Hangover, Label: "과음 후엔 해장", Emoji: "🍺", Description: "간을 살려주세요"},
			{ID: Diet, Label: "작심삼일 다이어트", Emoji: "🏃", Description: "저칼로리 우선"},
			{ID: Rainy, Label: "비 오는 날 감성", Emoji: "☔", Description: "파전에 막걸리 각"},
			{ID: Blue, Label: "기분 꿀꿀한 날", Emoji: "🥺", Description: "위로가 되는 소울푸드"},
			{ID: Payday, Label: "월급날 플렉스", Emoji: "💸", Description: "고생한 나에게 선물"},
			{ID: Netflix, Label: "넷플릭스 정주행", Emoji: "📺", Description: "드라마 보며 먹기 좋은"},
			{ID: InAHurry, Label: "빨리 먹고 가야해", Emoji: "⏰", Description: "스피드가 생명"},
			{ID: Pass, Label: "초능력 평범함", Emoji: "🚫", Description: "특별한 상황은 아님"},
		},
	},
}

// Steps returns the ordered step definitions. Callers receive a deep copy.
func Steps() []StepConfig {
	out := make([]StepConfig, len(steps))
	for i, s := range steps {
		out[i] = s
		out[i].Options = append([]StepOption(nil), s.Options...)
	}
	return out
}

// StepCount is the number of steps in the flow.
func StepCount() int {
	return len(steps)
}

// StepAt returns the step at index i.
func StepAt(i int) (StepConfig, bool) {
	if i < 0 || i >= len(steps) {
		return StepConfig{}, false
	}
	s := steps[i]
	s.Options = append([]StepOption(nil), s.Options...)
	return s, true
}

// StepByID looks up a step by its facet ID and returns its index.
func StepByID(id Facet) (StepConfig, int, bool) {
	for i := range steps {
		if steps[i].ID == id {
			s, _ := StepAt(i)
			return s, i, true
		}
	}
	return StepConfig{}, -1, false
}

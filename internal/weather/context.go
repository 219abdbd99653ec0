// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package weather

import (
	"strings"

	"github.com/tomtom215/what2eat/internal/menu"
)

// Temperature thresholds, in °C, for the implicit context tag.
const (
	HotDayAt  = 30.0
	ColdDayAt = 5.0
)

// defaultMessageTemp is assumed when a condition is known but the
// temperature is not.
const defaultMessageTemp = 20.0

// GenericMessage is shown when no weather condition is known.
const GenericMessage = "오늘 같은 날씨엔 맛있는 한 끼로 기분 전환! 🍽️"

// RNG picks a uniform index in [0, n). *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Snapshot is the weather state of a session. Loaded is terminal: once a
// session has loaded weather it never loads again.
type Snapshot struct {
	Temp      *float64 `json:"temp"`
	Condition *string  `json:"condition"`
	Loaded    bool     `json:"loaded"`
}

// SnapshotFromReport converts a client report into a loaded snapshot.
func SnapshotFromReport(r Report) Snapshot {
	temp := r.Temp
	cond := r.Condition
	return Snapshot{Temp: &temp, Condition: &cond, Loaded: true}
}

// ContextTag returns the context facet tag implied by the snapshot.
func (s Snapshot) ContextTag() string {
	return ContextTag(s.Temp, s.Condition)
}

// ContextTag maps the current weather to a context tag, or "" when the
// weather implies none. Rain-like conditions win over temperature.
func ContextTag(temp *float64, condition *string) string {
	if condition != nil && isRainLike(strings.ToLower(*condition)) {
		return menu.Rainy
	}
	if temp != nil {
		switch {
		case *temp >= HotDayAt:
			return menu.HotDay
		case *temp <= ColdDayAt:
			return menu.ColdDay
		}
	}
	return ""
}

func isRainLike(c string) bool {
	return containsAny(c, "rain", "drizzle", "thunderstorm")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// messageBand is one row of the start-screen message table.
type messageBand struct {
	match    func(temp float64, cond string) bool
	messages []string
}

var messageBands = []messageBand{
	{
		match: func(_ float64, c string) bool { return isRainLike(c) },
		messages: []string{
			"비 오는 날엔 따끈한 국물이나 바삭한 파전 어때요? ☔️",
			"빗소리 들으며 즐기는 삼겹살에 소주 한 잔! 🥓",
			"비 올 땐 얼큰한 짬뽕 국물이 최고죠! 🍜",
			"비 오는 날 감성 돋는 칼국수 한 그릇! 🥢",
			"우산 쓰고 따뜻한 국밥 한 그릇 어떠세요? 🍚",
		},
	},
	{
		match: func(_ float64, c string) bool { return strings.Contains(c, "snow") },
		messages: []string{
			"눈 내리는 날엔 김이 모락모락 나는 우동 한 그릇! ❄️",
			"추운 날엔 따뜻한 전골 요리가 딱이에요! 🥘",
			"흰 눈이 오면 분위기 있는 스테이크 썰어볼까요? 🍽️",
			"눈 오는 날, 호호 불며 먹는 군고구마와 라떼! 🍠",
		},
	},
	{
		match: func(t float64, _ string) bool { return t >= 30 },
		messages: []string{
			"폭염 주의! 살얼음 동동 띄운 시원한 냉면! 🧊",
			"오늘 너무 덥죠? 시원한 콩국수로 더위 사냥! 🥢",
			"더위에 지친 몸, 삼계탕으로 이열치열 몸보신! 🐔",
			"입맛 없을 땐 새콤달콤한 비빔국수 어때요? 🥗",
		},
	},
	{
		match: func(t float64, _ string) bool { return t >= 25 },
		messages: []string{
			"더운 날씨엔 시원한 메밀소바나 초밥 어때요? 🍣",
			"시원한 맥주와 함께 즐기는 타코는 어떠세요? 🌮",
			"가볍게 즐기는 샐러드 보울로 상큼하게! 🥗",
		},
	},
	{
		match: func(t float64, _ string) bool { return t <= 0 },
		messages: []string{
			"꽁꽁 언 날씨엔 뜨끈한 순대국밥이나 김치찌개! 🍲",
			"추울 땐 보글보글 부대찌개가 생각나지 않나요? 🥘",
			"몸 녹이는 따뜻한 핫초코와 디저트가 땡기는 날! ☕",
		},
	},
	{
		match: func(t float64, _ string) bool { return t <= 10 },
		messages: []string{
			"쌀쌀한 바람 부는 날엔 따뜻한 라멘이나 쌀국수! 🍜",
			"몸을 따뜻하게 해줄 죽이나 숭늉은 어때요? 🥣",
			"따뜻한 온메밀이나 우동으로 몸 녹이기! 🥢",
		},
	},
	{
		match: func(_ float64, c string) bool { return containsAny(c, "cloud", "overcast") },
		messages: []string{
			"구름 낀 흐린 날엔 매콤한 떡볶이나 짬뽕으로 기분 전환! 🌶️",
			"흐린 날씨엔 기름진 전이나 튀김이 땡기지 않나요? 🍤",
			"기분 전환이 필요할 땐 달달한 디저트 타임! 🍰",
		},
	},
	{
		match: func(_ float64, c string) bool { return containsAny(c, "clear", "sunny") },
		messages: []string{
			"화창한 날씨엔 가벼운 샌드위치나 브런치 어때요? 🥗",
			"햇살 좋은 날, 테라스에서 파스타 어떠세요? 🍝",
			"날씨가 너무 좋아요! 소풍 가는 기분으로 김밥? 🍙",
			"맑은 날씨엔 뷰 좋은 카페에서 브런치! ☕",
		},
	},
	{
		match: func(_ float64, c string) bool { return containsAny(c, "mist", "fog", "haze") },
		messages: []string{
			"안개 낀 날엔 분위기 있게 파스타나 스테이크! 🍷",
			"몽환적인 날씨, 따뜻한 차 한 잔과 스콘? 🍵",
		},
	},
}

var defaultMessages = []string{
	"선선한 날씨엔 든든한 덮밥이나 가정식 백반 어때요? 🍚",
	"오늘 같은 날씨엔 치킨에 맥주가 딱! 🍗",
	"특별한 날, 초밥으로 깔끔한 한 끼! 🍣",
	"맛있는 한 끼로 오늘 하루 힘내세요! 💪",
}

// Message returns start-screen flavor text for the weather. Bands are
// checked in order and a message is drawn uniformly from the first match.
func Message(temp *float64, condition *string, rng RNG) string {
	if condition == nil || *condition == "" {
		return GenericMessage
	}
	return pick(MessageCandidates(temp, condition), rng)
}

// MessageCandidates returns the message band Message draws from.
func MessageCandidates(temp *float64, condition *string) []string {
	if condition == nil || *condition == "" {
		return []string{GenericMessage}
	}
	t := defaultMessageTemp
	if temp != nil {
		t = *temp
	}
	c := strings.ToLower(*condition)
	for _, b := range messageBands {
		if b.match(t, c) {
			return b.messages
		}
	}
	return defaultMessages
}

func pick(options []string, rng RNG) string {
	if rng == nil || len(options) == 1 {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}

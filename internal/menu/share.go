// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

import (
	"fmt"
	"net/url"
)

// SiteDomain is the public domain used in share links.
const SiteDomain = "what2eat.kr"

const kakaoMapSearchURL = "https://map.kakao.com/link/search/"

// ShareCard holds the text and links the result screen offers for sharing.
type ShareCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MapURL      string `json:"map_url"`
	Clipboard   string `json:"clipboard"`
	SiteURL     string `json:"site_url"`
}

// MapSearchURL returns a Kakao Map search link for the item name.
func MapSearchURL(name string) string {
	return kakaoMapSearchURL + url.PathEscape(name)
}

// NewShareCard builds the share payload for a recommended item.
func NewShareCard(it *Item, reason string) ShareCard {
	return ShareCard{
		Title:       fmt.Sprintf("오늘 메뉴는 %s이다!", it.Name),
		Description: fmt.Sprintf("😋 오늘은 %s이 먹고 싶어요! 같이 먹을래요?\n%s", it.Name, reason),
		MapURL:      MapSearchURL(it.Name),
		Clipboard:   fmt.Sprintf("오늘은 %s 어때? 같이 먹을래요?", it.Name),
		SiteURL:     "https://" + SiteDomain,
	}
}

package model

import "catalog_tgbot/internal/lib/pagination"

// NavState is the shareable position of a browse message: the page and the
// search text. It is mirrored into the `p=<page>&q=<query>` fragment.
type NavState struct {
	Page  int    `json:"page"`
	Query string `json:"query"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Session is what survives restarts for a chat.
type Session struct {
	Width       int `json:"width"`
	BrowseMsgID int `json:"browseMsgId"`
}

// View is everything needed to paint a browse message.
type View struct {
	Page       int
	TotalPages int
	Query      string
	Items      []Item
	Matched    []Item
	NoData     bool
	Slots      []pagination.Slot
	Theme      Theme
	Nav        NavState
	Error      string
}

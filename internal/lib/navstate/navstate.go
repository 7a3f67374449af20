// Package navstate converts a browse position to and from its fragment form
// `p=<page>&q=<query>`.
package navstate

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"

	"catalog_tgbot/internal/model"
)

const (
	pageKey  = "p"
	queryKey = "q"

	// maxStartPayload is the Telegram limit for /start deep-link parameters.
	maxStartPayload = 64
)

// Encode serialises state as `p=<page>&q=<query>` with the query escaped the
// way encodeURIComponent does it.
func Encode(state model.NavState) string {
	page := state.Page
	if page < 1 {
		page = 1
	}
	return pageKey + "=" + strconv.Itoa(page) + "&" + queryKey + "=" + EscapeComponent(state.Query)
}

// Parse reads a fragment with or without the leading '#'. A missing or
// non-numeric page yields 1, a missing query yields "".
func Parse(fragment string) model.NavState {
	fragment = strings.TrimSpace(fragment)
	fragment = strings.TrimPrefix(fragment, "#")

	state := model.NavState{Page: 1}
	seen := map[string]bool{}

	for _, pair := range strings.Split(fragment, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key := unescape(rawKey)
		if seen[key] {
			continue
		}
		seen[key] = true

		switch key {
		case pageKey:
			if p, ok := parseLeadingInt(unescape(rawValue)); ok && p >= 1 {
				state.Page = p
			}
		case queryKey:
			state.Query = unescape(rawValue)
		}
	}

	return state
}

// StartPayload wraps the fragment into the alphabet Telegram accepts for
// /start parameters. ok is false when the result would exceed the limit.
func StartPayload(state model.NavState) (payload string, ok bool) {
	payload = base64.RawURLEncoding.EncodeToString([]byte(Encode(state)))
	if len(payload) > maxStartPayload {
		return "", false
	}
	return payload, true
}

// ParseStartPayload is the inverse of StartPayload. Payloads that are not
// base64 are read as a plain fragment.
func ParseStartPayload(payload string) model.NavState {
	payload = strings.TrimSpace(payload)
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Parse(payload)
	}
	return Parse(string(raw))
}

// EscapeComponent mirrors encodeURIComponent: everything except
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded and spaces become %20.
func EscapeComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentReplacer.Replace(escaped)
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func unescape(s string) string {
	res, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return res
}

// parseLeadingInt accepts an optional sign followed by digits and ignores any
// trailing garbage, so "12abc" reads as 12.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

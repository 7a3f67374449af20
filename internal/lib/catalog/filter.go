package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog_tgbot/internal/model"

	"golang.org/x/text/cases"
)

// Filter keeps the items whose title, author or id contains query, ignoring
// case. A blank query returns items as is.
func Filter(items []model.Item, query string) []model.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]model.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Title.String()), needle) ||
			strings.Contains(fold.String(item.Author.String()), needle) ||
			strings.Contains(fold.String(item.ID.String()), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Summarize is the counter line shown above the cards.
func Summarize(matched, total int, query string) string {
	if strings.TrimSpace(query) == "" {
		return fmt.Sprintf("%d templates", total)
	}
	return fmt.Sprintf("Showing %d of %d templates", matched, total)
}

// MaxFieldRunes bounds every catalog field shown to a user.
const MaxFieldRunes = 120

// Clip shortens s to at most n runes, marking the cut with "…".
func Clip(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

// Clipped returns item with title, author and id clipped to MaxFieldRunes.
func Clipped(item model.Item) model.Item {
	item.ID = model.Text(Clip(item.ID.String(), MaxFieldRunes))
	item.Title = model.Text(Clip(item.Title.String(), MaxFieldRunes))
	item.Author = model.Text(Clip(item.Author.String(), MaxFieldRunes))
	return item
}

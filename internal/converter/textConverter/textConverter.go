// Package textConverter renders browse views as plain terminal text.
package textConverter

import (
	"fmt"
	"strconv"
	"strings"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/catalog"
	"catalog_tgbot/internal/lib/contact"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
)

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Strip renders the page strip, e.g. `1 … 4 [5] 6 … 20`.
func Strip(view model.View) string {
	parts := make([]string, 0, len(view.Slots))
	for _, slot := range view.Slots {
		switch {
		case slot.Ellipsis:
			parts = append(parts, "…")
		case slot.IsCurrent(view.Page):
			parts = append(parts, "["+strconv.Itoa(slot.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(slot.Page))
		}
	}
	return strings.Join(parts, " ")
}

func item(cfg *config.Config, it model.Item) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("* %s\n", orMissing(it.Title.String())))
	if link := it.Link.String(); link != "" && link != "#" {
		sb.WriteString(fmt.Sprintf("  Link: %s\n", link))
	}
	if image := it.Image.String(); image != "" {
		sb.WriteString(fmt.Sprintf("  Image: %s\n", image))
	} else {
		sb.WriteString("  Image not available\n")
	}
	sb.WriteString(fmt.Sprintf("  Author: %s\n", orMissing(it.Author.String())))
	sb.WriteString(fmt.Sprintf("  ID: %s\n", orMissing(it.ID.String())))
	sb.WriteString(fmt.Sprintf("  Contact: %s\n", contact.Link(cfg, it)))
	return sb.String()
}

func BrowsePage(cfg *config.Config, view model.View) string {
	sb := strings.Builder{}
	strip := Strip(view)

	sb.WriteString(fmt.Sprintf("Catalog · page %d of %d\n", view.Page, view.TotalPages))
	if !view.NoData {
		sb.WriteString(catalog.Summarize(len(view.Matched), len(view.Items), view.Query) + "\n")
	}
	sb.WriteString(strip + "\n\n")

	switch {
	case view.Error != "":
		sb.WriteString("! " + view.Error + "\n")
	case view.NoData:
		sb.WriteString("No data on this page\n")
	case len(view.Matched) == 0:
		sb.WriteString("No results found\n")
	default:
		for _, it := range view.Matched {
			sb.WriteString(item(cfg, it))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + strip + "\n")
	sb.WriteString("#" + navstate.Encode(view.Nav) + "\n")

	return sb.String()
}

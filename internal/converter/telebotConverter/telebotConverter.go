package telebotConverter

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/catalog"
	"catalog_tgbot/internal/lib/contact"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/model/tg/tgCallback"

	"github.com/microcosm-cc/bluemonday"
	tele "gopkg.in/telebot.v4"
)

const (
	NoResultsText   = "No results found"
	NoDataText      = "No data on this page"
	NoImageText     = "Image not available"
	missingField    = "-"
	ellipsisLabel   = "…"
	defaultMaxChars = 4000
	shortFieldRunes = 40
)

var strict = bluemonday.StrictPolicy()

type palette struct {
	icon   string
	label  string
	bullet string
}

var palettes = map[model.Theme]palette{
	model.ThemeLight: {icon: "☀️", label: "Light", bullet: "▫️"},
	model.ThemeDark:  {icon: "🌙", label: "Dark", bullet: "▪️"},
}

func paletteFor(theme model.Theme) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[model.ThemeLight]
}

// sanitize strips markup from catalog text; the result is safe inside
// Telegram HTML.
func sanitize(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// safeURL returns an attribute-safe http(s) URL or "" for anything else,
// including the "#" placeholder.
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "#" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return html.EscapeString(u.String())
}

func orMissing(s string) string {
	if s == "" {
		return missingField
	}
	return s
}

// ItemCard renders one item as Telegram HTML. Title, author and id are
// clipped to catalog.MaxFieldRunes.
func ItemCard(cfg *config.Config, item model.Item, theme model.Theme) string {
	sb := strings.Builder{}
	p := paletteFor(theme)
	item = catalog.Clipped(item)

	title := sanitize(item.Title.String())
	if link := safeURL(item.Link.String()); link != "" && title != "" {
		sb.WriteString(fmt.Sprintf("%s <a href=\"%s\"><b>%s</b></a>\n", p.bullet, link, title))
	} else {
		sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n", p.bullet, orMissing(title)))
	}

	if image := safeURL(item.Image.String()); image != "" {
		sb.WriteString(fmt.Sprintf("<a href=\"%s\">Image</a>\n", image))
	} else {
		sb.WriteString(NoImageText + "\n")
	}

	id := sanitize(item.ID.String())
	sb.WriteString(fmt.Sprintf("Author: %s\n", orMissing(sanitize(item.Author.String()))))
	sb.WriteString(fmt.Sprintf("ID: %s\n", orMissing(id)))
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">Get this template</a>", html.EscapeString(contact.Link(cfg, item))))
	if id != "" {
		sb.WriteString(fmt.Sprintf(" · <code>/request %s</code>", id))
	}

	return sb.String()
}

// shortCard stands in for an item whose full card does not fit the message.
func shortCard(item model.Item, theme model.Theme) string {
	p := paletteFor(theme)
	title := sanitize(catalog.Clip(item.Title.String(), shortFieldRunes))
	id := sanitize(catalog.Clip(item.ID.String(), shortFieldRunes))
	return fmt.Sprintf("%s <b>%s</b>\nID: %s", p.bullet, orMissing(title), orMissing(id))
}

func header(view model.View) string {
	p := paletteFor(view.Theme)
	title := fmt.Sprintf("%s <b>Catalog</b> · page %d of %d", p.icon, view.Page, view.TotalPages)
	if view.NoData {
		return title
	}
	return title + "\n" + html.EscapeString(catalog.Summarize(len(view.Matched), len(view.Items), view.Query))
}

// Footer is the shareable position of the message.
func Footer(nav model.NavState) string {
	return fmt.Sprintf("🔗 <code>#%s</code>", html.EscapeString(navstate.Encode(nav)))
}

// BrowseText is the message body: header, cards (or the empty/error state)
// and footer, kept under cfg.MessageMaxLen bytes.
func BrowseText(cfg *config.Config, view model.View) string {
	maxChars := cfg.MessageMaxLen
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}

	head := header(view)
	foot := Footer(view.Nav)
	if len(foot) > maxChars/4 {
		foot = ""
	}

	var body string
	switch {
	case view.Error != "":
		body = "⚠️ " + html.EscapeString(view.Error)
	case view.NoData:
		body = NoDataText
	case len(view.Matched) == 0:
		body = NoResultsText
	default:
		body = cards(cfg, view, maxChars-len(head)-len(foot)-4)
	}

	if foot == "" {
		return head + "\n\n" + body
	}
	return head + "\n\n" + body + "\n\n" + foot
}

func cards(cfg *config.Config, view model.View, budget int) string {
	rendered := make([]string, 0, len(view.Matched))
	used := 0

	for i, item := range view.Matched {
		reserve := 0
		if i < len(view.Matched)-1 {
			reserve = len(moreText(len(view.Matched))) + 2
		}

		card := ItemCard(cfg, item, view.Theme)
		if used+len(card)+2+reserve > budget && len(rendered) == 0 {
			card = shortCard(item, view.Theme)
		}
		if used+len(card)+2+reserve > budget {
			rendered = append(rendered, moreText(len(view.Matched)-i))
			break
		}

		rendered = append(rendered, card)
		used += len(card) + 2
	}

	return strings.Join(rendered, "\n\n")
}

func moreText(k int) string {
	return fmt.Sprintf("…and %d more, refine your search", k)
}

// PaginationRow is the strip of page buttons; the current page and the gaps
// are inert.
func PaginationRow(markup *tele.ReplyMarkup, view model.View) tele.Row {
	row := make(tele.Row, 0, len(view.Slots))
	for _, slot := range view.Slots {
		switch {
		case slot.Ellipsis:
			row = append(row, markup.Data(ellipsisLabel, tgCallback.Ellipsis))
		case slot.IsCurrent(view.Page):
			row = append(row, markup.Data(fmt.Sprintf("· %d ·", slot.Page), tgCallback.PageNumber))
		default:
			row = append(row, markup.Data(strconv.Itoa(slot.Page), tgCallback.ToPage+strconv.Itoa(slot.Page)))
		}
	}
	return row
}

// ThemeButton reflects the active theme.
func ThemeButton(markup *tele.ReplyMarkup, theme model.Theme) tele.Btn {
	p := paletteFor(theme)
	return markup.Data(fmt.Sprintf("%s %s theme", p.icon, p.label), tgCallback.ToggleTheme)
}

// BrowsePage renders a view as message text plus the inline keyboard: the
// page strip on top, the theme toggle, and the same strip again at the bottom.
func BrowsePage(cfg *config.Config, view model.View) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = BrowseText(cfg, view)

	rows := make([]tele.Row, 0, 3)
	strip := PaginationRow(markup, view)
	if len(strip) > 0 {
		rows = append(rows, strip)
	}
	rows = append(rows, markup.Row(ThemeButton(markup, view.Theme)))
	if len(strip) > 0 {
		rows = append(rows, PaginationRow(markup, view))
	}

	markup.Inline(rows...)

	return text, markup
}

// ContactResponse answers /request with the outbound contact link.
func ContactResponse(item model.Item, link string, relayed bool) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}

	title := orMissing(sanitize(catalog.Clip(item.Title.String(), catalog.MaxFieldRunes)))
	if relayed {
		text = fmt.Sprintf("Your request for <b>%s</b> was sent. You can also write to us directly:", title)
	} else {
		text = fmt.Sprintf("Write to us about <b>%s</b>:", title)
	}

	markup.Inline(markup.Row(markup.URL("Open chat", link)))

	return text, markup
}

package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/utils"

	"github.com/gocolly/colly/v2"
)

var ErrInvalidPayload = errors.New("page payload is not valid json")

// CatalogParser reads the statically hosted page files of the catalog.
type CatalogParser struct {
	cfg *config.Config
}

func NewCatalogParser(cfg *config.Config) *CatalogParser {
	return &CatalogParser{cfg: cfg}
}

func (p *CatalogParser) PageURL(n int) string {
	return strings.TrimRight(p.cfg.Catalog.BaseUrl, "/") + fmt.Sprintf(p.cfg.Catalog.PagePattern, n)
}

func (p *CatalogParser) getCollector() (*colly.Collector, error) {
	op := "CatalogParser.getCollector"
	c := colly.NewCollector()

	if p.cfg.Catalog.RequestTimeout > 0 {
		c.SetRequestTimeout(p.cfg.Catalog.RequestTimeout)
	}

	if p.cfg.Catalog.ProxyUrl != "" {
		err := c.SetProxy(p.cfg.Catalog.ProxyUrl)
		if err != nil {
			slog.Error(
				"Failed to set proxy",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, err
		}
	}

	return c, nil
}

// Probe reports whether page n exists. A non-2xx answer is reported as
// (false, nil); transport problems come back as the error.
func (p *CatalogParser) Probe(ctx context.Context, n int) (bool, error) {
	op := "CatalogParser.Probe"
	rqID := utils.GetRequestIDFromCtx(ctx)

	c, err := p.getCollector()
	if err != nil {
		return false, err
	}

	statusCode := 0
	c.OnError(func(r *colly.Response, _ error) {
		statusCode = r.StatusCode
	})

	pageURL := p.PageURL(n)
	err = c.Visit(pageURL)
	if err != nil {
		if statusCode != 0 {
			slog.Debug("page is absent", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", pageURL), slog.Int("status", statusCode))
			return false, nil
		}
		return false, fmt.Errorf("probe page %d: %w", n, err)
	}

	return true, nil
}

// FetchPage downloads and decodes page n.
func (p *CatalogParser) FetchPage(ctx context.Context, n int) (model.Page, error) {
	op := "CatalogParser.FetchPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	c, err := p.getCollector()
	if err != nil {
		slog.Error(
			"Failed to get collector",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return model.Page{}, err
	}

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnRequest(func(r *colly.Request) {
		slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", r.URL.String()))
	})

	pageURL := p.PageURL(n)
	err = c.Visit(pageURL)
	if err != nil {
		slog.Error(
			"Error while visiting url",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", pageURL),
			slog.String("err", err.Error()),
		)
		return model.Page{}, err
	}

	page, err := DecodePage(n, body)
	if err != nil {
		slog.Error("Error while decoding page", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", pageURL), slog.String("err", err.Error()))
		return model.Page{}, err
	}

	if page.Malformed {
		slog.Warn("page payload is not a list of items", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", pageURL))
	}

	return page, nil
}

// DecodePage turns a page file body into a Page. Valid JSON that is not an
// array gives a Malformed page rather than an error; array elements that are
// not objects become empty items.
func DecodePage(n int, body []byte) (model.Page, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return model.Page{}, fmt.Errorf("page %d: %w", n, ErrInvalidPayload)
	}

	if body[0] != '[' {
		return model.Page{Number: n, Malformed: true}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return model.Page{}, fmt.Errorf("page %d: %w", n, err)
	}

	items := make([]model.Item, 0, len(raw))
	for i, element := range raw {
		var item model.Item
		element = bytes.TrimSpace(element)
		if len(element) > 0 && element[0] == '{' {
			if err := json.Unmarshal(element, &item); err != nil {
				slog.Debug(
					"can't decode page element, rendering it empty",
					slog.String("op", "parser.DecodePage"),
					slog.Int("page", n),
					slog.Int("index", i),
					slog.String("err", err.Error()),
				)
				item = model.Item{}
			}
		}
		items = append(items, item)
	}

	return model.Page{Number: n, Items: items}, nil
}

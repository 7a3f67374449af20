package catalogService

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/pagecache"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/utils"

	"golang.org/x/sync/singleflight"
)

type CatalogParser interface {
	Probe(ctx context.Context, n int) (bool, error)
	FetchPage(ctx context.Context, n int) (model.Page, error)
}

// SharedCache is a page cache shared between bot instances.
type SharedCache interface {
	GetPage(ctx context.Context, n int) (page model.Page, found bool, err error)
	SetPage(ctx context.Context, page model.Page) error
}

// Indicator is shown while the catalog is being probed.
type Indicator interface {
	Start(label string)
	Tick()
	Stop()
}

type CatalogService struct {
	cfg    *config.Config
	parser CatalogParser
	shared SharedCache
	cache  *pagecache.Cache
	group  singleflight.Group

	mu    sync.RWMutex
	total int
}

// New builds the service. shared may be nil.
func New(cfg *config.Config, parser CatalogParser, shared SharedCache, cache *pagecache.Cache) *CatalogService {
	if cache == nil {
		cache = pagecache.New()
	}
	return &CatalogService{
		cfg:    cfg,
		parser: parser,
		shared: shared,
		cache:  cache,
		total:  1,
	}
}

// Detect probes pages 1..MaxProbe in order and stops at the first one that
// is missing or fails. The detected count, at least 1, becomes the bound used
// by Clamp.
func (s *CatalogService) Detect(ctx context.Context, indicator Indicator) int {
	op := "CatalogService.Detect"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if indicator != nil {
		indicator.Start("probing catalog pages")
		defer indicator.Stop()
	}

	found := 0
	for n := 1; n <= s.cfg.Catalog.MaxProbe; n++ {
		ok, err := s.parser.Probe(ctx, n)
		if err != nil {
			slog.Warn("probe failed, stopping detection", slog.String("op", op), slog.String("rqID", rqID), slog.Int("page", n), slog.String("err", err.Error()))
			break
		}
		if !ok {
			break
		}
		s.cache.MarkExists(n)
		found = n
		if indicator != nil {
			indicator.Tick()
		}
	}

	total := max(1, found)

	s.mu.Lock()
	s.total = total
	s.mu.Unlock()

	slog.Info("catalog pages detected", slog.String("op", op), slog.String("rqID", rqID), slog.Int("totalPages", total))

	return total
}

func (s *CatalogService) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.total
}

// Clamp moves page into [1, TotalPages()].
func (s *CatalogService) Clamp(page int) int {
	return min(max(1, page), s.TotalPages())
}

// LoadPage returns the clamped page, from memory, the shared cache or the
// network in that order. Concurrent loads of one page share a single fetch.
func (s *CatalogService) LoadPage(ctx context.Context, requested int) (model.Page, error) {
	op := "CatalogService.LoadPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	n := s.Clamp(requested)

	if page, ok := s.cache.Get(n); ok {
		return page, nil
	}

	res, err, _ := s.group.Do(strconv.Itoa(n), func() (any, error) {
		if page, ok := s.cache.Get(n); ok {
			return page, nil
		}

		if s.shared != nil {
			page, found, err := s.shared.GetPage(ctx, n)
			if err != nil {
				slog.Warn("shared cache read failed", slog.String("op", op), slog.String("rqID", rqID), slog.Int("page", n), slog.String("err", err.Error()))
			}
			if err == nil && found {
				s.cache.Set(page)
				return page, nil
			}
		}

		page, err := s.parser.FetchPage(ctx, n)
		if err != nil {
			return model.Page{}, fmt.Errorf("load page %d: %w", n, err)
		}
		page.Number = n
		s.cache.Set(page)

		if s.shared != nil {
			if err := s.shared.SetPage(context.WithoutCancel(ctx), page); err != nil {
				slog.Warn("shared cache write failed", slog.String("op", op), slog.String("rqID", rqID), slog.Int("page", n), slog.String("err", err.Error()))
			}
		}

		return page, nil
	})
	if err != nil {
		slog.Error("got error while loading page", slog.String("op", op), slog.String("rqID", rqID), slog.Int("page", n), slog.String("err", err.Error()))
		return model.Page{}, err
	}

	return res.(model.Page), nil
}

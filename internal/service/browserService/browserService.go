package browserService

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/catalog"
	"catalog_tgbot/internal/lib/debounce"
	"catalog_tgbot/internal/lib/pagination"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/service"
	"catalog_tgbot/utils"
)

type CatalogService interface {
	TotalPages() int
	Clamp(page int) int
	LoadPage(ctx context.Context, requested int) (model.Page, error)
}

type ThemeService interface {
	GetTheme(ctx context.Context, chatID int64) (model.Theme, error)
	Toggle(ctx context.Context, chatID int64) (model.Theme, error)
}

// chatState is the browsing state of one chat. token identifies the latest
// requested load; queryRev counts search edits.
type chatState struct {
	mu       sync.Mutex
	page     int
	query    string
	items    []model.Item
	noData   bool
	loaded   bool
	width    int
	token    uint64
	queryRev uint64

	search *debounce.Debouncer
	layout *debounce.Debouncer
}

type BrowserService struct {
	cfg     *config.Config
	catalog CatalogService
	themes  ThemeService

	mu    sync.Mutex
	chats map[int64]*chatState
}

func New(cfg *config.Config, catalog CatalogService, themes ThemeService) *BrowserService {
	return &BrowserService{
		cfg:     cfg,
		catalog: catalog,
		themes:  themes,
		chats:   make(map[int64]*chatState),
	}
}

func (s *BrowserService) state(chatID int64) *chatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.chats[chatID]
	if !ok {
		st = &chatState{
			page:   1,
			width:  s.cfg.Pagination.Width,
			search: debounce.New(s.cfg.SearchDebounce),
			layout: debounce.New(s.cfg.LayoutDebounce),
		}
		s.chats[chatID] = st
	}
	return st
}

// Open loads nav.Page and adopts it together with nav.Query. When a newer
// load for the chat was requested meanwhile, the result is dropped and
// service.ErrStaleLoad returned. On a failed load the previous state is kept
// and returned with View.Error set, alongside the error.
func (s *BrowserService) Open(ctx context.Context, chatID int64, nav model.NavState) (model.View, error) {
	op := "BrowserService.Open"
	rqID := utils.GetRequestIDFromCtx(ctx)
	st := s.state(chatID)

	st.mu.Lock()
	st.token++
	token := st.token
	queryRev := st.queryRev
	st.mu.Unlock()

	page, err := s.catalog.LoadPage(ctx, nav.Page)

	st.mu.Lock()
	if token != st.token {
		st.mu.Unlock()
		slog.Debug("dropping stale load", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("chatID", chatID), slog.Int("page", nav.Page))
		return model.View{}, service.ErrStaleLoad
	}

	if err != nil {
		view := s.buildView(st)
		st.mu.Unlock()
		view.Error = fmt.Sprintf("Could not load page %d. Please try again.", s.catalog.Clamp(nav.Page))
		view.Theme = s.theme(ctx, chatID)
		return view, fmt.Errorf("open page: %w", err)
	}

	st.page = page.Number
	st.items = page.Items
	st.noData = page.Malformed
	st.loaded = true
	if queryRev == st.queryRev {
		st.query = nav.Query
	}
	view := s.buildView(st)
	st.mu.Unlock()

	view.Theme = s.theme(ctx, chatID)

	return view, nil
}

// GoTo moves to page keeping the current search. Selecting the page already
// shown returns service.ErrSamePage.
func (s *BrowserService) GoTo(ctx context.Context, chatID int64, page int) (model.View, error) {
	st := s.state(chatID)

	st.mu.Lock()
	same := st.loaded && s.catalog.Clamp(page) == st.page
	query := st.query
	st.mu.Unlock()

	if same {
		return model.View{}, service.ErrSamePage
	}

	return s.Open(ctx, chatID, model.NavState{Page: page, Query: query})
}

// Search debounces query edits; onReady receives the filtered view once the
// input settles. Only the page already loaded is filtered.
func (s *BrowserService) Search(ctx context.Context, chatID int64, query string, onReady func(model.View)) {
	st := s.state(chatID)
	ctx = context.WithoutCancel(ctx)

	st.search.Call(func() {
		st.mu.Lock()
		st.query = query
		st.queryRev++
		view := s.buildView(st)
		st.mu.Unlock()

		view.Theme = s.theme(ctx, chatID)
		onReady(view)
	})
}

// SetWidth records the chat's keyboard width and re-lays the pagination strip
// once resizing settles.
func (s *BrowserService) SetWidth(ctx context.Context, chatID int64, widthPx int, onReady func(model.View)) {
	st := s.state(chatID)
	ctx = context.WithoutCancel(ctx)

	st.layout.Call(func() {
		st.mu.Lock()
		st.width = widthPx
		view := s.buildView(st)
		st.mu.Unlock()

		view.Theme = s.theme(ctx, chatID)
		onReady(view)
	})
}

// UseWidth sets the keyboard width right away, without re-rendering. It is
// used to restore a saved width.
func (s *BrowserService) UseWidth(chatID int64, widthPx int) {
	if widthPx <= 0 {
		return
	}
	st := s.state(chatID)

	st.mu.Lock()
	st.width = widthPx
	st.mu.Unlock()
}

// View returns the current state without loading anything.
func (s *BrowserService) View(ctx context.Context, chatID int64) (model.View, error) {
	st := s.state(chatID)

	st.mu.Lock()
	if !st.loaded {
		st.mu.Unlock()
		return model.View{}, service.ErrNoBrowse
	}
	view := s.buildView(st)
	st.mu.Unlock()

	view.Theme = s.theme(ctx, chatID)
	return view, nil
}

// ToggleTheme flips the chat's theme and returns the view painted with it.
// Page and search are untouched.
func (s *BrowserService) ToggleTheme(ctx context.Context, chatID int64) (model.View, error) {
	theme, err := s.themes.Toggle(ctx, chatID)
	if err != nil {
		return model.View{}, fmt.Errorf("toggle theme: %w", err)
	}

	st := s.state(chatID)
	st.mu.Lock()
	view := s.buildView(st)
	loaded := st.loaded
	st.mu.Unlock()

	view.Theme = theme
	if !loaded {
		return view, service.ErrNoBrowse
	}
	return view, nil
}

// FindItem looks id up among the items of the page the chat is on.
func (s *BrowserService) FindItem(chatID int64, id string) (model.Item, error) {
	st := s.state(chatID)

	st.mu.Lock()
	defer st.mu.Unlock()

	for _, item := range st.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return model.Item{}, service.ErrNotFound
}

// Width is the keyboard width the chat's strip is laid out for.
func (s *BrowserService) Width(chatID int64) int {
	st := s.state(chatID)

	st.mu.Lock()
	defer st.mu.Unlock()

	return st.width
}

func (s *BrowserService) theme(ctx context.Context, chatID int64) model.Theme {
	theme, err := s.themes.GetTheme(ctx, chatID)
	if err != nil {
		slog.Warn("can't get theme, using default", slog.String("op", "BrowserService.theme"), slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("err", err.Error()))
		return model.ThemeLight
	}
	return theme
}

// buildView must be called with st.mu held.
func (s *BrowserService) buildView(st *chatState) model.View {
	total := s.catalog.TotalPages()
	maxVisible := pagination.MaxVisible(st.width, s.cfg.Pagination.ButtonMinWidth, s.cfg.Pagination.MinVisible, s.cfg.Pagination.MaxVisible)

	return model.View{
		Page:       st.page,
		TotalPages: total,
		Query:      st.query,
		Items:      st.items,
		Matched:    catalog.Filter(st.items, st.query),
		NoData:     st.noData,
		Slots:      pagination.VisiblePages(st.page, total, maxVisible),
		Nav:        model.NavState{Page: st.page, Query: st.query},
	}
}

package browserService

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/pagination"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/service"
	"catalog_tgbot/internal/service/browserService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var pageItems = []model.Item{
	{ID: "A1", Title: "Foo", Author: "Ann"},
	{ID: "B2", Title: "Bar", Author: "Bob"},
	{ID: "C3", Title: "Food", Author: "Cy"},
}

type browserServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	cfg      *config.Config
	catalog  *mocks.MockCatalogService
	themes   *mocks.MockThemeService
	service  *BrowserService
}

func TestBrowserServiceSuite(t *testing.T) {
	suite.Run(t, new(browserServiceSuite))
}

func (s *browserServiceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.cfg = &config.Config{
		SearchDebounce: 20 * time.Millisecond,
		LayoutDebounce: 20 * time.Millisecond,
		Pagination: config.Pagination{
			Width:          352,
			ButtonMinWidth: 44,
			MinVisible:     5,
			MaxVisible:     7,
		},
	}
	s.catalog = mocks.NewMockCatalogService(s.mockCtrl)
	s.themes = mocks.NewMockThemeService(s.mockCtrl)
	s.service = New(s.cfg, s.catalog, s.themes)

	s.catalog.EXPECT().TotalPages().Return(20).AnyTimes()
	s.catalog.EXPECT().Clamp(gomock.Any()).DoAndReturn(func(p int) int {
		return min(max(1, p), 20)
	}).AnyTimes()
	s.themes.EXPECT().GetTheme(gomock.Any(), gomock.Any()).Return(model.ThemeLight, nil).AnyTimes()
}

func (s *browserServiceSuite) expectLoad(n int) *gomock.Call {
	return s.catalog.EXPECT().
		LoadPage(gomock.Any(), n).
		Return(model.Page{Number: n, Items: pageItems}, nil)
}

func (s *browserServiceSuite) Test_Open_Success() {
	ctx := context.Background()
	s.expectLoad(5)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 5, Query: ""})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 5, view.Page)
	assert.Equal(s.T(), 20, view.TotalPages)
	assert.Equal(s.T(), pageItems, view.Matched)
	assert.Equal(s.T(), model.NavState{Page: 5}, view.Nav)
	assert.Equal(s.T(), model.ThemeLight, view.Theme)
	assert.Equal(s.T(), pagination.VisiblePages(5, 20, 7), view.Slots)
}

func (s *browserServiceSuite) Test_Open_AdoptsClampedPage() {
	ctx := context.Background()
	s.catalog.EXPECT().LoadPage(gomock.Any(), 99).Return(model.Page{Number: 20, Items: pageItems}, nil)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 99})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 20, view.Page)
	assert.Equal(s.T(), 20, view.Nav.Page)
}

func (s *browserServiceSuite) Test_Open_WithQueryFilters() {
	ctx := context.Background()
	s.expectLoad(1)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 1, Query: "foo"})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []model.Item{pageItems[0], pageItems[2]}, view.Matched)
	assert.Len(s.T(), view.Items, 3)
	assert.Equal(s.T(), "foo", view.Nav.Query)
}

func (s *browserServiceSuite) Test_Open_MalformedPage() {
	ctx := context.Background()
	s.catalog.EXPECT().LoadPage(gomock.Any(), 2).Return(model.Page{Number: 2, Malformed: true}, nil)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 2})

	assert.Nil(s.T(), err)
	assert.True(s.T(), view.NoData)
	assert.Empty(s.T(), view.Matched)
}

func (s *browserServiceSuite) Test_Open_FailureKeepsPriorState() {
	ctx := context.Background()
	loadErr := errors.New("Internal Server Error")

	s.expectLoad(3)
	s.catalog.EXPECT().LoadPage(gomock.Any(), 4).Return(model.Page{}, loadErr)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 3, Query: "bar"})
	assert.Nil(s.T(), err)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 4, Query: "other"})

	assert.ErrorIs(s.T(), err, loadErr)
	assert.NotEmpty(s.T(), view.Error)
	assert.Equal(s.T(), 3, view.Page)
	assert.Equal(s.T(), "bar", view.Query)
	assert.Equal(s.T(), []model.Item{pageItems[1]}, view.Matched)

	current, err := s.service.View(ctx, 1)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.NavState{Page: 3, Query: "bar"}, current.Nav)
	assert.Empty(s.T(), current.Error)
}

func (s *browserServiceSuite) Test_Open_StaleLoadDiscarded() {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	s.catalog.EXPECT().LoadPage(gomock.Any(), 2).DoAndReturn(func(context.Context, int) (model.Page, error) {
		close(started)
		<-release
		return model.Page{Number: 2, Items: pageItems[:1]}, nil
	})
	s.catalog.EXPECT().LoadPage(gomock.Any(), 7).Return(model.Page{Number: 7, Items: pageItems}, nil)

	var slowErr error
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = s.service.Open(ctx, 1, model.NavState{Page: 2})
	}()

	<-started
	view, err := s.service.Open(ctx, 1, model.NavState{Page: 7})
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 7, view.Page)

	close(release)
	wg.Wait()

	assert.ErrorIs(s.T(), slowErr, service.ErrStaleLoad)

	current, err := s.service.View(ctx, 1)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 7, current.Page)
	assert.Len(s.T(), current.Items, 3)
}

func (s *browserServiceSuite) Test_Open_ChatsAreIndependent() {
	ctx := context.Background()
	s.expectLoad(2)
	s.expectLoad(9)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 2})
	assert.Nil(s.T(), err)
	_, err = s.service.Open(ctx, 2, model.NavState{Page: 9})
	assert.Nil(s.T(), err)

	first, _ := s.service.View(ctx, 1)
	second, _ := s.service.View(ctx, 2)
	assert.Equal(s.T(), 2, first.Page)
	assert.Equal(s.T(), 9, second.Page)
}

func (s *browserServiceSuite) Test_GoTo_SamePageIsNoop() {
	ctx := context.Background()
	s.expectLoad(4)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 4})
	assert.Nil(s.T(), err)

	_, err = s.service.GoTo(ctx, 1, 4)

	assert.ErrorIs(s.T(), err, service.ErrSamePage)
}

func (s *browserServiceSuite) Test_GoTo_KeepsQuery() {
	ctx := context.Background()
	s.expectLoad(1)
	s.expectLoad(2)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 1, Query: "bob"})
	assert.Nil(s.T(), err)

	view, err := s.service.GoTo(ctx, 1, 2)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.NavState{Page: 2, Query: "bob"}, view.Nav)
	assert.Equal(s.T(), []model.Item{pageItems[1]}, view.Matched)
}

func (s *browserServiceSuite) Test_Search_Debounced() {
	ctx := context.Background()
	s.expectLoad(1)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 1})
	assert.Nil(s.T(), err)

	views := make(chan model.View, 4)
	onReady := func(v model.View) { views <- v }

	s.service.Search(ctx, 1, "f", onReady)
	s.service.Search(ctx, 1, "fo", onReady)
	s.service.Search(ctx, 1, "foo", onReady)

	select {
	case view := <-views:
		assert.Equal(s.T(), "foo", view.Query)
		assert.Equal(s.T(), []model.Item{pageItems[0], pageItems[2]}, view.Matched)
		assert.Equal(s.T(), model.NavState{Page: 1, Query: "foo"}, view.Nav)
	case <-time.After(time.Second):
		s.T().Fatal("search did not fire")
	}

	select {
	case <-views:
		s.T().Fatal("burst fired more than once")
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *browserServiceSuite) Test_Search_NoResults() {
	ctx := context.Background()
	s.expectLoad(1)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 1})
	assert.Nil(s.T(), err)

	views := make(chan model.View, 1)
	s.service.Search(ctx, 1, "zzz", func(v model.View) { views <- v })

	view := <-views
	assert.Empty(s.T(), view.Matched)
	assert.Len(s.T(), view.Items, 3)
	assert.False(s.T(), view.NoData)
}

func (s *browserServiceSuite) Test_SetWidth_RelaysPagination() {
	ctx := context.Background()
	s.expectLoad(10)

	view, err := s.service.Open(ctx, 1, model.NavState{Page: 10})
	assert.Nil(s.T(), err)
	assert.Len(s.T(), view.Slots, 7)

	views := make(chan model.View, 1)
	s.service.SetWidth(ctx, 1, 220, func(v model.View) { views <- v })

	view = <-views
	assert.Equal(s.T(), pagination.VisiblePages(10, 20, 5), view.Slots)
	assert.Equal(s.T(), 220, s.service.Width(1))
}

func (s *browserServiceSuite) Test_UseWidth() {
	s.service.UseWidth(1, 0)
	assert.Equal(s.T(), 352, s.service.Width(1))

	s.service.UseWidth(1, 600)
	assert.Equal(s.T(), 600, s.service.Width(1))
}

func (s *browserServiceSuite) Test_View_NothingOpened() {
	_, err := s.service.View(context.Background(), 1)

	assert.ErrorIs(s.T(), err, service.ErrNoBrowse)
}

func (s *browserServiceSuite) Test_ToggleTheme_KeepsNavigation() {
	ctx := context.Background()
	s.expectLoad(6)
	s.themes.EXPECT().Toggle(ctx, int64(1)).Return(model.ThemeDark, nil)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 6, Query: "bar"})
	assert.Nil(s.T(), err)

	view, err := s.service.ToggleTheme(ctx, 1)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.ThemeDark, view.Theme)
	assert.Equal(s.T(), model.NavState{Page: 6, Query: "bar"}, view.Nav)
}

func (s *browserServiceSuite) Test_ToggleTheme_Error() {
	ctx := context.Background()
	toggleErr := errors.New("db down")
	s.themes.EXPECT().Toggle(ctx, int64(1)).Return(model.ThemeLight, toggleErr)

	_, err := s.service.ToggleTheme(ctx, 1)

	assert.ErrorIs(s.T(), err, toggleErr)
}

func (s *browserServiceSuite) Test_FindItem() {
	ctx := context.Background()
	s.expectLoad(1)

	_, err := s.service.Open(ctx, 1, model.NavState{Page: 1})
	assert.Nil(s.T(), err)

	item, err := s.service.FindItem(1, "B2")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), pageItems[1], item)

	_, err = s.service.FindItem(1, "nope")
	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

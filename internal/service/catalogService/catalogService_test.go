package catalogService

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/pagecache"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/service/catalogService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type catalogServiceSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	cfg       *config.Config
	parser    *mocks.MockCatalogParser
	shared    *mocks.MockSharedCache
	indicator *mocks.MockIndicator
	cache     *pagecache.Cache
	service   *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(catalogServiceSuite))
}

func (s *catalogServiceSuite) SetupSuite() {
	s.cfg = &config.Config{
		Catalog: config.Catalog{MaxProbe: 200},
	}
}

func (s *catalogServiceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.parser = mocks.NewMockCatalogParser(s.mockCtrl)
	s.shared = mocks.NewMockSharedCache(s.mockCtrl)
	s.indicator = mocks.NewMockIndicator(s.mockCtrl)
	s.cache = pagecache.New()

	s.service = New(s.cfg, s.parser, s.shared, s.cache)
}

func (s *catalogServiceSuite) Test_Detect_StopsAtFirstMissingPage() {
	ctx := context.Background()

	gomock.InOrder(
		s.indicator.EXPECT().Start(gomock.Any()),
		s.parser.EXPECT().Probe(ctx, 1).Return(true, nil),
		s.indicator.EXPECT().Tick(),
		s.parser.EXPECT().Probe(ctx, 2).Return(true, nil),
		s.indicator.EXPECT().Tick(),
		s.parser.EXPECT().Probe(ctx, 3).Return(true, nil),
		s.indicator.EXPECT().Tick(),
		s.parser.EXPECT().Probe(ctx, 4).Return(false, nil),
		s.indicator.EXPECT().Stop(),
	)

	total := s.service.Detect(ctx, s.indicator)

	assert.Equal(s.T(), 3, total)
	assert.Equal(s.T(), 3, s.service.TotalPages())
	assert.True(s.T(), s.cache.Has(3))
	assert.False(s.T(), s.cache.Has(4))
	_, resolved := s.cache.Get(1)
	assert.False(s.T(), resolved)
}

func (s *catalogServiceSuite) Test_Detect_ErrorCountsAsMissing() {
	ctx := context.Background()

	s.parser.EXPECT().Probe(ctx, 1).Return(true, nil)
	s.parser.EXPECT().Probe(ctx, 2).Return(false, errors.New("connection refused"))

	total := s.service.Detect(ctx, nil)

	assert.Equal(s.T(), 1, total)
}

func (s *catalogServiceSuite) Test_Detect_NothingFoundFloorsAtOne() {
	ctx := context.Background()

	s.parser.EXPECT().Probe(ctx, 1).Return(false, nil)

	total := s.service.Detect(ctx, nil)

	assert.Equal(s.T(), 1, total)
}

func (s *catalogServiceSuite) Test_Detect_BoundedByMaxProbe() {
	ctx := context.Background()
	s.service = New(&config.Config{Catalog: config.Catalog{MaxProbe: 2}}, s.parser, nil, nil)

	s.parser.EXPECT().Probe(ctx, 1).Return(true, nil)
	s.parser.EXPECT().Probe(ctx, 2).Return(true, nil)

	total := s.service.Detect(ctx, nil)

	assert.Equal(s.T(), 2, total)
}

func (s *catalogServiceSuite) Test_Clamp() {
	s.service.total = 3

	assert.Equal(s.T(), 1, s.service.Clamp(-5))
	assert.Equal(s.T(), 1, s.service.Clamp(0))
	assert.Equal(s.T(), 2, s.service.Clamp(2))
	assert.Equal(s.T(), 3, s.service.Clamp(3))
	assert.Equal(s.T(), 3, s.service.Clamp(99))
}

func (s *catalogServiceSuite) Test_LoadPage_ClampsAndFetches() {
	ctx := context.Background()
	s.service.total = 3
	page := model.Page{Number: 3, Items: []model.Item{{ID: "C3"}}}

	s.shared.EXPECT().GetPage(ctx, 3).Return(model.Page{}, false, nil)
	s.parser.EXPECT().FetchPage(ctx, 3).Return(page, nil)
	s.shared.EXPECT().SetPage(gomock.Any(), page).Return(nil)

	res, err := s.service.LoadPage(ctx, 10)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), page, res)
}

func (s *catalogServiceSuite) Test_LoadPage_ReusesMemoryCache() {
	ctx := context.Background()
	s.service.total = 3
	page := model.Page{Number: 2, Items: []model.Item{{ID: "A1", Title: "Foo"}}}

	s.shared.EXPECT().GetPage(ctx, 2).Return(model.Page{}, false, nil).Times(1)
	s.parser.EXPECT().FetchPage(ctx, 2).Return(page, nil).Times(1)
	s.shared.EXPECT().SetPage(gomock.Any(), page).Return(nil).Times(1)

	first, err := s.service.LoadPage(ctx, 2)
	assert.Nil(s.T(), err)

	second, err := s.service.LoadPage(ctx, 2)
	assert.Nil(s.T(), err)

	assert.Equal(s.T(), first, second)
}

func (s *catalogServiceSuite) Test_LoadPage_SharedCacheHit() {
	ctx := context.Background()
	s.service.total = 3
	page := model.Page{Number: 1, Items: []model.Item{{ID: "X"}}}

	s.shared.EXPECT().GetPage(ctx, 1).Return(page, true, nil)

	res, err := s.service.LoadPage(ctx, 1)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), page, res)
	cached, ok := s.cache.Get(1)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), page, cached)
}

func (s *catalogServiceSuite) Test_LoadPage_SharedCacheErrFallsBackToNetwork() {
	ctx := context.Background()
	s.service.total = 1
	page := model.Page{Number: 1}

	s.shared.EXPECT().GetPage(ctx, 1).Return(model.Page{}, false, errors.New("redis down"))
	s.parser.EXPECT().FetchPage(ctx, 1).Return(page, nil)
	s.shared.EXPECT().SetPage(gomock.Any(), page).Return(errors.New("redis down"))

	res, err := s.service.LoadPage(ctx, 1)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), page, res)
}

func (s *catalogServiceSuite) Test_LoadPage_FetchErr() {
	ctx := context.Background()
	s.service.total = 3
	fetchErr := errors.New("Not Found")

	s.shared.EXPECT().GetPage(ctx, 2).Return(model.Page{}, false, nil).Times(2)
	s.parser.EXPECT().FetchPage(ctx, 2).Return(model.Page{}, fetchErr).Times(2)

	_, err := s.service.LoadPage(ctx, 2)
	assert.ErrorIs(s.T(), err, fetchErr)

	_, cached := s.cache.Get(2)
	assert.False(s.T(), cached)

	// failures are not remembered, the next attempt goes to the network again
	_, err = s.service.LoadPage(ctx, 2)
	assert.ErrorIs(s.T(), err, fetchErr)
}

func (s *catalogServiceSuite) Test_LoadPage_MalformedPageIsCached() {
	ctx := context.Background()
	s.service = New(s.cfg, s.parser, nil, nil)
	s.service.total = 2
	page := model.Page{Number: 2, Malformed: true}

	s.parser.EXPECT().FetchPage(ctx, 2).Return(page, nil).Times(1)

	res, err := s.service.LoadPage(ctx, 2)
	assert.Nil(s.T(), err)
	assert.True(s.T(), res.Malformed)

	res, err = s.service.LoadPage(ctx, 2)
	assert.Nil(s.T(), err)
	assert.True(s.T(), res.Malformed)
}

func (s *catalogServiceSuite) Test_LoadPage_ConcurrentLoadsShareFetch() {
	ctx := context.Background()
	s.service = New(s.cfg, s.parser, nil, nil)
	s.service.total = 5
	page := model.Page{Number: 4, Items: []model.Item{{ID: "D4"}}}

	s.parser.EXPECT().
		FetchPage(gomock.Any(), 4).
		DoAndReturn(func(context.Context, int) (model.Page, error) {
			time.Sleep(50 * time.Millisecond)
			return page, nil
		}).
		Times(1)

	wg := sync.WaitGroup{}
	results := make([]model.Page, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.service.LoadPage(ctx, 4)
			assert.Nil(s.T(), err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(s.T(), page, res)
	}
}

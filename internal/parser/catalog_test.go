package parser

import (
	"context"
	"errors"
	"testing"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/model"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type catalogParserSuite struct {
	suite.Suite

	cfg    *config.Config
	parser *CatalogParser
}

func TestCatalogParserSuite(t *testing.T) {
	suite.Run(t, new(catalogParserSuite))
}

func (s *catalogParserSuite) SetupSuite() {
	s.cfg = &config.Config{
		Catalog: config.Catalog{
			BaseUrl:     "https://catalog.test/",
			PagePattern: "/data/data%d.json",
		},
	}
}

func (s *catalogParserSuite) SetupTest() {
	s.parser = NewCatalogParser(s.cfg)
}

func (s *catalogParserSuite) Test_PageURL() {
	assert.Equal(s.T(), "https://catalog.test/data/data7.json", s.parser.PageURL(7))
}

func (s *catalogParserSuite) Test_Probe_Exists() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data1.json").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(pageOneResponse)

	ok, err := s.parser.Probe(context.Background(), 1)

	assert.Nil(s.T(), err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogParserSuite) Test_Probe_NotFound() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data4.json").
		Reply(404)

	ok, err := s.parser.Probe(context.Background(), 4)

	assert.Nil(s.T(), err)
	assert.False(s.T(), ok)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogParserSuite) Test_Probe_TransportErr() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data2.json").
		ReplyError(errors.New("connection reset"))

	ok, err := s.parser.Probe(context.Background(), 2)

	assert.NotNil(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *catalogParserSuite) Test_FetchPage_Success() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data2.json").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`[{"id":"A1","titulo":"Foo"}]`)

	page, err := s.parser.FetchPage(context.Background(), 2)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Page{Number: 2, Items: []model.Item{{ID: "A1", Title: "Foo"}}}, page)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogParserSuite) Test_FetchPage_NotFoundErr() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data9.json").
		Reply(404)

	_, err := s.parser.FetchPage(context.Background(), 9)

	assert.Equal(s.T(), errors.New("Not Found"), err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogParserSuite) Test_FetchPage_InvalidJSON() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data3.json").
		Reply(200).
		BodyString(`[{"id":`)

	_, err := s.parser.FetchPage(context.Background(), 3)

	assert.ErrorIs(s.T(), err, ErrInvalidPayload)
}

func (s *catalogParserSuite) Test_FetchPage_NotAnArray() {
	defer gock.Off()

	gock.New("https://catalog.test").
		Get("/data/data3.json").
		Reply(200).
		BodyString(`{"items":[]}`)

	page, err := s.parser.FetchPage(context.Background(), 3)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Page{Number: 3, Malformed: true}, page)
}

func Test_DecodePage(t *testing.T) {
	page, err := DecodePage(1, []byte(pageOneResponse))

	assert.Nil(t, err)
	assert.Equal(t, model.Page{
		Number: 1,
		Items: []model.Item{
			{ID: "P-001", Title: "Invitación boda", Author: "Studio Uno", Image: "https://img.test/1.jpg", Link: "https://canva.test/1"},
			{ID: "1002", Title: "Menu", Author: "", Image: "", Link: ""},
			{},
			{ID: "P-003", Title: "true"},
		},
	}, page)
}

func Test_DecodePage_EmptyArray(t *testing.T) {
	page, err := DecodePage(5, []byte(" [] "))

	assert.Nil(t, err)
	assert.Equal(t, model.Page{Number: 5, Items: []model.Item{}}, page)
}

func Test_DecodePage_NestedFieldValues(t *testing.T) {
	page, err := DecodePage(2, []byte(`[{"id": 7, "titulo": {"es": "Menu"}, "autor": ["Ann"]}]`))

	assert.Nil(t, err)
	assert.Equal(t, []model.Item{{ID: "7", Title: `{"es": "Menu"}`, Author: `["Ann"]`}}, page.Items)
}

func Test_DecodePage_Empty(t *testing.T) {
	_, err := DecodePage(5, nil)

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

var pageOneResponse = `[
  {"id": "P-001", "titulo": "Invitación boda", "autor": "Studio Uno", "imagen": "https://img.test/1.jpg", "link": "https://canva.test/1"},
  {"id": 1002, "titulo": "Menu", "autor": null},
  42,
  {"id": "P-003", "titulo": true}
]`

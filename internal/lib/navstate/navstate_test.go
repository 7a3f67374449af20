package navstate

import (
	"testing"

	"catalog_tgbot/internal/model"

	"github.com/stretchr/testify/assert"
)

func Test_Encode(t *testing.T) {
	assert.Equal(t, "p=3&q=", Encode(model.NavState{Page: 3}))
	assert.Equal(t, "p=1&q=caf%C3%A9%20menu", Encode(model.NavState{Page: 0, Query: "café menu"}))
	assert.Equal(t, "p=2&q=a%2Bb%26c%3Dd!'()*~", Encode(model.NavState{Page: 2, Query: "a+b&c=d!'()*~"}))
}

func Test_Parse(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		expected model.NavState
	}{
		{"empty", "", model.NavState{Page: 1}},
		{"hash only", "#", model.NavState{Page: 1}},
		{"full", "#p=4&q=foo%20bar", model.NavState{Page: 4, Query: "foo bar"}},
		{"no hash", "p=7&q=x", model.NavState{Page: 7, Query: "x"}},
		{"non numeric page", "#p=abc&q=x", model.NavState{Page: 1, Query: "x"}},
		{"trailing garbage", "#p=12abc", model.NavState{Page: 12}},
		{"negative page", "#p=-3", model.NavState{Page: 1}},
		{"plus as space", "#q=a+b", model.NavState{Page: 1, Query: "a b"}},
		{"first wins", "#p=2&p=9", model.NavState{Page: 2}},
		{"unknown keys", "#x=1&p=5&y", model.NavState{Page: 5}},
		{"bad escape kept", "#q=100%", model.NavState{Page: 1, Query: "100%"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.fragment))
		})
	}
}

func Test_RoundTrip(t *testing.T) {
	states := []model.NavState{
		{Page: 1},
		{Page: 5, Query: "foo"},
		{Page: 20, Query: "Plantilla de boda & fiesta"},
		{Page: 3, Query: "100% a+b=c #tag"},
		{Page: 9, Query: "ñandú 🎉"},
	}

	for _, st := range states {
		assert.Equal(t, st, Parse("#"+Encode(st)))
		assert.Equal(t, st, Parse(Encode(st)))
	}
}

func Test_StartPayload(t *testing.T) {
	st := model.NavState{Page: 12, Query: "boda"}

	payload, ok := StartPayload(st)

	assert.True(t, ok)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, payload)
	assert.Equal(t, st, ParseStartPayload(payload))
}

func Test_StartPayload_TooLong(t *testing.T) {
	_, ok := StartPayload(model.NavState{Page: 1, Query: "a very long query that will never fit into a telegram start parameter"})

	assert.False(t, ok)
}

func Test_ParseStartPayload_PlainFragment(t *testing.T) {
	assert.Equal(t, model.NavState{Page: 2, Query: "x"}, ParseStartPayload("p=2&q=x"))
}

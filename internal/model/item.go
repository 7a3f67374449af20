package model

import (
	"bytes"
	"encoding/json"
)

// Text is a string-like catalog field. Page files are hand edited, so ids and
// titles sometimes arrive as numbers; those keep their literal JSON spelling.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Item is a single catalog entry (a template) as published in a page file.
type Item struct {
	ID     Text `json:"id"`
	Title  Text `json:"titulo"`
	Author Text `json:"autor"`
	Image  Text `json:"imagen"`
	Link   Text `json:"link"`
}

// Page is the decoded content of one page file. Malformed is set when the
// file exists but its body is not a list of items.
type Page struct {
	Number    int    `json:"number"`
	Items     []Item `json:"items"`
	Malformed bool   `json:"malformed"`
}

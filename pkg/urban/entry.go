package urban

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Entry is one definition returned by the dictionary service.
type Entry struct {
	Definition string   `json:"definition" yaml:"definition"`
	Permalink  string   `json:"permalink" yaml:"permalink"`
	ThumbsUp   int64    `json:"thumbs_up" yaml:"thumbs_up"`
	SoundURLs  []string `json:"sound_urls" yaml:"sound_urls"`
	Author     string   `json:"author" yaml:"author"`
	Word       string   `json:"word" yaml:"word"`
	DefID      int64    `json:"defid" yaml:"defid"`
	WrittenOn  string   `json:"written_on" yaml:"written_on"`
	Example    string   `json:"example" yaml:"example"`
	ThumbsDown int64    `json:"thumbs_down" yaml:"thumbs_down"`
}

// WrittenAt parses WrittenOn as an RFC 3339 timestamp.
func (e Entry) WrittenAt() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, e.WrittenOn)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse written_on %q: %w", e.WrittenOn, err)
	}
	return t, nil
}

// LookupRequest selects one page of definitions for a term. Pages are 1-based.
type LookupRequest struct {
	Term string
	Page int
}

// envelope is the wire shape of define and random responses. Pointer fields
// let the validator tell a missing key from a present zero value.
type envelope struct {
	List []wireEntry `json:"list" validate:"required,dive"`
}

type wireEntry struct {
	Definition *string  `json:"definition" validate:"required"`
	Permalink  *string  `json:"permalink" validate:"required"`
	ThumbsUp   *int64   `json:"thumbs_up" validate:"required"`
	SoundURLs  []string `json:"sound_urls" validate:"required"`
	Author     *string  `json:"author" validate:"required"`
	Word       *string  `json:"word" validate:"required"`
	DefID      *int64   `json:"defid" validate:"required"`
	WrittenOn  *string  `json:"written_on" validate:"required"`
	Example    *string  `json:"example" validate:"required"`
	ThumbsDown *int64   `json:"thumbs_down" validate:"required"`
}

func (w wireEntry) entry() Entry {
	return Entry{
		Definition: *w.Definition,
		Permalink:  *w.Permalink,
		ThumbsUp:   *w.ThumbsUp,
		SoundURLs:  w.SoundURLs,
		Author:     *w.Author,
		Word:       *w.Word,
		DefID:      *w.DefID,
		WrittenOn:  *w.WrittenOn,
		Example:    *w.Example,
		ThumbsDown: *w.ThumbsDown,
	}
}

var validate = validator.New()

// decodeEntries parses an envelope body, preserving the order of the list.
func decodeEntries(body []byte) ([]Entry, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if err := validate.Struct(env); err != nil {
		return nil, fmt.Errorf("validate envelope: %w", err)
	}

	entries := make([]Entry, 0, len(env.List))
	for _, w := range env.List {
		entries = append(entries, w.entry())
	}
	return entries, nil
}

package urban

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntries(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantWords []string
		wantErr   bool
	}{
		{name: "two entries", body: `{"list":[` + wackEntry + `,` + yeetEntry + `]}`, wantWords: []string{"wack", "yeet"}},
		{name: "empty list", body: `{"list":[]}`, wantWords: []string{}},
		{name: "extra keys ignored", body: `{"tags":["x"],"list":[` + yeetEntry + `]}`, wantWords: []string{"yeet"}},
		{name: "null list", body: `{"list":null}`, wantErr: true},
		{name: "missing list", body: `{"result_type":"no_results"}`, wantErr: true},
		{name: "truncated", body: `{"list":[`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEntries([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			words := make([]string, 0, len(got))
			for _, e := range got {
				words = append(words, e.Word)
			}
			assert.Equal(t, tt.wantWords, words)
		})
	}
}

func TestDecodeEntries_ZeroValuesArePresent(t *testing.T) {
	got, err := decodeEntries([]byte(`{"list":[` + yeetEntry + `]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].ThumbsUp)
	assert.Equal(t, int64(0), got[0].ThumbsDown)
	assert.Equal(t, "", got[0].Example)
}

func TestEntry_WrittenAt(t *testing.T) {
	got, err := wackWant.WrittenAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2003, time.May, 8, 0, 0, 0, 0, time.UTC), got.UTC())

	_, err = Entry{WrittenOn: "yesterday"}.WrittenAt()
	assert.Error(t, err)
}

func TestEscapeQueryValue(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"wack":      "wack",
		"foo bar":   "foo%20bar",
		"a&b=c":     "a%26b%3Dc",
		"1+1":       "1%2B1",
		"50%":       "50%25",
		"what?#now": "what%3F%23now",
		"a/b":       "a%2Fb",
		"-._~":      "-._~",
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeQueryValue(in), "input %q", in)
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")
	err := newError(OpRandom, KindDecode, cause)

	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrEmptyResult)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "urban random: decode: boom", err.Error())

	empty := newError(OpDefine, KindEmptyResult, nil)
	assert.Equal(t, "urban define: empty result", empty.Error())
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestStatusError(t *testing.T) {
	assert.Equal(t, "unexpected status 503", (&StatusError{StatusCode: 503}).Error())
	assert.Equal(t, "unexpected status 404 body: nope", (&StatusError{StatusCode: 404, Body: "nope"}).Error())
}

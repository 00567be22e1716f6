package nlrb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePageCount(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "no pagination",
			body:     `<html><body><ol class="search-results"></ol></body></html>`,
			expected: 1,
		},
		{
			name:     "delimited by ampersand",
			body:     `<a href="/search/cases/Services?page=1">2</a> <a href="/search/cases/Services?page=86&foo=1">last</a>`,
			expected: 86,
		},
		{
			name:     "end of body",
			body:     `<a href="?page=3">4</a> ...?page=86`,
			expected: 86,
		},
		{
			name:     "quote delimited",
			body:     `<a href="/search/cases/Acme?page=12">last »</a>`,
			expected: 12,
		},
		{
			name:     "last marker wins even when smaller",
			body:     `?page=40 ?page=7"`,
			expected: 7,
		},
		{
			name:     "fixture",
			body:     string(listPageFixture),
			expected: 3,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			count, err := ParsePageCount([]byte(test.body))
			require.NoError(t, err)
			require.Equal(t, test.expected, count)
		})
	}
}

func TestParsePageCountMalformed(t *testing.T) {
	bodies := []string{
		`<a href="?page=">broken</a>`,
		`<a href="?page=2">3</a><a href="?page=last">last</a>`,
		`?page=`,
		`?page=99999999999999999999999999`,
		`<a href="?page=0">last</a>`,
		`<a href="?page=3">4</a><a href="?page=00">last</a>`,
	}

	for _, body := range bodies {
		_, err := ParsePageCount([]byte(body))
		require.ErrorIs(t, err, ErrMalformedPaginationMarker, body)
	}
}

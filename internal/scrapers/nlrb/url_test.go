package nlrb

import (
	"testing"
	"time"

	"nlrb-data/internal/components/chrono"

	"github.com/stretchr/testify/require"
)

func TestListURL(t *testing.T) {
	january := &DateRange{
		Start: chrono.Date(2010, time.January, 1),
		End:   chrono.Date(2010, time.February, 1),
	}

	testCases := []struct {
		query    ListQuery
		expected string
	}{
		{
			query:    ListQuery{},
			expected: "https://www.nlrb.gov/search/cases/?",
		},
		{
			query:    ListQuery{Organization: "Acme"},
			expected: "https://www.nlrb.gov/search/cases/Acme?",
		},
		{
			query:    ListQuery{Organization: "Acme", Page: 2},
			expected: "https://www.nlrb.gov/search/cases/Acme?&page=2",
		},
		{
			query:    ListQuery{Dates: january},
			expected: "https://www.nlrb.gov/search/cases/?&f[0]=date%3A01/01/2010%20to%2002/01/2010",
		},
		{
			query:    ListQuery{Organization: "Acme", Dates: january},
			expected: "https://www.nlrb.gov/search/cases/Acme?&f[0]=date%3A01/01/2010%20to%2002/01/2010",
		},
		{
			query:    ListQuery{Organization: "Acme", Dates: january, Page: 5},
			expected: "https://www.nlrb.gov/search/cases/Acme?&f[0]=date%3A01/01/2010%20to%2002/01/2010&page=5",
		},
		{
			query:    ListQuery{Organization: "Kaiser Permanente", Page: 0},
			expected: "https://www.nlrb.gov/search/cases/Kaiser%20Permanente?",
		},
		{
			query:    ListQuery{Organization: "AT&T"},
			expected: "https://www.nlrb.gov/search/cases/AT%26T?",
		},
		{
			query:    ListQuery{Organization: "Johnson & Johnson"},
			expected: "https://www.nlrb.gov/search/cases/Johnson%20%26%20Johnson?",
		},
		{
			query:    ListQuery{Organization: "A+B"},
			expected: "https://www.nlrb.gov/search/cases/A%2BB?",
		},
		{
			query:    ListQuery{Organization: "Smith, Inc."},
			expected: "https://www.nlrb.gov/search/cases/Smith%2C%20Inc.?",
		},
		{
			query:    ListQuery{Organization: "Local 1/2"},
			expected: "https://www.nlrb.gov/search/cases/Local%201/2?",
		},
		{
			query:    ListQuery{Organization: "Café=$:@"},
			expected: "https://www.nlrb.gov/search/cases/Caf%C3%A9%3D%24%3A%40?",
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ListURL(test.query))
		// same input, same bytes
		require.Equal(t, ListURL(test.query), ListURL(test.query))
	}
}

func TestCaseURL(t *testing.T) {
	require.Equal(t, "https://www.nlrb.gov/case/01-CA-123456", CaseURL("01-CA-123456"))
}

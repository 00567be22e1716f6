package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	// html > body > first element
	body := doc.FirstChild.LastChild
	return ChildElements(body)[0]
}

func TestLines(t *testing.T) {
	testCases := []struct {
		fragment string
		expected []string
	}{
		{
			fragment: `<div>Charged Party / Respondent<br>Employer<br>
				ACME Markets</div>`,
			expected: []string{"Charged Party / Respondent", "Employer", "ACME Markets"},
		},
		{
			fragment: `<div><div>Charging Party</div><div>Union</div><div>Local 1</div><div>Smith &amp; Jones LLP</div></div>`,
			expected: []string{"Charging Party", "Union", "Local 1", "Smith & Jones LLP"},
		},
		{
			fragment: `<div>  <span>only</span> one line </div>`,
			expected: []string{"only one line"},
		},
		{
			fragment: `<div>75 Valley
				Stream Pkwy<br>Malvern, PA 19355</div>`,
			expected: []string{"75 Valley Stream Pkwy", "Malvern, PA 19355"},
		},
		{
			fragment: `<div> </div>`,
			expected: nil,
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Lines(parseFragment(t, test.fragment)))
	}
}

func TestSiblingsAndText(t *testing.T) {
	node := parseFragment(t, `<p><b class="city">City:</b> <span>Boston</span> tail</p>`)
	label := ChildElements(node)[0]
	require.Equal(t, "City:", GetText(label))

	value := NextElementSibling(label)
	require.NotNil(t, value)
	require.Equal(t, "Boston", GetText(value))
	require.Nil(t, NextElementSibling(value))
}

package nlrb

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrMalformedPaginationMarker = errors.New("malformed pagination marker")

// the digit run is captured with * (not +) so that an empty run can be reported
// instead of silently matching an earlier marker
var pageMarkerRegex = regexp.MustCompile(`\?page=(\d*)`)

// ParsePageCount reads the page count out of the pagination widget.
//
// The count is the number following the last "?page=" in the body, which is assumed
// to be the link to the final page. A body without any marker has exactly 1 page,
// a marker of 0 is rejected since the count is always positive.
func ParsePageCount(body []byte) (int, error) {
	matches := pageMarkerRegex.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return 1, nil
	}

	digits := string(matches[len(matches)-1][1])
	if digits == "" {
		return 0, fmt.Errorf("%w: no digits after last ?page=", ErrMalformedPaginationMarker)
	}
	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedPaginationMarker, err)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: page count %d", ErrMalformedPaginationMarker, count)
	}
	return count, nil
}

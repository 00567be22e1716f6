package chrono

import (
	"time"
)

// SiteDateLayout is how the case search renders calendar dates (MM/DD/YYYY).
const SiteDateLayout = "01/02/2006"

// FormatSiteDate renders a date in the search filter's layout.
func FormatSiteDate(t time.Time) string {
	return t.Format(SiteDateLayout)
}

// ParseSiteDate parses a MM/DD/YYYY date as a calendar date in UTC.
func ParseSiteDate(text string) (time.Time, error) {
	return time.ParseInLocation(SiteDateLayout, text, time.UTC)
}

// Date is a shorthand for a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

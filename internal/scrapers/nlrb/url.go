package nlrb

import (
	"fmt"
	"strings"

	"nlrb-data/internal/components/chrono"
)

const (
	BaseHost = "https://www.nlrb.gov"
	// the trailing slash is part of every list url, even without an organization
	searchPath = "/search/cases/"
	casePath   = "/case/"
)

// ListURL builds the case search url. The output is compared character for character
// by the site so parameters are never reordered: filter first, then page.
func ListURL(q ListQuery) string {
	var b strings.Builder
	b.WriteString(BaseHost)
	b.WriteString(searchPath)

	if q.Organization != "" {
		b.WriteString(escapeOrganization(q.Organization))
	}

	b.WriteString("?")

	if q.Dates != nil {
		// only one filter is ever sent so the index is always 0
		fmt.Fprintf(
			&b,
			"&f[0]=date%%3A%s%%20to%%20%s",
			chrono.FormatSiteDate(q.Dates.Start),
			chrono.FormatSiteDate(q.Dates.End),
		)
	}

	if q.Page != 0 {
		fmt.Fprintf(&b, "&page=%d", q.Page)
	}

	return b.String()
}

// CaseURL is the detail page of a single case.
func CaseURL(caseId string) string {
	return BaseHost + casePath + caseId
}

const upperhex = "0123456789ABCDEF"

// escapeOrganization percent-encodes every byte outside of A-Z a-z 0-9 _ . - ~ /
// with uppercase hex. The site's own links keep "/" as is and encode "&" and "+",
// which is neither url.PathEscape nor url.QueryEscape.
func escapeOrganization(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUnreservedOrSlash(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreservedOrSlash(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}

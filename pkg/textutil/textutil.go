package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// Clean collapses runs of whitespace (including &nbsp;) into a single space and trims
// the result.
func Clean(text string) string {
	text = removeNonPrintable(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// LabelKey turns a rendered label like "Region Assigned:" into a record key like
// "region_assigned".
func LabelKey(label string) string {
	label = strings.ReplaceAll(label, ":", "")
	label = Clean(label)
	label = strings.ToLower(label)
	return strings.ReplaceAll(label, " ", "_")
}

// AfterFirst returns the trimmed text after the first occurrence of sep, or the whole
// trimmed text if sep does not occur.
func AfterFirst(text, sep string) string {
	_, after, found := strings.Cut(text, sep)
	if !found {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(after)
}

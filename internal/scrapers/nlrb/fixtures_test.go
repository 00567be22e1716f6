package nlrb

import (
	_ "embed"
)

//go:embed testdata/list_page.html
var listPageFixture []byte

//go:embed testdata/list_page_empty.html
var listPageEmptyFixture []byte

//go:embed testdata/case_detail.html
var caseDetailFixture []byte

//go:embed testdata/case_detail_partial.html
var caseDetailPartialFixture []byte

func ptr(s string) *string {
	return &s
}

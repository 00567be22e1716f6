package nlrb

import (
	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const report_case_detail_allegations = "case-detail.allegations"

func (p parser) allegations(doc *goquery.Document) []string {
	allegations := []string{}

	entries := doc.Find(allegationsSelector)
	if entries.Length() == 0 {
		p.tel.ReportDebug(report_case_detail_allegations, "section not found")
		return allegations
	}

	entries.Each(func(_ int, li *goquery.Selection) {
		text := textutil.Clean(li.Text())
		if text == "" {
			return
		}
		allegations = append(allegations, text)
	})
	return allegations
}

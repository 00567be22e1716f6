package nlrb

import (
	"nlrb-data/pkg/htmlutil"
	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const report_case_detail_elections = "case-detail.elections"

// elections reads each row group of the elections block. A field group is a label and
// a value, groups with a single child are section headers and are skipped.
func (p parser) elections(doc *goquery.Document) []Election {
	elections := []Election{}

	block := doc.Find(electionsSectionSelector).First()
	if block.Length() == 0 {
		p.tel.ReportDebug(report_case_detail_elections, "section not found")
		return elections
	}

	for _, rowGroup := range htmlutil.ChildElements(block.Get(0)) {
		election := Election{}
		for _, fieldGroup := range htmlutil.ChildElements(rowGroup) {
			children := htmlutil.ChildElements(fieldGroup)
			if len(children) != 2 {
				continue
			}
			key := textutil.LabelKey(htmlutil.GetText(children[0]))
			if key == "" {
				continue
			}
			election[key] = textutil.Clean(htmlutil.GetText(children[1]))
		}
		if len(election) == 0 {
			continue
		}
		elections = append(elections, election)
	}

	return elections
}

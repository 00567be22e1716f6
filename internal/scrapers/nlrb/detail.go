package nlrb

import (
	"bytes"
	"fmt"

	"nlrb-data/pkg/htmlutil"
	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_case_detail_parse  = "case-detail.parse"
	report_case_detail_scalar = "case-detail.scalar"
)

// the class names flagging each label element on a case page
const (
	classCaseNumber  = "case-number"
	classCity        = "city"
	classDateFiled   = "date-filed"
	classRegion      = "region"
	classStatus      = "status"
	classCloseReason = "close-reason"
)

// ParseCaseDetail extracts a case page. Every scalar and every section is looked up
// independently, a missing one is left nil or empty without affecting the others.
func ParseCaseDetail(body []byte) (CaseDetail, error) {
	return defaultParser.caseDetail(body)
}

func (p parser) caseDetail(body []byte) (CaseDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		p.tel.ReportBroken(report_case_detail_parse, fmt.Errorf("parse: %w", err))
		return CaseDetail{}, err
	}

	return CaseDetail{
		CaseNumber:  p.scalar(doc, classCaseNumber),
		City:        p.scalar(doc, classCity),
		DateFiled:   p.scalar(doc, classDateFiled),
		Region:      p.scalar(doc, classRegion),
		Status:      p.scalar(doc, classStatus),
		CloseReason: p.scalar(doc, classCloseReason),

		Docket:       p.docket(doc),
		Allegations:  p.allegations(doc),
		Participants: p.participants(doc),
		Elections:    p.elections(doc),
	}, nil
}

// scalar returns the text of the element right after the label flagged with `class`.
// Labels are bold elements, the same class names are used by layout containers.
func (p parser) scalar(doc *goquery.Document, class string) *string {
	label := doc.Find(fmt.Sprintf("b.%s, strong.%s", class, class)).First()
	if label.Length() == 0 {
		p.tel.ReportDebug(report_case_detail_scalar, "label not found", class)
		return nil
	}
	value := htmlutil.NextElementSibling(label.Get(0))
	if value == nil {
		p.tel.ReportDebug(report_case_detail_scalar, "label has no value", class)
		return nil
	}
	text := textutil.Clean(htmlutil.GetText(value))
	return &text
}

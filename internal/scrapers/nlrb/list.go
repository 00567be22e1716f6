package nlrb

import (
	"bytes"
	"fmt"
	"strings"

	"nlrb-data/internal/components/chrono"
	"nlrb-data/internal/components/telemetry"
	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_list_page_parse  = "list-page.parse"
	report_list_page_title  = "list-page.title"
	report_list_page_status = "list-page.status"
)

// parser holds the telemetry used while extracting, it carries no other state so
// every parse is a pure function of the document.
type parser struct {
	tel telemetry.API
}

var defaultParser = parser{
	tel: telemetry.NewScopedAPI("nlrb_parser", telemetry.NewSlogAPI(nil)),
}

// ParseListPage extracts every search result of one list page, in document order.
// A page without results yields an empty slice.
func ParseListPage(body []byte) ([]CaseSummary, error) {
	return defaultParser.listPage(body)
}

func (p parser) listPage(body []byte) ([]CaseSummary, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		p.tel.ReportBroken(report_list_page_parse, fmt.Errorf("parse: %w", err))
		return nil, err
	}

	cases := []CaseSummary{}
	doc.Find("li[class*='search-result']").Each(func(_ int, li *goquery.Selection) {
		cases = append(cases, p.listItem(li))
	})
	return cases, nil
}

func (p parser) listItem(li *goquery.Selection) CaseSummary {
	summary := CaseSummary{Fields: map[string]string{}}

	title, url, ok := titleAndUrl(li)
	if ok {
		summary.Title = &title
		summary.Url = &url
	} else {
		p.tel.ReportWarning(report_list_page_title, "search result without a title link")
	}

	li.Find("span[class*='label']").Each(func(_ int, label *goquery.Selection) {
		key := textutil.LabelKey(label.Text())
		if key == "" {
			return
		}
		summary.Fields[key] = textutil.AfterFirst(textutil.Clean(label.Parent().Text()), ":")
	})

	if status, ok := summary.Fields[KeyStatus]; ok {
		p.splitStatus(&summary, status)
	}
	if region, ok := summary.Fields[KeyRegion]; ok {
		number, city, _ := strings.Cut(region, ",")
		summary.Fields[KeyRegionNumber] = strings.TrimSpace(number)
		summary.Fields[KeyRegionCity] = strings.TrimSpace(city)
	}

	return summary
}

// titleAndUrl reads the last .title element and the last link inside of it.
func titleAndUrl(li *goquery.Selection) (string, string, bool) {
	title := li.Find(".title").Last()
	if title.Length() == 0 {
		return "", "", false
	}
	href, exists := title.Find("a").Last().Attr("href")
	if !exists {
		return "", "", false
	}
	return textutil.Clean(title.Text()), href, true
}

// splitStatus splits "CLOSED on 01/01/2010" on the last " on ".
func (p parser) splitStatus(summary *CaseSummary, status string) {
	idx := strings.LastIndex(status, " on ")
	if idx < 0 {
		summary.Fields[KeyStatusType] = status
		return
	}

	statusType := strings.TrimSpace(status[:idx])
	statusDate := strings.TrimSpace(status[idx+len(" on "):])
	summary.Fields[KeyStatusType] = statusType
	summary.Fields[KeyStatusDate] = statusDate

	date, err := chrono.ParseSiteDate(statusDate)
	if err != nil {
		p.tel.ReportWarning(report_list_page_status, fmt.Errorf("parse status date: %w", err), status)
		return
	}
	summary.StatusDate = &date
}

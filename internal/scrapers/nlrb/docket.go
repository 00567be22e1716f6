package nlrb

import (
	"errors"

	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

const report_case_detail_docket = "case-detail.docket"

var ErrNoTableRows = errors.New("could not find table rows")

func (p parser) docket(doc *goquery.Document) Table {
	section := doc.Find(docketSectionSelector).First()
	if section.Length() == 0 {
		p.tel.ReportDebug(report_case_detail_docket, "section not found")
		return Table{}
	}

	table, err := tableToRows(section.Get(0))
	if err != nil {
		p.tel.ReportWarning(report_case_detail_docket, err)
		return Table{}
	}
	return table
}

// tableToRows converts a <table> node into its header and data rows.
func tableToRows(tableNode *html.Node) (Table, error) {
	var columns []string
	for _, th := range htmlquery.Find(tableNode, tableHeaderCellRelativeToTableXPath) {
		columns = append(columns, textutil.Clean(htmlquery.InnerText(th)))
	}

	var rows [][]string
	for _, tr := range htmlquery.Find(tableNode, tableRowRelativeToTableXPath) {
		cells := htmlquery.Find(tr, tableCellRelativeToTableRowXPath)
		row := make([]string, len(cells))
		for i, cell := range cells {
			row[i] = textutil.Clean(htmlquery.InnerText(cell))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return Table{}, ErrNoTableRows
	}
	return Table{Columns: columns, Rows: rows}, nil
}

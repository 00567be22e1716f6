package nlrb

import (
	"strings"

	"nlrb-data/pkg/htmlutil"
	"nlrb-data/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const report_case_detail_participants = "case-detail.participants"

const (
	columnParticipant = "participant"
	columnAddress     = "address"
	columnPhone       = "phone"
)

func (p parser) participants(doc *goquery.Document) []Party {
	parties := []Party{}

	table := doc.Find(participantsSectionSelector).First()
	if table.Length() == 0 {
		p.tel.ReportDebug(report_case_detail_participants, "section not found")
		return parties
	}

	// rows of this table only, a table nested in a cell keeps its own rows
	rows := table.ChildrenFiltered("thead, tbody, tfoot").ChildrenFiltered("tr")

	var columns []string
	rows.First().ChildrenFiltered("th").Each(func(_ int, th *goquery.Selection) {
		columns = append(columns, strings.ToLower(textutil.Clean(th.Text())))
	})
	if len(columns) == 0 {
		p.tel.ReportWarning(report_case_detail_participants, "table has no header row")
		return parties
	}

	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}

		var party Party
		cells.Each(func(i int, td *goquery.Selection) {
			if i >= len(columns) {
				return
			}
			lines := htmlutil.Lines(td.Get(0))
			switch columns[i] {
			case columnParticipant:
				setParticipantLines(&party, lines)
			case columnAddress:
				party.Address = strings.Join(lines, " ")
			case columnPhone:
				party.Phone = strings.Join(lines, " ")
			}
		})

		if party == (Party{}) {
			return
		}
		parties = append(parties, party)
	})

	return parties
}

// setParticipantLines splits the lines of a "Participant" cell by how many there are:
//
//	3 lines: role, type, name
//	4 lines: role, type, name, firm
//	otherwise (2 or 5+): role, then the rest joined as the name
//
// a cell with a single line is not enough to tell role from name and is skipped.
func setParticipantLines(party *Party, lines []string) {
	switch {
	case len(lines) == 3:
		party.Role, party.Type, party.Name = lines[0], lines[1], lines[2]
	case len(lines) == 4:
		party.Role, party.Type, party.Name, party.Firm = lines[0], lines[1], lines[2], lines[3]
	case len(lines) > 1:
		party.Role = lines[0]
		party.Name = strings.Join(lines[1:], " ")
	}
}

package nlrb

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// DateRange is an inclusive range of calendar dates. Start <= End is the caller's job.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ListQuery is the input of ListURL, every field is optional.
type ListQuery struct {
	Dates        *DateRange
	Organization string
	// Page is the 0-based page index, 0 is rendered as no page parameter.
	Page int
}

const (
	KeyTitle        = "title"
	KeyUrl          = "url"
	KeyStatus       = "status"
	KeyStatusType   = "status_type"
	KeyStatusDate   = "status_date"
	KeyRegion       = "region_assigned"
	KeyRegionNumber = "region_number"
	KeyRegionCity   = "region_city"
)

// CaseSummary is one search result. The set of fields depends on which labels the
// result actually rendered, only Title and Url are always present (and may be nil).
type CaseSummary struct {
	Title *string
	Url   *string
	// Fields holds every label found in the result keyed by LabelKey, plus the keys
	// derived from "status" and "region_assigned".
	Fields map[string]string
	// StatusDate is the parsed form of Fields["status_date"].
	StatusDate *time.Time
}

// Get looks up a field, "title" and "url" included.
func (c CaseSummary) Get(key string) (string, bool) {
	switch key {
	case KeyTitle:
		if c.Title == nil {
			return "", false
		}
		return *c.Title, true
	case KeyUrl:
		if c.Url == nil {
			return "", false
		}
		return *c.Url, true
	}
	value, ok := c.Fields[key]
	return value, ok
}

// Keys returns the sorted label keys, not including title and url.
func (c CaseSummary) Keys() []string {
	keys := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Map flattens the summary into a single mapping, a nil title or url becomes "".
func (c CaseSummary) Map() map[string]string {
	out := make(map[string]string, len(c.Fields)+2)
	for k, v := range c.Fields {
		out[k] = v
	}
	out[KeyTitle], _ = c.Get(KeyTitle)
	out[KeyUrl], _ = c.Get(KeyUrl)
	return out
}

// MarshalJSON flattens the summary like Map, except that a missing title or url
// is kept as null.
func (c CaseSummary) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+2)
	for k, v := range c.Fields {
		out[k] = v
	}
	out[KeyTitle] = c.Title
	out[KeyUrl] = c.Url
	return json.Marshal(out)
}

// Table is a row-oriented rendering of an html table.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) columnName(i int) string {
	if i < len(t.Columns) && t.Columns[i] != "" {
		return t.Columns[i]
	}
	return fmt.Sprintf("column_%d", i)
}

// Records returns each row as a mapping from column name to cell text. Cells without
// a header are keyed as column_<index>.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		record := make(map[string]string, len(row))
		for j, cell := range row {
			record[t.columnName(j)] = cell
		}
		out[i] = record
	}
	return out
}

// Party is one row of the participants table, an empty string means the source did
// not render that field.
type Party struct {
	Role    string
	Type    string
	Name    string
	Firm    string
	Address string
	Phone   string
}

// Election is one election row group, label -> value.
type Election map[string]string

// CaseDetail is everything extracted from a single case page.
type CaseDetail struct {
	CaseNumber  *string
	City        *string
	DateFiled   *string
	Region      *string
	Status      *string
	CloseReason *string

	Docket       Table
	Allegations  []string
	Participants []Party
	Elections    []Election
}

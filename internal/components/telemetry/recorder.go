package telemetry

import (
	"strings"
	"sync"
)

// Report is a single call made against a RecorderAPI.
type Report struct {
	Level  string
	Id     string
	Params []any
	Count  int64
}

// RecorderAPI is an API that keeps every report in memory, it is meant for asserting
// on telemetry in tests.
type RecorderAPI struct {
	mutex   sync.Mutex
	reports []Report
}

func NewRecorderAPI() *RecorderAPI {
	return &RecorderAPI{}
}

func (r *RecorderAPI) push(report Report) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report)
}

func (r *RecorderAPI) ReportBroken(id string, params ...any) {
	r.push(Report{Level: "broken", Id: id, Params: params})
}

func (r *RecorderAPI) ReportWarning(id string, params ...any) {
	r.push(Report{Level: "warning", Id: id, Params: params})
}

func (r *RecorderAPI) ReportDebug(msg string, params ...any) {
	r.push(Report{Level: "debug", Id: msg, Params: params})
}

func (r *RecorderAPI) ReportCount(id string, count int64) {
	r.push(Report{Level: "count", Id: id, Count: count})
}

// Reports returns a copy of all the reports of the given level, an empty level
// returns everything.
func (r *RecorderAPI) Reports(level string) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []Report
	for _, report := range r.reports {
		if level != "" && report.Level != level {
			continue
		}
		out = append(out, report)
	}
	return out
}

// Has reports whether a report of the given level exists with an id that ends with `suffix`.
// Ids are matched by suffix so that namespaces added by ScopedAPI do not matter.
func (r *RecorderAPI) Has(level, suffix string) bool {
	for _, report := range r.Reports(level) {
		if strings.HasSuffix(report.Id, suffix) {
			return true
		}
	}
	return false
}

// LastCount returns the latest count reported under an id ending with `suffix`.
func (r *RecorderAPI) LastCount(suffix string) (int64, bool) {
	reports := r.Reports("count")
	for i := len(reports) - 1; i >= 0; i-- {
		if strings.HasSuffix(reports[i].Id, suffix) {
			return reports[i].Count, true
		}
	}
	return 0, false
}

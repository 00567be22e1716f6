package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"nlrb-data/internal/components/chrono"
	"nlrb-data/internal/scrapers/nlrb"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printJson(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// parseDates reads a --from/--to pair, both or neither must be given.
func parseDates(from, to string) (*nlrb.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}

	start, err := chrono.ParseSiteDate(from)
	if err != nil {
		return nil, fmt.Errorf("parse --from: %w", err)
	}
	end, err := chrono.ParseSiteDate(to)
	if err != nil {
		return nil, fmt.Errorf("parse --to: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("--to (%s) is before --from (%s)", to, from)
	}
	return &nlrb.DateRange{Start: start, End: end}, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

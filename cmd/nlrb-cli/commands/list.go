package commands

import (
	"log/slog"
	"slices"
	"time"

	"nlrb-data/internal/scrapers/nlrb"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listFlags struct {
	from         string
	to           string
	organization string
	json         bool
}

func init() {
	listCmd.Flags().StringVar(&listFlags.from, "from", "", "Start of the filing date range (MM/DD/YYYY).")
	listCmd.Flags().StringVar(&listFlags.to, "to", "", "End of the filing date range (MM/DD/YYYY).")
	listCmd.Flags().StringVar(&listFlags.organization, "org", "", "Organization name to search for.")
	listCmd.Flags().BoolVar(&listFlags.json, "json", false, "Print the results as json instead of a table.")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [--from MM/DD/YYYY --to MM/DD/YYYY] [--org <name>] [--json]",
	Short: "Fetches every page of a case search and prints the results.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dates, err := parseDates(listFlags.from, listFlags.to)
		if err != nil {
			return err
		}

		client, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		t1 := time.Now()
		cases, err := client.FetchCaseList(cmd.Context(), dates, listFlags.organization)
		if err != nil {
			return err
		}
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds(), "cases", len(cases))

		if listFlags.json {
			return printJson(cases)
		}
		renderCaseList(cases)
		return nil
	},
}

// renderCaseList prints one row per case, the columns are every label seen across
// all the cases.
func renderCaseList(cases []nlrb.CaseSummary) {
	var keys []string
	for _, c := range cases {
		for _, key := range c.Keys() {
			if !slices.Contains(keys, key) {
				keys = append(keys, key)
			}
		}
	}
	slices.Sort(keys)
	columns := append([]string{nlrb.KeyTitle, nlrb.KeyUrl}, keys...)

	t := newTable()
	header := table.Row{}
	for _, column := range columns {
		header = append(header, column)
	}
	t.AppendHeader(header)

	for _, c := range cases {
		record := c.Map()
		row := make(table.Row, len(columns))
		for i, column := range columns {
			row[i] = record[column]
		}
		t.AppendRow(row)
	}
	t.Render()
}

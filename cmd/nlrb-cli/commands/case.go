package commands

import (
	"fmt"
	"slices"

	"nlrb-data/internal/scrapers/nlrb"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var caseJson bool

func init() {
	caseCmd.Flags().BoolVar(&caseJson, "json", false, "Print the case as json instead of tables.")
	rootCmd.AddCommand(caseCmd)
}

var caseCmd = &cobra.Command{
	Use:   "case <case number> [--json]",
	Short: "Fetches and prints the detail page of a single case.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		detail, err := client.FetchCaseDetail(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if caseJson {
			return printJson(detail)
		}
		renderCaseDetail(detail)
		return nil
	},
}

func renderCaseDetail(detail nlrb.CaseDetail) {
	info := newTable()
	info.SetTitle("Case")
	info.AppendRows([]table.Row{
		{"Case Number", deref(detail.CaseNumber)},
		{"City", deref(detail.City)},
		{"Date Filed", deref(detail.DateFiled)},
		{"Region", deref(detail.Region)},
		{"Status", deref(detail.Status)},
		{"Close Reason", deref(detail.CloseReason)},
	})
	info.Render()

	if detail.Docket.Len() > 0 {
		docket := newTable()
		docket.SetTitle("Docket")
		header := table.Row{}
		for _, column := range detail.Docket.Columns {
			header = append(header, column)
		}
		docket.AppendHeader(header)
		for _, row := range detail.Docket.Rows {
			out := make(table.Row, len(row))
			for i, cell := range row {
				out[i] = cell
			}
			docket.AppendRow(out)
		}
		docket.Render()
	}

	if len(detail.Allegations) > 0 {
		allegations := newTable()
		allegations.SetTitle("Allegations")
		for _, allegation := range detail.Allegations {
			allegations.AppendRow(table.Row{allegation})
		}
		allegations.Render()
	}

	if len(detail.Participants) > 0 {
		participants := newTable()
		participants.SetTitle("Participants")
		participants.AppendHeader(table.Row{"Role", "Type", "Name", "Firm", "Address", "Phone"})
		for _, p := range detail.Participants {
			participants.AppendRow(table.Row{p.Role, p.Type, p.Name, p.Firm, p.Address, p.Phone})
		}
		participants.Render()
	}

	for i, election := range detail.Elections {
		keys := make([]string, 0, len(election))
		for key := range election {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		out := newTable()
		out.SetTitle(fmt.Sprintf("Election %d", i+1))
		for _, key := range keys {
			out.AppendRow(table.Row{key, election[key]})
		}
		out.Render()
	}
}

package commands

import (
	"fmt"

	"nlrb-data/internal/scrapers/nlrb"

	"github.com/spf13/cobra"
)

var urlFlags struct {
	from         string
	to           string
	organization string
	page         int
	caseId       string
}

func init() {
	urlCmd.Flags().StringVar(&urlFlags.from, "from", "", "Start of the filing date range (MM/DD/YYYY).")
	urlCmd.Flags().StringVar(&urlFlags.to, "to", "", "End of the filing date range (MM/DD/YYYY).")
	urlCmd.Flags().StringVar(&urlFlags.organization, "org", "", "Organization name to search for.")
	urlCmd.Flags().IntVar(&urlFlags.page, "page", 0, "0-based page index.")
	urlCmd.Flags().StringVar(&urlFlags.caseId, "case", "", "Print the url of a case page instead.")
	rootCmd.AddCommand(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url [--from MM/DD/YYYY --to MM/DD/YYYY] [--org <name>] [--page <n>] | url --case <case number>",
	Short: "Prints the url that would be requested, without requesting it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if urlFlags.caseId != "" {
			fmt.Println(nlrb.CaseURL(urlFlags.caseId))
			return nil
		}
		if urlFlags.page < 0 {
			return fmt.Errorf("--page must not be negative")
		}

		dates, err := parseDates(urlFlags.from, urlFlags.to)
		if err != nil {
			return err
		}
		fmt.Println(nlrb.ListURL(nlrb.ListQuery{
			Dates:        dates,
			Organization: urlFlags.organization,
			Page:         urlFlags.page,
		}))
		return nil
	},
}

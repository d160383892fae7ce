package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/search"
	"github.com/agentstation/datatrust/pkg/views"
)

var searchFlags struct {
	facet string
}

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the approved dataset set",
	Long: `Search matches the query against the faceted suggestion index and
against every row's searchable fields. With --facet the query must
match a value of that facet exactly, case-insensitively.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFlags.facet, "facet", "", "restrict to one facet (dataset, domain, subdomain, owner, office, contact)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	query := args[0]
	rows := s.ledger.DeriveList()

	filter := views.Filter{Query: query}
	if searchFlags.facet != "" {
		facet := search.Facet(searchFlags.facet)
		if !facet.Valid() {
			return fmt.Errorf("unknown facet %q", searchFlags.facet)
		}
		filter.Facet = &search.Entry{Facet: facet, Value: query, SearchValue: datasets.NormalizeText(query)}
	}

	matched := filter.Apply(rows)
	if s.cfg.Output == "json" {
		return printJSON(matched)
	}

	suggestions := search.Suggest(search.BuildIndex(rows), query)
	if len(suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, entry := range suggestions {
			fmt.Printf("  [%s] %s\n", entry.Facet.ShortLabel(), entry.Value)
		}
		fmt.Println()
	}

	if len(matched) == 0 {
		fmt.Println("No matching datasets")
		return nil
	}
	fmt.Printf("%d matching dataset(s):\n", len(matched))
	for _, row := range matched {
		fmt.Printf("  %s (%s / %s)\n", row.Name, row.Detail.Domain, row.Detail.Subdomain)
	}
	return nil
}

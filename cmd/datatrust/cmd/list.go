package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/views"
)

var listFlags struct {
	status string
	office string
	query  string
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current approved dataset records",
	Long: `List displays the approved dataset set derived from the ingested
baselines and the change history: for each dataset, the latest approved
change version replaces the baseline. Status, office, and free-text
filters are ANDed.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlags.status, "status", "", "filter by status (on-track, at-risk, blocked)")
	listCmd.Flags().StringVar(&listFlags.office, "office", "", "filter by owning office, case-insensitive")
	listCmd.Flags().StringVar(&listFlags.query, "query", "", "free-text filter")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	filter := views.Filter{
		Status: datasets.Status(listFlags.status),
		Office: listFlags.office,
		Query:  listFlags.query,
	}
	if listFlags.status != "" && !filter.Status.Valid() {
		return fmt.Errorf("unknown status %q", listFlags.status)
	}

	rows := filter.Apply(s.ledger.DeriveList())
	if s.cfg.Output == "json" {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No datasets match the current filters")
		return nil
	}

	tally := views.Summarize(rows)
	fmt.Printf("%d dataset(s): %d on track, %d at risk, %d blocked\n\n",
		tally.Total, tally.OnTrack, tally.AtRisk, tally.Blocked)
	for _, row := range rows {
		fmt.Printf("• %s [%s] - %s\n", row.Name, datasets.StatusLabels[row.Status], row.Office)
		if row.Overview != "" {
			fmt.Printf("  %s\n", row.Overview)
		}
		fmt.Printf("  Owner: %s (%s), deadline %s\n\n", row.Owner, row.OwnerRole, row.Deadline)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/errors"
)

var showFlags struct {
	version int
}

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <dataset>",
	Short: "Show one dataset record and its change history",
	Long: `Show prints the full record for a dataset. With --version 0 (the
default) the current approved row is shown; --version k shows the k-th
recorded change version.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showFlags.version, "version", 0, "version index to display (0 = current)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	name := args[0]

	derived := s.ledger.Derive()
	current, ok := derived[name]
	if !ok && showFlags.version == 0 && len(s.ledger.History(name)) == 0 {
		return errors.NewNotFoundError("dataset", name)
	}

	var row datasets.Dataset
	if showFlags.version == 0 && ok {
		row = current
	} else {
		row = s.ledger.RowForVersion(name, showFlags.version, &current)
	}

	if s.cfg.Output == "json" {
		return printJSON(row)
	}

	fmt.Printf("%s [%s]\n", row.Name, datasets.StatusLabels[row.Status])
	fmt.Printf("  %s\n", row.Overview)
	fmt.Printf("  Owner:    %s (%s)\n", row.Owner, row.OwnerRole)
	fmt.Printf("  Office:   %s\n", row.Office)
	fmt.Printf("  Contact:  %s\n", row.Contact)
	fmt.Printf("  Deadline: %s\n", row.Deadline)
	fmt.Printf("  Domain:   %s / %s\n", row.Detail.Domain, row.Detail.Subdomain)
	fmt.Printf("  Coverage: %d instruments, %s\n", row.Detail.CoverageCount, row.Detail.DataFrequency)
	if len(row.Detail.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", strings.Join(row.Detail.Tags, ", "))
	}
	fmt.Println("  Scores:")
	for _, key := range datasets.ScoreOrder {
		fmt.Printf("    %-12s %d\n", datasets.ScoreLabels[key], row.Detail.Scores.Score(key))
	}

	versions := s.ledger.History(name)
	if len(versions) == 0 {
		return nil
	}
	fmt.Printf("\n  History (%d version(s)):\n", len(versions))
	for _, version := range versions {
		line := fmt.Sprintf("    v%d %s by %s at %s", version.Version, version.Status,
			version.SubmittedBy, version.SubmittedAt.Format("2006-01-02 15:04"))
		if version.Approval != nil {
			line += fmt.Sprintf(" (approved by %s)", version.Approval.By)
		}
		fmt.Println(line)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/differ"
)

var diffFlags struct {
	base   int
	target int
}

// diffCmd represents the diff command.
var diffCmd = &cobra.Command{
	Use:   "diff <dataset>",
	Short: "Compare two versions of a dataset field by field",
	Long: `Diff compares two snapshots of a dataset. Version index 0 is the
ingested baseline; k > 0 is the k-th recorded change version. By
default the latest change version is compared against the baseline.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().IntVar(&diffFlags.base, "base", 0, "baseline version index")
	diffCmd.Flags().IntVar(&diffFlags.target, "target", 0, "candidate version index (default: latest)")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	name := args[0]

	target := diffFlags.target
	if target == 0 {
		target = len(s.ledger.History(name))
	}

	baseline := s.ledger.RowForVersion(name, diffFlags.base, nil)
	candidate := s.ledger.RowForVersion(name, target, nil)
	result := differ.Compare(&baseline, &candidate)

	if s.cfg.Output == "json" {
		return printJSON(result)
	}

	if !result.HasChanges() {
		fmt.Println("No changes")
		return nil
	}
	fmt.Println(result.Summary())
	for _, section := range result.Sections {
		if !result.SectionChanged[section.ID] {
			continue
		}
		fmt.Printf("\n%s:\n", section.Title)
		for _, row := range section.Rows {
			if !row.Changed {
				continue
			}
			fmt.Printf("  %s: %q -> %q\n", row.Label, row.Baseline, row.Target)
		}
	}
	return nil
}

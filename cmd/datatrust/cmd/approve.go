package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/errors"
)

var approveFlags struct {
	version int
}

// approveCmd represents the approve command.
var approveCmd = &cobra.Command{
	Use:   "approve <dataset>",
	Short: "Approve a pending change version",
	Long: `Approve promotes the targeted change version to approved, making its
snapshot the dataset's current baseline. Approving an already approved
version succeeds without changing anything. The change history file is
rewritten afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runApprove,
}

func init() {
	approveCmd.Flags().IntVar(&approveFlags.version, "version", 0, "version index to approve (default: latest)")
	rootCmd.AddCommand(approveCmd)
}

func runApprove(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	name := args[0]

	index := approveFlags.version
	if index == 0 {
		index = len(s.ledger.History(name))
		if index == 0 {
			return fmt.Errorf("%q: %w", name, errors.ErrNoHistory)
		}
	}

	row, err := s.ledger.Approve(name, index, s.cfg.User)
	if err != nil {
		return err
	}
	if err := s.persistHistory(); err != nil {
		return err
	}

	if s.cfg.Output == "json" {
		return printJSON(row)
	}
	fmt.Printf("Approved v%d for %q; current baseline is now %q\n", index, name, row.Name)
	return nil
}

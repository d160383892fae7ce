package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/datasets"
)

var proposeFlags struct {
	from   string
	rename string
}

// proposeCmd represents the propose command.
var proposeCmd = &cobra.Command{
	Use:   "propose <dataset>",
	Short: "Record an edited dataset row as a pending change version",
	Long: `Propose appends a pending change version for a dataset. The edited
row is read from the --from file as a full row JSON object; omitted
fields keep their current values. --rename changes the dataset's name,
moving its entire history with it. The change history file is rewritten
after the proposal is recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPropose,
}

func init() {
	proposeCmd.Flags().StringVar(&proposeFlags.from, "from", "", "JSON file with the edited row")
	proposeCmd.Flags().StringVar(&proposeFlags.rename, "rename", "", "new dataset name")
	rootCmd.AddCommand(proposeCmd)
}

func runPropose(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	name := args[0]

	current := s.ledger.RowForVersion(name, 0, nil)
	edited := datasets.CloneDataset(current)
	if proposeFlags.from != "" {
		data, err := os.ReadFile(proposeFlags.from)
		if err != nil {
			return fmt.Errorf("reading edited row: %w", err)
		}
		// The edit file is authored locally, so a strict decode with a
		// surfaced error beats the ingestion codec's degrade-to-default.
		if err := json.Unmarshal(data, &edited); err != nil {
			return fmt.Errorf("decoding edited row: %w", err)
		}
	}
	if proposeFlags.rename != "" {
		edited.Name = proposeFlags.rename
	}
	if edited.Name == "" {
		edited.Name = name
	}
	edited.Detail.Name = edited.Name

	entry, err := s.ledger.Propose(name, edited, s.cfg.User)
	if err != nil {
		return err
	}
	if err := s.persistHistory(); err != nil {
		return err
	}

	if s.cfg.Output == "json" {
		return printJSON(entry)
	}
	fmt.Printf("Recorded v%d for %q (pending approval)\n", entry.Version, edited.Name)
	return nil
}

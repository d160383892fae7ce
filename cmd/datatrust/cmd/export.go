package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the approved dataset set as YAML",
	Long: `Export renders the derived approved dataset set as YAML, ordered by
dataset name, for consumption outside the JSON payload exchange.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	rows := s.ledger.DeriveList()
	if s.cfg.Output == "json" {
		return printJSON(rows)
	}

	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

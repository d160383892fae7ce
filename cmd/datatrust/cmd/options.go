package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/datatrust/pkg/codec"
	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/views"
)

// optionsCmd represents the options command.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the picker option lists",
	Long: `Options prints the values offered by the edit form pickers: regions
and languages from the configured option-list payloads, and the owning
offices present in the approved dataset set.`,
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	regions := codec.ParseOptionList(readFileOrEmpty(s.cfg.RegionsFile), datasets.DefaultRegions())
	languages := codec.ParseOptionList(readFileOrEmpty(s.cfg.LanguagesFile), datasets.DefaultLanguages())
	offices := views.OfficeOptions(s.ledger.DeriveList())

	if s.cfg.Output == "json" {
		return printJSON(map[string][]string{
			"regions":   regions,
			"languages": languages,
			"offices":   offices,
		})
	}

	fmt.Printf("Regions:   %s\n", strings.Join(regions, ", "))
	fmt.Printf("Languages: %s\n", strings.Join(languages, ", "))
	fmt.Printf("Offices:   %s\n", strings.Join(offices, ", "))
	return nil
}

// Package cmd implements the datatrust command tree. The CLI plays the
// hosting platform's role: it feeds serialized payloads into the core,
// invokes operations, and persists the re-serialized change history.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/datatrust/internal/config"
	"github.com/agentstation/datatrust/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "datatrust",
	Short: "Govern dataset records through proposed and approved changes",
	Long: `Datatrust maintains a governed catalog of dataset records. Edits are
recorded as versioned change proposals; approving a proposal promotes
its snapshot to the dataset's current baseline. State is exchanged as
JSON payloads so any host can persist it between sessions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with version metadata attached.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Msg("Command failed")
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .datatrust.yaml)")
	flags.String("datasets", "", "entity-list JSON payload file")
	flags.String("details", "", "detail-map JSON payload file")
	flags.String("history", "", "change-history JSON file, rewritten after mutations")
	flags.String("regions", "", "region option-list JSON file")
	flags.String("languages", "", "language option-list JSON file")
	flags.String("user", "", "display name recorded on proposals and approvals")
	flags.StringP("output", "o", "", "output format: text or json")

	for _, name := range []string{"config", "datasets", "details", "history", "regions", "languages", "user", "output"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "flag binding: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig resolves configuration after flag parsing.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

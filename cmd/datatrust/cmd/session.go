package cmd

import (
	"fmt"
	"os"

	"github.com/agentstation/datatrust/internal/config"
	"github.com/agentstation/datatrust/pkg/codec"
	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/history"
)

// session is one loaded working state: the merged baseline rows and
// the change ledger seeded from the persisted history.
type session struct {
	cfg    *config.Config
	rows   []datasets.Dataset
	ledger *history.Ledger
}

// loadSession parses the configured payload files into a working state.
// Missing or unreadable files degrade to built-in defaults, matching
// the core's parse policy, so the CLI always starts in a usable state.
func loadSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	summaries := codec.ParseSummaries(readFileOrEmpty(cfg.DatasetsFile))
	details := codec.ParseDetailMap(readFileOrEmpty(cfg.DetailsFile))
	rows := datasets.Merge(summaries, details)

	parsed := codec.ParseChangeHistory(readFileOrEmpty(cfg.HistoryFile), datasets.MapByName(rows))
	ledger := history.New(rows, history.WithHistory(parsed))

	return &session{cfg: cfg, rows: rows, ledger: ledger}, nil
}

// persistHistory writes the ledger's history back to the configured
// file. Without a configured file the serialized history goes to
// stdout so the caller can capture it.
func (s *session) persistHistory() error {
	payload := codec.MarshalChangeHistory(s.ledger.Snapshot())
	if s.cfg.HistoryFile == "" {
		fmt.Println(payload)
		return nil
	}
	if err := os.WriteFile(s.cfg.HistoryFile, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// readFileOrEmpty returns the file's contents, or an empty string when
// the path is unset or unreadable. The parsers treat empty input as
// "use defaults".
func readFileOrEmpty(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// Package codec turns untrusted serialized payloads from the hosting
// platform into typed in-memory structures, and serializes change
// history back out. Every parse failure, from malformed JSON to wrong
// field types, degrades to a documented default; nothing in this
// package returns an error or panics past the parser boundary, because
// the payloads originate from a host the core does not control.
package codec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/logging"
)

// ParseSummaries parses an entity-list JSON array. Every element is
// validated against the full summary shape; elements failing validation
// are dropped. An empty or unusable payload yields the built-in default
// summary set.
func ParseSummaries(payload string) []datasets.Summary {
	if strings.TrimSpace(payload) == "" {
		return datasets.DefaultSummaries()
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logging.Debug().Err(err).Msg("Entity list payload is not a JSON array; using defaults")
		return datasets.DefaultSummaries()
	}

	valid := make([]datasets.Summary, 0, len(raw))
	for i, element := range raw {
		summary, ok := decodeSummary(element)
		if !ok {
			logging.Debug().Int("index", i).Msg("Dropping invalid entity list element")
			continue
		}
		valid = append(valid, summary)
	}
	if len(valid) == 0 {
		return datasets.DefaultSummaries()
	}
	return valid
}

// ParseDetailMap parses a detail-map payload, accepting either an array
// of {datasetName, detail} pairs or an object map of name to detail.
// Each detail record is validated structurally, sub-objects included;
// invalid entries are skipped. An empty result yields the built-in
// default detail map.
func ParseDetailMap(payload string) map[string]datasets.Detail {
	if strings.TrimSpace(payload) == "" {
		return datasets.DefaultDetailMap()
	}

	entries := decodeDetailEntries([]byte(payload))
	if len(entries) == 0 {
		return datasets.DefaultDetailMap()
	}

	result := make(map[string]datasets.Detail, len(entries))
	for _, entry := range entries {
		result[entry.Name] = datasets.CloneDetail(entry.Detail)
	}
	return result
}

func decodeDetailEntries(payload []byte) []datasets.DetailEntry {
	var entries []datasets.DetailEntry

	var rawList []json.RawMessage
	if err := json.Unmarshal(payload, &rawList); err == nil {
		for i, element := range rawList {
			entry, ok := decodeDetailEntry(element)
			if !ok {
				logging.Debug().Int("index", i).Msg("Dropping invalid detail entry")
				continue
			}
			entries = append(entries, entry)
		}
		return entries
	}

	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(payload, &rawMap); err != nil {
		logging.Debug().Err(err).Msg("Detail map payload is neither array nor object; using defaults")
		return nil
	}
	for _, name := range sortedKeys(rawMap) {
		detail, ok := decodeDetail(rawMap[name])
		if !ok {
			logging.Debug().Str("dataset", name).Msg("Dropping invalid detail record")
			continue
		}
		entries = append(entries, datasets.DetailEntry{Name: name, Detail: detail})
	}
	return entries
}

// optionCollator orders option values the way the UI pickers expect.
var optionCollator = collate.New(language.English)

// ParseOptionList parses a flat string array, trims and deduplicates
// its values, and sorts them with locale-aware collation. Any parse
// failure falls back to a copy of the given default list. Non-string
// scalars are stringified rather than dropped.
func ParseOptionList(payload string, fallback []string) []string {
	if strings.TrimSpace(payload) == "" {
		return append([]string(nil), fallback...)
	}

	var raw []any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logging.Debug().Err(err).Msg("Option list payload is not a JSON array; using fallback")
		return append([]string(nil), fallback...)
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			value = fmt.Sprint(item)
		}
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}
	optionCollator.SortStrings(result)
	return result
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	// Deterministic decode order; map iteration order is not.
	sort.Strings(keys)
	return keys
}

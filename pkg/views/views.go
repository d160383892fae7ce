// Package views holds the pure filter and aggregation functions that
// shape the approved dataset set for display. Everything here is
// re-derivable at any time from its inputs; nothing mutates state.
package views

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/search"
)

// Filter selects rows by status, owning office, and search criteria.
// Zero values mean "all" for each dimension. When Facet is set the
// query is an exact facet match; otherwise Query is a free-text
// substring search. All populated dimensions are ANDed.
type Filter struct {
	Status datasets.Status // Exact status, or empty for all
	Office string          // Case-insensitive office match, or empty for all
	Query  string          // Free-text query, ignored when Facet is set
	Facet  *search.Entry   // Selected suggestion for facet-locked filtering
}

// Apply returns the rows passing every populated filter dimension, in
// input order.
func (f Filter) Apply(rows []datasets.Dataset) []datasets.Dataset {
	result := make([]datasets.Dataset, 0, len(rows))
	for _, row := range rows {
		if !f.matches(row) {
			continue
		}
		result = append(result, row)
	}
	return result
}

func (f Filter) matches(row datasets.Dataset) bool {
	if f.Status != "" && row.Status != f.Status {
		return false
	}
	if f.Office != "" && datasets.NormalizeText(row.Office) != datasets.NormalizeText(f.Office) {
		return false
	}
	if f.Facet != nil {
		return f.Facet.Matches(row)
	}
	return search.MatchesQuery(row, f.Query)
}

// optionCollator orders picker options for display.
var optionCollator = collate.New(language.English)

// OfficeOptions returns the distinct owning offices across the rows,
// deduplicated case-insensitively with first-seen casing, collated.
func OfficeOptions(rows []datasets.Dataset) []string {
	seen := make(map[string]string)
	for _, row := range rows {
		office := strings.TrimSpace(row.Office)
		if office == "" {
			continue
		}
		key := datasets.NormalizeText(office)
		if _, ok := seen[key]; !ok {
			seen[key] = office
		}
	}
	options := make([]string, 0, len(seen))
	for _, office := range seen {
		options = append(options, office)
	}
	optionCollator.SortStrings(options)
	return options
}

// StatusTally counts rows per readiness status.
type StatusTally struct {
	Total   int `json:"total"`
	OnTrack int `json:"onTrack"`
	AtRisk  int `json:"atRisk"`
	Blocked int `json:"blocked"`
}

// Summarize tallies the rows by status.
func Summarize(rows []datasets.Dataset) StatusTally {
	tally := StatusTally{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case datasets.StatusOnTrack:
			tally.OnTrack++
		case datasets.StatusAtRisk:
			tally.AtRisk++
		case datasets.StatusBlocked:
			tally.Blocked++
		}
	}
	return tally
}

// CoveragePoints sums the coverage counts across all rows.
func CoveragePoints(rows []datasets.Dataset) int {
	total := 0
	for _, row := range rows {
		total += row.Detail.CoverageCount
	}
	return total
}

// UniqueDomains counts the distinct domains across all rows,
// case-insensitively, ignoring blanks.
func UniqueDomains(rows []datasets.Dataset) int {
	seen := make(map[string]bool)
	for _, row := range rows {
		domain := datasets.NormalizeText(row.Detail.Domain)
		if domain == "" {
			continue
		}
		seen[domain] = true
	}
	return len(seen)
}

// deadlineLayout is the expected deadline date format.
const deadlineLayout = "2006-01-02"

// NextDeadline returns the earliest parseable deadline across the rows
// and the dataset it belongs to. Rows whose deadline does not parse are
// skipped; false when no row has a usable deadline.
func NextDeadline(rows []datasets.Dataset) (time.Time, string, bool) {
	var earliest time.Time
	var name string
	found := false
	for _, row := range rows {
		deadline, err := time.Parse(deadlineLayout, strings.TrimSpace(row.Deadline))
		if err != nil {
			continue
		}
		if !found || deadline.Before(earliest) {
			earliest = deadline
			name = row.Name
			found = true
		}
	}
	return earliest, name, found
}

// BlockedShare returns the fraction of rows with blocked status, 0 for
// an empty set.
func BlockedShare(rows []datasets.Dataset) float64 {
	if len(rows) == 0 {
		return 0
	}
	blocked := 0
	for _, row := range rows {
		if row.Status == datasets.StatusBlocked {
			blocked++
		}
	}
	return float64(blocked) / float64(len(rows))
}

// SortByName orders rows by dataset name, collated, in place.
func SortByName(rows []datasets.Dataset) {
	sort.SliceStable(rows, func(i, j int) bool {
		return optionCollator.CompareString(rows[i].Name, rows[j].Name) < 0
	})
}

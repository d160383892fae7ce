// Package differ computes field-level comparisons between two dataset
// snapshots. The compared field set is a fixed ordered catalog, so two
// comparisons over the same inputs always produce identical output.
package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/datatrust/pkg/datasets"
)

// Row is one compared field with its projected values from each side.
type Row struct {
	Key      string `json:"key"`      // Stable field identifier
	Label    string `json:"label"`    // Display label
	Baseline string `json:"baseline"` // Projected value on the baseline side
	Target   string `json:"target"`   // Projected value on the candidate side
	Changed  bool   `json:"changed"`  // Whether the projections differ
}

// Section groups the rows rendered under one heading.
type Section struct {
	ID    SectionID `json:"id"`
	Title string    `json:"title"`
	Rows  []Row     `json:"rows"`
}

// Result is a full comparison between two snapshots.
type Result struct {
	Sections       []Section          `json:"sections"`
	FieldChanged   map[string]bool    `json:"fieldChanged"`
	SectionChanged map[SectionID]bool `json:"sectionChanged"`
}

// Compare diffs a candidate snapshot against a baseline. Values are
// projected to strings per the field catalog and compared exactly, so
// list reordering counts as a change. When either snapshot is nil the
// result carries every section with no rows, which callers render as
// an empty comparison rather than a failure.
func Compare(baseline, candidate *datasets.Dataset) *Result {
	result := &Result{
		FieldChanged:   make(map[string]bool),
		SectionChanged: make(map[SectionID]bool),
	}

	if baseline == nil || candidate == nil {
		for _, id := range sectionOrder {
			result.Sections = append(result.Sections, Section{ID: id, Title: sectionTitles[id]})
		}
		return result
	}

	rowsBySection := make(map[SectionID][]Row)
	for _, f := range catalog() {
		before := f.Extract(baseline)
		after := f.Extract(candidate)
		row := Row{
			Key:      f.Key,
			Label:    f.Label,
			Baseline: before,
			Target:   after,
			Changed:  before != after,
		}
		rowsBySection[f.Section] = append(rowsBySection[f.Section], row)
		result.FieldChanged[f.Key] = row.Changed
		if row.Changed {
			result.SectionChanged[f.Section] = true
		}
	}

	for _, id := range sectionOrder {
		result.Sections = append(result.Sections, Section{
			ID:    id,
			Title: sectionTitles[id],
			Rows:  rowsBySection[id],
		})
	}
	return result
}

// HasChanges reports whether any compared field differs.
func (r *Result) HasChanges() bool {
	for _, changed := range r.FieldChanged {
		if changed {
			return true
		}
	}
	return false
}

// ChangedRows returns the changed rows across all sections, in catalog
// order.
func (r *Result) ChangedRows() []Row {
	var rows []Row
	for _, section := range r.Sections {
		for _, row := range section.Rows {
			if row.Changed {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// Summary returns a one-line description of the comparison.
func (r *Result) Summary() string {
	changed := len(r.ChangedRows())
	if changed == 0 {
		return "No changes"
	}

	var sections []string
	for _, section := range r.Sections {
		if r.SectionChanged[section.ID] {
			sections = append(sections, section.Title)
		}
	}
	return fmt.Sprintf("%d field(s) changed in %s", changed, strings.Join(sections, ", "))
}

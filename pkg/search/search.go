// Package search derives a deduplicated, faceted lookup index from a
// set of datasets and answers facet and free-text queries against
// individual rows.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/datatrust/pkg/datasets"
)

// Facet is one of the fixed categorical dimensions indexed for search.
type Facet string

// Facets, in index priority order.
const (
	FacetDataset   Facet = "dataset"
	FacetDomain    Facet = "domain"
	FacetSubdomain Facet = "subdomain"
	FacetOwner     Facet = "owner"
	FacetOffice    Facet = "office"
	FacetContact   Facet = "contact"
)

// facetOrder fixes the priority in which facets appear in the index.
var facetOrder = []Facet{
	FacetDataset,
	FacetDomain,
	FacetSubdomain,
	FacetOwner,
	FacetOffice,
	FacetContact,
}

// facetLabels maps facets to display labels.
var facetLabels = map[Facet]string{
	FacetDataset:   "Dataset",
	FacetDomain:    "Domain",
	FacetSubdomain: "Subdomain",
	FacetOwner:     "Data owner",
	FacetOffice:    "Governance office",
	FacetContact:   "Point of contact",
}

// facetShortLabels maps facets to the badges shown beside suggestions.
var facetShortLabels = map[Facet]string{
	FacetDataset:   "DST",
	FacetDomain:    "DOM",
	FacetSubdomain: "SUB",
	FacetOwner:     "OWN",
	FacetOffice:    "DGO",
	FacetContact:   "POC",
}

// Valid reports whether f is a known facet.
func (f Facet) Valid() bool {
	_, ok := facetLabels[f]
	return ok
}

// Label returns the facet's display label.
func (f Facet) Label() string {
	return facetLabels[f]
}

// ShortLabel returns the facet's badge label.
func (f Facet) ShortLabel() string {
	return facetShortLabels[f]
}

// priority returns the facet's index rank; unknown facets sort last.
func (f Facet) priority() int {
	for i, facet := range facetOrder {
		if facet == f {
			return i
		}
	}
	return len(facetOrder)
}

// Entry is one indexed suggestion: a facet plus a distinct value.
type Entry struct {
	Facet       Facet  `json:"facet"`
	Value       string `json:"value"`       // First-seen original casing, for display
	SearchValue string `json:"searchValue"` // Lowercased form used for matching
}

// Matches reports whether the row carries the entry's value in the
// entry's facet, compared case-insensitively.
func (e Entry) Matches(row datasets.Dataset) bool {
	return datasets.NormalizeText(facetValue(e.Facet, row)) == e.SearchValue
}

func facetValue(f Facet, row datasets.Dataset) string {
	switch f {
	case FacetDataset:
		return row.Name
	case FacetDomain:
		return row.Detail.Domain
	case FacetSubdomain:
		return row.Detail.Subdomain
	case FacetOwner:
		return row.Owner
	case FacetOffice:
		return row.Office
	case FacetContact:
		return row.Contact
	default:
		return ""
	}
}

// indexCollator orders entries within a facet for display.
var indexCollator = collate.New(language.English)

// BuildIndex collects the distinct facet values across all rows into a
// flattened suggestion index. Values are deduplicated case-insensitively
// with the first-seen casing preserved for display. The output ordering
// is fixed regardless of input row order: facet priority first, then
// collated by display value within each facet.
func BuildIndex(rows []datasets.Dataset) []Entry {
	perFacet := make(map[Facet]map[string]string, len(facetOrder))
	for _, facet := range facetOrder {
		perFacet[facet] = make(map[string]string)
	}

	for _, row := range rows {
		for _, facet := range facetOrder {
			value := strings.TrimSpace(facetValue(facet, row))
			if value == "" {
				continue
			}
			key := datasets.NormalizeText(value)
			if _, seen := perFacet[facet][key]; !seen {
				perFacet[facet][key] = value
			}
		}
	}

	var entries []Entry
	for _, facet := range facetOrder {
		bucket := perFacet[facet]
		facetEntries := make([]Entry, 0, len(bucket))
		for key, display := range bucket {
			facetEntries = append(facetEntries, Entry{Facet: facet, Value: display, SearchValue: key})
		}
		sort.Slice(facetEntries, func(i, j int) bool {
			return indexCollator.CompareString(facetEntries[i].Value, facetEntries[j].Value) < 0
		})
		entries = append(entries, facetEntries...)
	}
	return entries
}

// Suggest returns the index entries whose values contain the query,
// case-insensitively. An empty query returns nothing.
func Suggest(index []Entry, query string) []Entry {
	needle := datasets.NormalizeText(query)
	if needle == "" {
		return nil
	}
	var matches []Entry
	for _, entry := range index {
		if strings.Contains(entry.SearchValue, needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// queryFields is the scalar field set scanned by free-text search.
var queryFields = []func(datasets.Dataset) string{
	func(d datasets.Dataset) string { return d.Name },
	func(d datasets.Dataset) string { return d.Overview },
	func(d datasets.Dataset) string { return d.Detail.Domain },
	func(d datasets.Dataset) string { return d.Detail.Subdomain },
	func(d datasets.Dataset) string { return d.Owner },
	func(d datasets.Dataset) string { return d.OwnerRole },
	func(d datasets.Dataset) string { return d.Office },
	func(d datasets.Dataset) string { return d.Contact },
	func(d datasets.Dataset) string { return d.ReadinessNotes },
}

// queryListFields is the list field set scanned by free-text search.
var queryListFields = []func(datasets.Dataset) []string{
	func(d datasets.Dataset) []string { return d.Detail.Tags },
	func(d datasets.Dataset) []string { return d.Detail.Features },
	func(d datasets.Dataset) []string { return d.Detail.Languages },
	func(d datasets.Dataset) []string { return d.Detail.Regions },
	func(d datasets.Dataset) []string { return d.Detail.DataTypes },
}

// MatchesQuery reports whether the row matches a free-text query by
// case-insensitive substring across the scanned scalar and list fields.
// An empty query matches every row.
func MatchesQuery(row datasets.Dataset, query string) bool {
	needle := datasets.NormalizeText(query)
	if needle == "" {
		return true
	}
	for _, extract := range queryFields {
		if strings.Contains(datasets.NormalizeText(extract(row)), needle) {
			return true
		}
	}
	for _, extract := range queryListFields {
		for _, value := range extract(row) {
			if strings.Contains(datasets.NormalizeText(value), needle) {
				return true
			}
		}
	}
	return false
}

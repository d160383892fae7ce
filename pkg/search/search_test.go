package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/datatrust/pkg/datasets"
)

func indexedRow(name, domain, owner string) datasets.Dataset {
	row := datasets.EmptyDataset(name)
	row.Owner = owner
	row.Office = "Markets DGO"
	row.Contact = "Leo Park"
	row.Detail.Domain = domain
	row.Detail.Subdomain = "Cash Equities"
	return row
}

func TestBuildIndex(t *testing.T) {
	rows := []datasets.Dataset{
		indexedRow("Alpha Set", "Markets", "Ana Cordero"),
		indexedRow("Beta Set", "markets", "Ana Cordero"),
	}
	index := BuildIndex(rows)

	t.Run("case insensitive dedup keeps first casing", func(t *testing.T) {
		var domains []Entry
		for _, entry := range index {
			if entry.Facet == FacetDomain {
				domains = append(domains, entry)
			}
		}
		require.Len(t, domains, 1)
		assert.Equal(t, "Markets", domains[0].Value)
		assert.Equal(t, "markets", domains[0].SearchValue)
	})

	t.Run("facet priority order", func(t *testing.T) {
		lastRank := -1
		for _, entry := range index {
			rank := entry.Facet.priority()
			assert.GreaterOrEqual(t, rank, lastRank)
			lastRank = rank
		}
		require.NotEmpty(t, index)
		assert.Equal(t, FacetDataset, index[0].Facet)
	})

	t.Run("order independent of input order", func(t *testing.T) {
		reversed := []datasets.Dataset{rows[1], rows[0]}
		other := BuildIndex(reversed)
		require.Len(t, other, len(index))
		for i := range index {
			assert.Equal(t, index[i].Facet, other[i].Facet)
			assert.Equal(t, index[i].SearchValue, other[i].SearchValue)
		}
	})

	t.Run("blank values skipped", func(t *testing.T) {
		blank := datasets.EmptyDataset("")
		assert.Empty(t, BuildIndex([]datasets.Dataset{blank}))
	})
}

func TestEntryMatches(t *testing.T) {
	row := indexedRow("Alpha Set", "Markets", "Ana Cordero")

	assert.True(t, Entry{Facet: FacetOwner, SearchValue: "ana cordero"}.Matches(row))
	assert.True(t, Entry{Facet: FacetDataset, SearchValue: "alpha set"}.Matches(row))
	assert.False(t, Entry{Facet: FacetOwner, SearchValue: "ana"}.Matches(row), "facet match is exact, not substring")
	assert.False(t, Entry{Facet: FacetDomain, SearchValue: "ana cordero"}.Matches(row))
}

func TestSuggest(t *testing.T) {
	index := BuildIndex(datasets.DefaultDatasets())

	matches := Suggest(index, "equity")
	require.NotEmpty(t, matches)
	for _, entry := range matches {
		assert.Contains(t, entry.SearchValue, "equity")
	}

	assert.Empty(t, Suggest(index, ""))
	assert.Empty(t, Suggest(index, "zzzz-no-such-value"))
}

func TestMatchesQuery(t *testing.T) {
	row := datasets.DefaultDatasets()[0]

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty matches", "", true},
		{"name substring", "equity", true},
		{"owner case insensitive", row.Owner, true},
		{"tag value", row.Detail.Tags[0], true},
		{"region value", row.Detail.Regions[0], true},
		{"no match", "quantum basket weaving", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(row, tt.query))
		})
	}
}

func TestFacetMetadata(t *testing.T) {
	for _, facet := range facetOrder {
		assert.True(t, facet.Valid())
		assert.NotEmpty(t, facet.Label())
		assert.NotEmpty(t, facet.ShortLabel())
	}
	assert.False(t, Facet("color").Valid())
}

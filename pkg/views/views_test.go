package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/search"
)

func filterRow(name string, status datasets.Status, office string) datasets.Dataset {
	row := datasets.EmptyDataset(name)
	row.Status = status
	row.Office = office
	row.Deadline = "2026-06-30"
	return row
}

func TestFilterApply(t *testing.T) {
	rows := []datasets.Dataset{
		filterRow("Alpha", datasets.StatusOnTrack, "Markets DGO"),
		filterRow("Beta", datasets.StatusBlocked, "Risk DGO"),
		filterRow("Gamma", datasets.StatusBlocked, "markets dgo"),
	}

	t.Run("zero filter passes everything", func(t *testing.T) {
		assert.Len(t, Filter{}.Apply(rows), 3)
	})

	t.Run("status exact match", func(t *testing.T) {
		matched := Filter{Status: datasets.StatusBlocked}.Apply(rows)
		require.Len(t, matched, 2)
		assert.Equal(t, "Beta", matched[0].Name)
	})

	t.Run("office case insensitive", func(t *testing.T) {
		matched := Filter{Office: "MARKETS DGO"}.Apply(rows)
		require.Len(t, matched, 2)
		assert.Equal(t, "Alpha", matched[0].Name)
		assert.Equal(t, "Gamma", matched[1].Name)
	})

	t.Run("dimensions are ANDed", func(t *testing.T) {
		matched := Filter{Status: datasets.StatusBlocked, Office: "Markets DGO"}.Apply(rows)
		require.Len(t, matched, 1)
		assert.Equal(t, "Gamma", matched[0].Name)
	})

	t.Run("free text query", func(t *testing.T) {
		matched := Filter{Query: "alp"}.Apply(rows)
		require.Len(t, matched, 1)
		assert.Equal(t, "Alpha", matched[0].Name)
	})

	t.Run("facet locked match overrides query", func(t *testing.T) {
		entry := &search.Entry{Facet: search.FacetDataset, SearchValue: "beta"}
		matched := Filter{Query: "alpha", Facet: entry}.Apply(rows)
		require.Len(t, matched, 1)
		assert.Equal(t, "Beta", matched[0].Name)
	})
}

func TestOfficeOptions(t *testing.T) {
	rows := []datasets.Dataset{
		filterRow("A", datasets.StatusOnTrack, "Risk DGO"),
		filterRow("B", datasets.StatusOnTrack, "Markets DGO"),
		filterRow("C", datasets.StatusOnTrack, "MARKETS DGO"),
		filterRow("D", datasets.StatusOnTrack, " "),
	}
	assert.Equal(t, []string{"Markets DGO", "Risk DGO"}, OfficeOptions(rows))
}

func TestSummarize(t *testing.T) {
	rows := []datasets.Dataset{
		filterRow("A", datasets.StatusOnTrack, ""),
		filterRow("B", datasets.StatusAtRisk, ""),
		filterRow("C", datasets.StatusBlocked, ""),
		filterRow("D", datasets.StatusBlocked, ""),
	}
	tally := Summarize(rows)
	assert.Equal(t, StatusTally{Total: 4, OnTrack: 1, AtRisk: 1, Blocked: 2}, tally)
	assert.Equal(t, StatusTally{}, Summarize(nil))
}

func TestCoverageAndDomains(t *testing.T) {
	rows := datasets.DefaultDatasets()

	total := 0
	for _, row := range rows {
		total += row.Detail.CoverageCount
	}
	assert.Equal(t, total, CoveragePoints(rows))
	assert.Positive(t, UniqueDomains(rows))

	t.Run("domains deduped case insensitively", func(t *testing.T) {
		a := datasets.EmptyDataset("A")
		a.Detail.Domain = "Markets"
		b := datasets.EmptyDataset("B")
		b.Detail.Domain = "MARKETS"
		c := datasets.EmptyDataset("C")
		assert.Equal(t, 1, UniqueDomains([]datasets.Dataset{a, b, c}))
	})
}

func TestNextDeadline(t *testing.T) {
	a := filterRow("A", datasets.StatusOnTrack, "")
	a.Deadline = "2026-09-01"
	b := filterRow("B", datasets.StatusOnTrack, "")
	b.Deadline = "2026-04-15"
	c := filterRow("C", datasets.StatusOnTrack, "")
	c.Deadline = "not a date"

	deadline, name, ok := NextDeadline([]datasets.Dataset{a, b, c})
	require.True(t, ok)
	assert.Equal(t, "B", name)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), deadline)

	_, _, ok = NextDeadline([]datasets.Dataset{c})
	assert.False(t, ok)
}

func TestBlockedShare(t *testing.T) {
	rows := []datasets.Dataset{
		filterRow("A", datasets.StatusBlocked, ""),
		filterRow("B", datasets.StatusOnTrack, ""),
		filterRow("C", datasets.StatusOnTrack, ""),
		filterRow("D", datasets.StatusOnTrack, ""),
	}
	assert.InDelta(t, 0.25, BlockedShare(rows), 1e-9)
	assert.Zero(t, BlockedShare(nil))
}

func TestSortByName(t *testing.T) {
	rows := []datasets.Dataset{
		filterRow("Zeta", datasets.StatusOnTrack, ""),
		filterRow("Alpha", datasets.StatusOnTrack, ""),
		filterRow("Mid", datasets.StatusOnTrack, ""),
	}
	SortByName(rows)
	assert.Equal(t, "Alpha", rows[0].Name)
	assert.Equal(t, "Mid", rows[1].Name)
	assert.Equal(t, "Zeta", rows[2].Name)
}

package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback Status
		want     Status
	}{
		{"valid status", "blocked", StatusOnTrack, StatusBlocked},
		{"match is exact, wrong case uses fallback", "AT-RISK", StatusOnTrack, StatusOnTrack},
		{"match is exact, padded value uses fallback", "  on-track  ", StatusBlocked, StatusBlocked},
		{"unknown uses fallback", "paused", StatusAtRisk, StatusAtRisk},
		{"empty uses fallback", "", StatusBlocked, StatusBlocked},
		{"empty fallback defaults", "nonsense", "", StatusOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.value, tt.fallback))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "global-equity-trades", Slug("Global Equity Trades"))
	assert.Equal(t, "esg-ratings-vault", Slug("ESG Ratings Vault"))
	assert.Equal(t, "fixed-income-curves", Slug("Fixed/Income (Curves)"))
}

func TestSplitHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitComma("a, b ,c"))
	assert.Equal(t, []string{"one", "two"}, SplitLines("one\r\ntwo\n\n"))
	assert.Empty(t, SplitComma("  "))
}

func TestMerge(t *testing.T) {
	summaries := []Summary{
		{Name: "Global Equity Trades", Status: StatusOnTrack},
		{Name: "Unknown Set", Status: StatusAtRisk},
	}
	details := map[string]Detail{
		"Global Equity Trades": {Name: "Global Equity Trades", Domain: "Markets"},
	}

	rows := Merge(summaries, details)
	require.Len(t, rows, 2)

	t.Run("known detail joined", func(t *testing.T) {
		assert.Equal(t, "Markets", rows[0].Detail.Domain)
	})

	t.Run("missing detail falls back to defaults then empty", func(t *testing.T) {
		// "Unknown Set" is in neither the supplied details nor the
		// built-in defaults, so it gets the empty placeholder detail.
		assert.Equal(t, "Unknown Set", rows[1].Detail.Name)
		assert.NotNil(t, rows[1].Detail.Tags)
		assert.Empty(t, rows[1].Detail.Tags)
	})

	t.Run("default detail fills default dataset names", func(t *testing.T) {
		defaults := Merge([]Summary{{Name: "ESG Ratings Vault", Status: StatusAtRisk}}, nil)
		require.Len(t, defaults, 1)
		assert.NotEmpty(t, defaults[0].Detail.Domain)
	})
}

func TestCloneIndependence(t *testing.T) {
	original := DefaultDatasets()[0]
	cloned := CloneDataset(original)

	cloned.Detail.Tags[0] = "mutated"
	cloned.Detail.Scores.Overall = -1
	cloned.Name = "mutated"

	assert.NotEqual(t, "mutated", original.Name)
	assert.NotEqual(t, "mutated", original.Detail.Tags[0])
	assert.NotEqual(t, -1, original.Detail.Scores.Overall)
}

func TestDefaultDatasets(t *testing.T) {
	rows := DefaultDatasets()
	require.Len(t, rows, 4)

	names := make(map[string]bool)
	for _, row := range rows {
		names[row.Name] = true
		assert.True(t, row.Status.Valid(), "default row %q must carry a valid status", row.Name)
		assert.Equal(t, row.Name, row.Detail.Name)
	}
	assert.True(t, names["Global Equity Trades"])

	t.Run("copies are independent", func(t *testing.T) {
		rows[0].Name = "mutated"
		assert.NotEqual(t, "mutated", DefaultDatasets()[0].Name)
	})
}

func TestScoreAccessor(t *testing.T) {
	scores := ScoreSet{Overall: 81, Cost: 55}
	assert.Equal(t, 81, scores.Score(ScoreOverall))
	assert.Equal(t, 55, scores.Score(ScoreCost))
	assert.Equal(t, 0, scores.Score(ScoreKey("unknown")))

	require.Len(t, ScoreOrder, 8)
	for _, key := range ScoreOrder {
		assert.NotEmpty(t, ScoreLabels[key])
	}
}

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/datatrust/pkg/datasets"
)

func TestCompareIdentical(t *testing.T) {
	row := datasets.DefaultDatasets()[0]
	result := Compare(&row, &row)

	assert.False(t, result.HasChanges())
	assert.Empty(t, result.ChangedRows())
	assert.Empty(t, result.SectionChanged)
	assert.Equal(t, "No changes", result.Summary())

	t.Run("every catalog field reported", func(t *testing.T) {
		total := 0
		for _, section := range result.Sections {
			total += len(section.Rows)
		}
		assert.Equal(t, len(result.FieldChanged), total)
		assert.GreaterOrEqual(t, total, 30)
	})
}

func TestCompareChanges(t *testing.T) {
	baseline := datasets.DefaultDatasets()[0]
	candidate := datasets.CloneDataset(baseline)
	candidate.Deadline = "2027-01-01"
	candidate.Detail.Scores.Overall = baseline.Detail.Scores.Overall + 5
	candidate.Detail.Domain = "Alternative Data"

	result := Compare(&baseline, &candidate)
	require.True(t, result.HasChanges())

	assert.True(t, result.FieldChanged["deadline"])
	assert.True(t, result.FieldChanged["overallScore"])
	assert.True(t, result.FieldChanged["domain"])
	assert.False(t, result.FieldChanged["dataOwner"])

	assert.True(t, result.SectionChanged[SectionHeader])
	assert.True(t, result.SectionChanged[SectionScores])
	assert.True(t, result.SectionChanged[SectionOverview])
	assert.False(t, result.SectionChanged[SectionStewardship])

	t.Run("changed rows carry both values", func(t *testing.T) {
		rows := result.ChangedRows()
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.NotEqual(t, row.Baseline, row.Target)
		}
	})

	t.Run("summary names changed sections", func(t *testing.T) {
		summary := result.Summary()
		assert.Contains(t, summary, "3 field(s) changed")
		assert.Contains(t, summary, sectionTitles[SectionScores])
	})
}

func TestCompareListProjection(t *testing.T) {
	baseline := datasets.DefaultDatasets()[0]
	require.GreaterOrEqual(t, len(baseline.Detail.Tags), 2)

	candidate := datasets.CloneDataset(baseline)
	candidate.Detail.Tags[0], candidate.Detail.Tags[1] = candidate.Detail.Tags[1], candidate.Detail.Tags[0]

	// Reordering a list is a change; order is meaningful to reviewers.
	result := Compare(&baseline, &candidate)
	assert.True(t, result.FieldChanged["tags"])
	assert.True(t, result.SectionChanged[SectionAccess])
}

func TestCompareNilSnapshots(t *testing.T) {
	row := datasets.DefaultDatasets()[0]
	for _, result := range []*Result{Compare(nil, &row), Compare(&row, nil), Compare(nil, nil)} {
		require.Len(t, result.Sections, len(sectionOrder))
		for _, section := range result.Sections {
			assert.Empty(t, section.Rows)
			assert.NotEmpty(t, section.Title)
		}
		assert.False(t, result.HasChanges())
	}
}

func TestSectionOrderStable(t *testing.T) {
	row := datasets.DefaultDatasets()[1]
	first := Compare(&row, &row)
	second := Compare(&row, &row)
	assert.Equal(t, first, second)

	for i, section := range first.Sections {
		assert.Equal(t, sectionOrder[i], section.ID)
	}
}

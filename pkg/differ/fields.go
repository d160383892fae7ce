package differ

import (
	"strconv"
	"strings"

	"github.com/agentstation/datatrust/pkg/datasets"
)

// SectionID identifies one group of compared fields.
type SectionID string

// Section identifiers, in display order.
const (
	SectionHeader       SectionID = "header"
	SectionMetrics      SectionID = "metrics"
	SectionOverview     SectionID = "overview"
	SectionStewardship  SectionID = "stewardship"
	SectionCoverage     SectionID = "coverage"
	SectionScores       SectionID = "scores"
	SectionFeatures     SectionID = "features"
	SectionDistribution SectionID = "distribution"
	SectionAccess       SectionID = "access"
)

// sectionOrder fixes the section sequence of every Result.
var sectionOrder = []SectionID{
	SectionHeader,
	SectionMetrics,
	SectionOverview,
	SectionStewardship,
	SectionCoverage,
	SectionScores,
	SectionFeatures,
	SectionDistribution,
	SectionAccess,
}

// sectionTitles maps section identifiers to display titles.
var sectionTitles = map[SectionID]string{
	SectionHeader:       "Header",
	SectionMetrics:      "Key metrics",
	SectionOverview:     "Overview",
	SectionStewardship:  "Stewardship",
	SectionCoverage:     "Coverage metric",
	SectionScores:       "Scores",
	SectionFeatures:     "Data types & features",
	SectionDistribution: "Distribution",
	SectionAccess:       "Access & tags",
}

// field describes one compared field: where it renders and how its
// value is projected to a comparable string.
type field struct {
	Key     string
	Label   string
	Section SectionID
	Extract func(*datasets.Dataset) string
}

// joinLines projects a list to one value per line. Reordering the list
// therefore registers as a change.
func joinLines(values []string) string {
	return strings.Join(values, "\n")
}

// joinInline projects a list to a comma-separated line.
func joinInline(values []string) string {
	return strings.Join(values, ", ")
}

// fieldCatalog is the fixed, ordered set of compared fields. Comparison
// is exact string equality over each projection; fields absent from
// this catalog are invisible to the diff.
var fieldCatalog = []field{
	{"datasetName", "Dataset name", SectionHeader, func(d *datasets.Dataset) string { return d.Name }},
	{"status", "Status", SectionHeader, func(d *datasets.Dataset) string { return d.Status.String() }},
	{"deadline", "Deadline", SectionHeader, func(d *datasets.Dataset) string { return d.Deadline }},

	{"coverageCount", "Coverage count", SectionMetrics, func(d *datasets.Dataset) string { return strconv.Itoa(d.Detail.CoverageCount) }},
	{"dataFrequency", "Data frequency", SectionMetrics, func(d *datasets.Dataset) string { return d.Detail.DataFrequency }},
	{"minimumDataFrequency", "Minimum frequency", SectionMetrics, func(d *datasets.Dataset) string { return d.Detail.MinimumFrequency }},
	{"timePeriod", "Time period", SectionMetrics, func(d *datasets.Dataset) string { return d.Detail.TimePeriod }},
	{"history", "History", SectionMetrics, func(d *datasets.Dataset) string { return d.Detail.History }},

	{"datasetSummary", "Summary", SectionOverview, func(d *datasets.Dataset) string { return d.Overview }},
	{"description", "Description", SectionOverview, func(d *datasets.Dataset) string { return d.Detail.Description }},
	{"domain", "Domain", SectionOverview, func(d *datasets.Dataset) string { return d.Detail.Domain }},
	{"subdomain", "Subdomain", SectionOverview, func(d *datasets.Dataset) string { return d.Detail.Subdomain }},
	{"businessUnit", "Business unit", SectionOverview, func(d *datasets.Dataset) string { return d.Detail.BusinessUnit }},

	{"dataOwner", "Data owner", SectionStewardship, func(d *datasets.Dataset) string { return d.Owner }},
	{"dataOwnerRole", "Owner role", SectionStewardship, func(d *datasets.Dataset) string { return d.OwnerRole }},
	{"dgo", "Governance office", SectionStewardship, func(d *datasets.Dataset) string { return d.Office }},
	{"doSpoc", "Point of contact", SectionStewardship, func(d *datasets.Dataset) string { return d.Contact }},
	{"descriptionValidation", "Readiness notes", SectionStewardship, func(d *datasets.Dataset) string { return d.ReadinessNotes }},

	{"coverage.coverageCount", "Coverage count", SectionCoverage, func(d *datasets.Dataset) string { return strconv.Itoa(d.Detail.Coverage.CoverageCount) }},
	{"coverage.dataFrequency", "Data frequency", SectionCoverage, func(d *datasets.Dataset) string { return d.Detail.Coverage.DataFrequency }},
	{"coverage.dataTypes", "Data types", SectionCoverage, func(d *datasets.Dataset) string { return d.Detail.Coverage.DataTypes }},
	{"coverage.geography", "Geography", SectionCoverage, func(d *datasets.Dataset) string { return d.Detail.Coverage.Geography }},
	{"coverage.history", "History", SectionCoverage, func(d *datasets.Dataset) string { return d.Detail.Coverage.History }},

	{"dataTypes", "Data types", SectionFeatures, func(d *datasets.Dataset) string { return joinLines(d.Detail.DataTypes) }},
	{"features", "Features", SectionFeatures, func(d *datasets.Dataset) string { return joinLines(d.Detail.Features) }},

	{"regions", "Regions", SectionDistribution, func(d *datasets.Dataset) string { return joinInline(d.Detail.Regions) }},
	{"geography", "Geography", SectionDistribution, func(d *datasets.Dataset) string { return joinInline(d.Detail.Geography) }},
	{"languages", "Languages", SectionDistribution, func(d *datasets.Dataset) string { return joinInline(d.Detail.Languages) }},

	{"marketingUrl", "Marketing URL", SectionAccess, func(d *datasets.Dataset) string { return d.Detail.MarketingURL }},
	{"tags", "Tags", SectionAccess, func(d *datasets.Dataset) string { return joinInline(d.Detail.Tags) }},
}

// scoreFields appends the score catalog in fixed display order.
func scoreFields() []field {
	fields := make([]field, 0, len(datasets.ScoreOrder))
	for _, key := range datasets.ScoreOrder {
		key := key
		fields = append(fields, field{
			Key:     string(key),
			Label:   datasets.ScoreLabels[key],
			Section: SectionScores,
			Extract: func(d *datasets.Dataset) string { return strconv.Itoa(d.Detail.Scores.Score(key)) },
		})
	}
	return fields
}

// catalog returns the complete ordered field set, scores included.
func catalog() []field {
	fields := make([]field, 0, len(fieldCatalog)+len(datasets.ScoreOrder))
	fields = append(fields, fieldCatalog...)
	fields = append(fields, scoreFields()...)
	return fields
}

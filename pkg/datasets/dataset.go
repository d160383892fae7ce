// Package datasets defines the dataset governance records managed by
// datatrust: the summary row shown on the portfolio table, the nested
// descriptive detail record, and the deep-copy helpers that keep stored
// and in-flight snapshots structurally independent.
package datasets

// Status represents the delivery readiness of a dataset.
type Status string

// Dataset readiness statuses.
const (
	// StatusOnTrack indicates delivery is aligned with the plan.
	StatusOnTrack Status = "on-track"
	// StatusAtRisk indicates action is required before the next checkpoint.
	StatusAtRisk Status = "at-risk"
	// StatusBlocked indicates delivery is escalated for unblock.
	StatusBlocked Status = "blocked"
)

// String returns the string representation of a Status.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known readiness statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOnTrack, StatusAtRisk, StatusBlocked:
		return true
	}
	return false
}

// NormalizeStatus coerces an arbitrary string to a valid Status,
// preferring the value, then the fallback, then on-track. Matching is
// exact: status values are machine-written, so a case or whitespace
// variant is treated as unknown rather than repaired.
func NormalizeStatus(value string, fallback Status) Status {
	if s := Status(value); s.Valid() {
		return s
	}
	if fallback.Valid() {
		return fallback
	}
	return StatusOnTrack
}

// Summary is the portfolio table row for a dataset: identity plus the
// stewardship fields shown on the list view. Name is the entity identity;
// the model assumes at most one live row per name.
type Summary struct {
	Name           string `json:"datasetName" yaml:"datasetName"`                     // Unique dataset name (renaming is a supported edit)
	Overview       string `json:"datasetSummary" yaml:"datasetSummary"`               // One-line description
	Owner          string `json:"dataOwner" yaml:"dataOwner"`                         // Accountable data owner
	OwnerRole      string `json:"dataOwnerRole" yaml:"dataOwnerRole"`                 // Owner's role/title
	Office         string `json:"dgo" yaml:"dgo"`                                     // Owning data governance office
	Contact        string `json:"doSpoc" yaml:"doSpoc"`                               // Single point of contact
	ReadinessNotes string `json:"descriptionValidation" yaml:"descriptionValidation"` // Validation/readiness notes
	Status         Status `json:"status" yaml:"status"`                               // Readiness status
	Deadline       string `json:"deadline" yaml:"deadline"`                           // Target deadline (YYYY-MM-DD)
}

// CoverageMetric describes the coverage block of a detail record.
type CoverageMetric struct {
	CoverageCount int    `json:"coverageCount" yaml:"coverageCount"`
	DataFrequency string `json:"dataFrequency" yaml:"dataFrequency"`
	DataTypes     string `json:"dataTypes" yaml:"dataTypes"`
	Geography     string `json:"geography" yaml:"geography"`
	History       string `json:"history" yaml:"history"`
}

// ScoreSet holds the eight named quality scores (0-100 expected,
// not enforced at the type level).
type ScoreSet struct {
	Cost         int `json:"costScore" yaml:"costScore"`
	Fundamentals int `json:"fundamentalsScore" yaml:"fundamentalsScore"`
	Overall      int `json:"overallScore" yaml:"overallScore"`
	Performance  int `json:"performanceScore" yaml:"performanceScore"`
	Risk         int `json:"riskScore" yaml:"riskScore"`
	Sentiment    int `json:"sentimentScore" yaml:"sentimentScore"`
	Technical    int `json:"technicalScore" yaml:"technicalScore"`
	Valuations   int `json:"valuationsScore" yaml:"valuationsScore"`
}

// Detail is the descriptive metadata record nested under a dataset.
// Duplicates in the list fields are legal at this layer; deduplication
// happens only at the option-list boundary.
type Detail struct {
	BusinessUnit     string         `json:"businessUnit" yaml:"businessUnit"`
	CoverageCount    int            `json:"coverageCount" yaml:"coverageCount"`
	DataFrequency    string         `json:"dataFrequency" yaml:"dataFrequency"`
	DataTypes        []string       `json:"dataTypes" yaml:"dataTypes"`
	Geography        []string       `json:"geography" yaml:"geography"`
	History          string         `json:"history" yaml:"history"`
	Description      string         `json:"description" yaml:"description"`
	Domain           string         `json:"domain" yaml:"domain"`
	Subdomain        string         `json:"subdomain" yaml:"subdomain"`
	Features         []string       `json:"features" yaml:"features"`
	Languages        []string       `json:"languages" yaml:"languages"`
	MarketingURL     string         `json:"marketingUrl" yaml:"marketingUrl"`
	MinimumFrequency string         `json:"minimumDataFrequency" yaml:"minimumDataFrequency"`
	Name             string         `json:"name" yaml:"name"`
	Regions          []string       `json:"regions" yaml:"regions"`
	Tags             []string       `json:"tags" yaml:"tags"`
	TimePeriod       string         `json:"timePeriod" yaml:"timePeriod"`
	Coverage         CoverageMetric `json:"coverageMetric" yaml:"coverageMetric"`
	Scores           ScoreSet       `json:"scores" yaml:"scores"`
}

// Dataset is the full governance record: the summary row plus its
// nested detail record.
type Dataset struct {
	Summary `yaml:",inline"`
	Detail  Detail `json:"detail" yaml:"detail"`
}

// DetailEntry pairs a dataset name with its detail record, the array
// form accepted by the detail-map parser.
type DetailEntry struct {
	Name   string `json:"datasetName"`
	Detail Detail `json:"detail"`
}

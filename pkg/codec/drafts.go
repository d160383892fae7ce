package codec

import (
	"encoding/json"

	"github.com/agentstation/datatrust/pkg/datasets"
)

// Draft shapes mirror the wire schema with pointer fields so that a
// missing required field is distinguishable from a zero value. A field
// of the wrong primitive type fails the element's unmarshal, which
// drops that element only, never the whole payload.

type summaryDraft struct {
	Name           *string `json:"datasetName"`
	Overview       *string `json:"datasetSummary"`
	Owner          *string `json:"dataOwner"`
	OwnerRole      *string `json:"dataOwnerRole"`
	Office         *string `json:"dgo"`
	Contact        *string `json:"doSpoc"`
	ReadinessNotes *string `json:"descriptionValidation"`
	Status         *string `json:"status"`
	Deadline       *string `json:"deadline"`
}

func (d *summaryDraft) complete() bool {
	if d.Name == nil || d.Overview == nil || d.Owner == nil || d.OwnerRole == nil ||
		d.Office == nil || d.Contact == nil || d.ReadinessNotes == nil || d.Deadline == nil {
		return false
	}
	return d.Status != nil && datasets.Status(*d.Status).Valid()
}

func decodeSummary(raw json.RawMessage) (datasets.Summary, bool) {
	var draft summaryDraft
	if err := json.Unmarshal(raw, &draft); err != nil || !draft.complete() {
		return datasets.Summary{}, false
	}
	return datasets.Summary{
		Name:           *draft.Name,
		Overview:       *draft.Overview,
		Owner:          *draft.Owner,
		OwnerRole:      *draft.OwnerRole,
		Office:         *draft.Office,
		Contact:        *draft.Contact,
		ReadinessNotes: *draft.ReadinessNotes,
		Status:         datasets.Status(*draft.Status),
		Deadline:       *draft.Deadline,
	}, true
}

type coverageDraft struct {
	CoverageCount *int    `json:"coverageCount"`
	DataFrequency *string `json:"dataFrequency"`
	DataTypes     *string `json:"dataTypes"`
	Geography     *string `json:"geography"`
	History       *string `json:"history"`
}

func (d *coverageDraft) complete() bool {
	return d != nil && d.CoverageCount != nil && d.DataFrequency != nil &&
		d.DataTypes != nil && d.Geography != nil && d.History != nil
}

type scoresDraft struct {
	Cost         *int `json:"costScore"`
	Fundamentals *int `json:"fundamentalsScore"`
	Overall      *int `json:"overallScore"`
	Performance  *int `json:"performanceScore"`
	Risk         *int `json:"riskScore"`
	Sentiment    *int `json:"sentimentScore"`
	Technical    *int `json:"technicalScore"`
	Valuations   *int `json:"valuationsScore"`
}

func (d *scoresDraft) complete() bool {
	return d != nil && d.Cost != nil && d.Fundamentals != nil && d.Overall != nil &&
		d.Performance != nil && d.Risk != nil && d.Sentiment != nil &&
		d.Technical != nil && d.Valuations != nil
}

type detailDraft struct {
	BusinessUnit     *string        `json:"businessUnit"`
	CoverageCount    *int           `json:"coverageCount"`
	DataFrequency    *string        `json:"dataFrequency"`
	DataTypes        *[]string      `json:"dataTypes"`
	Geography        *[]string      `json:"geography"`
	History          *string        `json:"history"`
	Description      *string        `json:"description"`
	Domain           *string        `json:"domain"`
	Subdomain        *string        `json:"subdomain"`
	Features         *[]string      `json:"features"`
	Languages        *[]string      `json:"languages"`
	MarketingURL     *string        `json:"marketingUrl"`
	MinimumFrequency *string        `json:"minimumDataFrequency"`
	Name             *string        `json:"name"`
	Regions          *[]string      `json:"regions"`
	Tags             *[]string      `json:"tags"`
	TimePeriod       *string        `json:"timePeriod"`
	Coverage         *coverageDraft `json:"coverageMetric"`
	Scores           *scoresDraft   `json:"scores"`
}

func (d *detailDraft) complete() bool {
	return d.BusinessUnit != nil && d.CoverageCount != nil && d.DataFrequency != nil &&
		d.DataTypes != nil && d.Geography != nil && d.History != nil &&
		d.Description != nil && d.Domain != nil && d.Subdomain != nil &&
		d.Features != nil && d.Languages != nil && d.MarketingURL != nil &&
		d.MinimumFrequency != nil && d.Name != nil && d.Regions != nil &&
		d.Tags != nil && d.TimePeriod != nil &&
		d.Coverage.complete() && d.Scores.complete()
}

func (d *detailDraft) detail() datasets.Detail {
	return datasets.Detail{
		BusinessUnit:     *d.BusinessUnit,
		CoverageCount:    *d.CoverageCount,
		DataFrequency:    *d.DataFrequency,
		DataTypes:        *d.DataTypes,
		Geography:        *d.Geography,
		History:          *d.History,
		Description:      *d.Description,
		Domain:           *d.Domain,
		Subdomain:        *d.Subdomain,
		Features:         *d.Features,
		Languages:        *d.Languages,
		MarketingURL:     *d.MarketingURL,
		MinimumFrequency: *d.MinimumFrequency,
		Name:             *d.Name,
		Regions:          *d.Regions,
		Tags:             *d.Tags,
		TimePeriod:       *d.TimePeriod,
		Coverage: datasets.CoverageMetric{
			CoverageCount: *d.Coverage.CoverageCount,
			DataFrequency: *d.Coverage.DataFrequency,
			DataTypes:     *d.Coverage.DataTypes,
			Geography:     *d.Coverage.Geography,
			History:       *d.Coverage.History,
		},
		Scores: datasets.ScoreSet{
			Cost:         *d.Scores.Cost,
			Fundamentals: *d.Scores.Fundamentals,
			Overall:      *d.Scores.Overall,
			Performance:  *d.Scores.Performance,
			Risk:         *d.Scores.Risk,
			Sentiment:    *d.Scores.Sentiment,
			Technical:    *d.Scores.Technical,
			Valuations:   *d.Scores.Valuations,
		},
	}
}

func decodeDetail(raw json.RawMessage) (datasets.Detail, bool) {
	var draft detailDraft
	if err := json.Unmarshal(raw, &draft); err != nil || !draft.complete() {
		return datasets.Detail{}, false
	}
	return draft.detail(), true
}

type detailEntryDraft struct {
	Name   *string         `json:"datasetName"`
	Detail json.RawMessage `json:"detail"`
}

func decodeDetailEntry(raw json.RawMessage) (datasets.DetailEntry, bool) {
	var draft detailEntryDraft
	if err := json.Unmarshal(raw, &draft); err != nil || draft.Name == nil || len(draft.Detail) == 0 {
		return datasets.DetailEntry{}, false
	}
	detail, ok := decodeDetail(draft.Detail)
	if !ok {
		return datasets.DetailEntry{}, false
	}
	return datasets.DetailEntry{Name: *draft.Name, Detail: detail}, true
}

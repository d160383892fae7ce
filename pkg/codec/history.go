package codec

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/history"
	"github.com/agentstation/datatrust/pkg/logging"
)

// historyEnvelope is the wire shape for change history:
// {"datasets": {"<name>": [versions...]}}.
type historyEnvelope struct {
	Datasets map[string][]json.RawMessage `json:"datasets"`
}

// ParseChangeHistory parses a change-history payload into a history
// map. Each version is individually sanitized: a missing or non-numeric
// version is coerced to a positive integer (default 1), a missing
// timestamp defaults to now, unknown statuses become pending, and
// missing row fields are backfilled from the fallback dataset for that
// name. Versions are sorted ascending after sanitization; names whose
// history sanitizes to empty are dropped entirely. A malformed payload
// yields an empty map.
func ParseChangeHistory(payload string, fallback map[string]datasets.Dataset) map[string][]history.ChangeVersion {
	result := make(map[string][]history.ChangeVersion)
	if strings.TrimSpace(payload) == "" {
		return result
	}

	var envelope historyEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		logging.Debug().Err(err).Msg("Change history payload is malformed; starting empty")
		return result
	}

	for _, name := range sortedHistoryKeys(envelope.Datasets) {
		fallbackRow, hasFallback := fallback[name]
		var fallbackPtr *datasets.Dataset
		if hasFallback {
			fallbackPtr = &fallbackRow
		}

		versions := make([]history.ChangeVersion, 0, len(envelope.Datasets[name]))
		for i, raw := range envelope.Datasets[name] {
			version, ok := sanitizeVersion(raw, fallbackPtr)
			if !ok {
				logging.Debug().Str("dataset", name).Int("index", i).Msg("Dropping unusable change version")
				continue
			}
			versions = append(versions, version)
		}
		if len(versions) == 0 {
			continue
		}
		sort.SliceStable(versions, func(i, j int) bool {
			return versions[i].Version < versions[j].Version
		})
		result[name] = versions
	}
	return result
}

// MarshalChangeHistory serializes a history map back to the exact wire
// shape ParseChangeHistory accepts, pretty-printed for the host to
// persist. Serialization of well-formed history never fails; an empty
// map serializes to an envelope with an empty datasets object.
func MarshalChangeHistory(source map[string][]history.ChangeVersion) string {
	if source == nil {
		source = map[string][]history.ChangeVersion{}
	}
	envelope := struct {
		Datasets map[string][]history.ChangeVersion `json:"datasets"`
	}{Datasets: source}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		// Unreachable for the types involved; keep the host contract anyway.
		logging.Err(err).Msg("Change history serialization failed")
		return `{"datasets":{}}`
	}
	return string(data)
}

type changeVersionDraft struct {
	ID          any            `json:"id"`
	Version     any            `json:"version"`
	SubmittedAt any            `json:"submittedAt"`
	SubmittedBy any            `json:"submittedBy"`
	Status      any            `json:"status"`
	Approval    *approvalDraft `json:"approval"`
	Renames     any            `json:"renames"`
	Row         *rowDraft      `json:"row"`
}

type approvalDraft struct {
	By any `json:"by"`
	At any `json:"at"`
}

type rowDraft struct {
	Name           *string          `json:"datasetName"`
	Overview       *string          `json:"datasetSummary"`
	Owner          *string          `json:"dataOwner"`
	OwnerRole      *string          `json:"dataOwnerRole"`
	Office         *string          `json:"dgo"`
	Contact        *string          `json:"doSpoc"`
	ReadinessNotes *string          `json:"descriptionValidation"`
	Status         *string          `json:"status"`
	Deadline       *string          `json:"deadline"`
	Detail         *datasets.Detail `json:"detail"`
}

// sanitizeVersion coerces one raw history entry into a usable change
// version, backfilling from the fallback dataset. It returns false only
// when the entry is not an object or when neither the entry nor the
// fallback can supply a row and detail.
func sanitizeVersion(raw json.RawMessage, fallback *datasets.Dataset) (history.ChangeVersion, bool) {
	var draft changeVersionDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return history.ChangeVersion{}, false
	}

	row, ok := sanitizeRow(draft.Row, fallback)
	if !ok {
		return history.ChangeVersion{}, false
	}

	submittedAt := coerceTime(draft.SubmittedAt, utc.Now())
	status := history.StatusPending
	if s, ok := draft.Status.(string); ok && history.VersionStatus(s) == history.StatusApproved {
		status = history.StatusApproved
	}

	version := history.ChangeVersion{
		ID:          coerceString(draft.ID, ""),
		Version:     coerceVersionNumber(draft.Version),
		SubmittedAt: submittedAt,
		SubmittedBy: coerceString(draft.SubmittedBy, ""),
		Status:      status,
		Renames:     coerceString(draft.Renames, ""),
		Row:         row,
	}
	// Approval is present iff the version is approved.
	if status == history.StatusApproved {
		approval := &history.Approval{At: submittedAt}
		if draft.Approval != nil {
			approval.By = coerceString(draft.Approval.By, "")
			approval.At = coerceTime(draft.Approval.At, submittedAt)
		}
		version.Approval = approval
	}
	return version, true
}

func sanitizeRow(draft *rowDraft, fallback *datasets.Dataset) (datasets.Dataset, bool) {
	if draft == nil {
		if fallback == nil {
			return datasets.Dataset{}, false
		}
		return datasets.CloneDataset(*fallback), true
	}

	detail := draft.Detail
	if detail == nil {
		if fallback == nil {
			return datasets.Dataset{}, false
		}
		fallbackDetail := fallback.Detail
		detail = &fallbackDetail
	}

	var fallbackSummary datasets.Summary
	if fallback != nil {
		fallbackSummary = fallback.Summary
	}
	fallbackStatus := fallbackSummary.Status

	row := datasets.Dataset{
		Summary: datasets.Summary{
			Name:           pick(draft.Name, fallbackSummary.Name),
			Overview:       pick(draft.Overview, fallbackSummary.Overview),
			Owner:          pick(draft.Owner, fallbackSummary.Owner),
			OwnerRole:      pick(draft.OwnerRole, fallbackSummary.OwnerRole),
			Office:         pick(draft.Office, fallbackSummary.Office),
			Contact:        pick(draft.Contact, fallbackSummary.Contact),
			ReadinessNotes: pick(draft.ReadinessNotes, fallbackSummary.ReadinessNotes),
			Status:         datasets.NormalizeStatus(pick(draft.Status, ""), fallbackStatus),
			Deadline:       pick(draft.Deadline, fallbackSummary.Deadline),
		},
		Detail: datasets.CloneDetail(*detail),
	}
	return row, true
}

func pick(value *string, fallback string) string {
	if value != nil {
		return *value
	}
	return fallback
}

func coerceString(value any, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

// coerceVersionNumber accepts numbers and numeric strings, flooring to
// a positive integer; anything else becomes 1.
func coerceVersionNumber(value any) int {
	switch v := value.(type) {
	case float64:
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return int(math.Floor(v))
		}
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			return int(math.Floor(parsed))
		}
	}
	return 1
}

func coerceTime(value any, fallback utc.Time) utc.Time {
	s, ok := value.(string)
	if !ok || s == "" {
		return fallback
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fallback
	}
	return utc.Time{Time: parsed.UTC()}
}

func sortedHistoryKeys(m map[string][]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

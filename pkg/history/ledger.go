package history

import (
	"sort"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/errors"
	"github.com/agentstation/datatrust/pkg/logging"
)

// Ledger owns the change history map and the ingested baseline map for
// a session. It is the single writer for both; callers receive deep
// clones and must route every mutation through Propose and Approve.
//
// The ledger is not safe for concurrent use. The supported deployment
// has exactly one logical writer, so no locking is performed.
type Ledger struct {
	history   map[string][]ChangeVersion
	baselines map[string]datasets.Dataset
	now       func() utc.Time
	newID     func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() utc.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDFunc overrides the change-version ID generator, for tests.
func WithIDFunc(newID func() string) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// WithHistory seeds the ledger with a previously parsed history map.
// The map is deep-copied; the caller's copy stays independent.
func WithHistory(source map[string][]ChangeVersion) Option {
	return func(l *Ledger) {
		for name, versions := range source {
			l.history[name] = CloneVersions(versions)
		}
	}
}

// New creates a ledger over the ingested baseline rows.
func New(rows []datasets.Dataset, opts ...Option) *Ledger {
	l := &Ledger{
		history:   make(map[string][]ChangeVersion),
		baselines: datasets.MapByName(rows),
		now:       utc.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Propose appends a pending change version for the dataset currently
// known as name. The next version number is one greater than the
// highest existing version (1 when no history exists). When the edit
// renames the dataset, the entire history and the baseline key move to
// the new name; history is never duplicated or lost across a rename.
func (l *Ledger) Propose(name string, edited datasets.Dataset, user string) (ChangeVersion, error) {
	if name == "" {
		return ChangeVersion{}, errors.NewValidationError("datasetName", "no dataset selected")
	}
	if edited.Name == "" {
		return ChangeVersion{}, errors.NewValidationError("datasetName", "dataset name cannot be empty")
	}

	versions := l.history[name]
	next := 1
	for _, version := range versions {
		if version.Version >= next {
			next = version.Version + 1
		}
	}

	entry := ChangeVersion{
		ID:          l.newID(),
		Version:     next,
		SubmittedAt: l.now(),
		SubmittedBy: user,
		Status:      StatusPending,
		Row:         datasets.CloneDataset(edited),
	}
	if edited.Name != name {
		// The prior name travels with the entry so derivation can
		// retire the old baseline even after the history round-trips
		// through the host.
		entry.Renames = name
	}
	versions = append(CloneVersions(versions), entry)

	if edited.Name != name {
		delete(l.history, name)
		if baseline, ok := l.baselines[name]; ok {
			delete(l.baselines, name)
			l.baselines[edited.Name] = baseline
		}
		logging.Debug().
			Str("from", name).
			Str("to", edited.Name).
			Msg("Dataset renamed by proposal")
	}
	l.history[edited.Name] = versions

	logging.Debug().
		Str("dataset", edited.Name).
		Int("version", entry.Version).
		Str("user", user).
		Msg("Proposal recorded")

	return entry.Clone(), nil
}

// Approve promotes the change version at the 1-based index to approved,
// stamping the approval record, and returns the newly approved snapshot
// as the dataset's new baseline. Approving an already approved version
// is an idempotent success. A missing dataset or index is a no-op
// returning ErrNotFound; no state is mutated.
func (l *Ledger) Approve(name string, versionIndex int, user string) (datasets.Dataset, error) {
	versions, ok := l.history[name]
	if !ok {
		return datasets.Dataset{}, errors.NewNotFoundError("dataset", name)
	}
	if versionIndex < 1 || versionIndex > len(versions) {
		return datasets.Dataset{}, errors.NewNotFoundError("version", name)
	}

	entry := versions[versionIndex-1]
	if entry.Approved() {
		return datasets.CloneDataset(entry.Row), nil
	}

	approved := entry.Clone()
	approved.Status = StatusApproved
	approved.Approval = &Approval{By: user, At: l.now()}

	// Replace the element with an updated copy rather than mutating in
	// place; history entries stay trivially comparable.
	next := CloneVersions(versions)
	next[versionIndex-1] = approved
	l.history[name] = next

	logging.Debug().
		Str("dataset", name).
		Int("version", approved.Version).
		Str("user", user).
		Msg("Version approved")

	return datasets.CloneDataset(approved.Row), nil
}

// Derive folds approved history into the ingested baselines and returns
// the current approved set keyed by dataset name. For each dataset with
// at least one approved version, the latest approved version by version
// number replaces the baseline; a rename supersedes the old key.
// Deterministic and idempotent: identical inputs yield identical output.
func (l *Ledger) Derive() map[string]datasets.Dataset {
	// Names consumed by an approved history: the history key, every
	// name its snapshots carried, and every prior name its rename
	// entries record. The rename record is what retires the old-name
	// baseline when the ledger is rebuilt from a host round-trip,
	// where the ingested baselines still use the pre-rename name.
	superseded := make(map[string]bool)
	for key, versions := range l.history {
		if _, ok := LatestApproved(versions); !ok {
			continue
		}
		superseded[key] = true
		for _, version := range versions {
			superseded[version.Row.Name] = true
			if version.Renames != "" {
				superseded[version.Renames] = true
			}
		}
	}

	result := make(map[string]datasets.Dataset, len(l.baselines))
	for _, key := range sortedKeys(l.baselines) {
		baseline := l.baselines[key]
		if superseded[key] || superseded[baseline.Name] {
			continue
		}
		result[baseline.Name] = datasets.CloneDataset(baseline)
	}
	for _, key := range sortedKeys(l.history) {
		if latest, ok := LatestApproved(l.history[key]); ok {
			result[latest.Row.Name] = latest.Row
		}
	}

	return result
}

// DeriveList returns the derived approved set ordered by dataset name.
func (l *Ledger) DeriveList() []datasets.Dataset {
	derived := l.Derive()
	result := make([]datasets.Dataset, 0, len(derived))
	for _, name := range sortedKeys(derived) {
		result = append(result, derived[name])
	}
	return result
}

// RowForVersion resolves the snapshot to display for a dataset at a
// version index: 0 is the baseline, k>0 is the k-th history entry in
// ascending version order. The fallback chain is history entry, then
// ingested baseline, then the currently displayed row, then an empty
// placeholder, so callers never render undefined state.
func (l *Ledger) RowForVersion(name string, versionIndex int, current *datasets.Dataset) datasets.Dataset {
	if versionIndex > 0 {
		versions := l.history[name]
		if versionIndex <= len(versions) {
			return datasets.CloneDataset(versions[versionIndex-1].Row)
		}
	}
	if baseline, ok := l.baselines[name]; ok {
		return datasets.CloneDataset(baseline)
	}
	if current != nil {
		return datasets.CloneDataset(*current)
	}
	return datasets.EmptyDataset(name)
}

// History returns a deep copy of the change versions recorded for a
// dataset, in ascending version order.
func (l *Ledger) History(name string) []ChangeVersion {
	return CloneVersions(l.history[name])
}

// Baseline returns a deep copy of the ingested baseline for a dataset.
func (l *Ledger) Baseline(name string) (datasets.Dataset, bool) {
	baseline, ok := l.baselines[name]
	if !ok {
		return datasets.Dataset{}, false
	}
	return datasets.CloneDataset(baseline), true
}

// Snapshot returns a deep copy of the full history map, suitable for
// serialization back to the host.
func (l *Ledger) Snapshot() map[string][]ChangeVersion {
	return CloneMap(l.history)
}

// Names returns the dataset names with recorded history, sorted.
func (l *Ledger) Names() []string {
	return sortedKeys(l.history)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Package history implements the change-proposal and approval engine:
// an append-only, versioned log of proposed dataset edits, the
// pending-to-approved state machine, and the derivation of the current
// approved baseline set.
package history

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/datatrust/pkg/datasets"
)

// VersionStatus is the approval state of a change version.
type VersionStatus string

const (
	// StatusPending indicates a proposal awaiting approval.
	StatusPending VersionStatus = "pending"
	// StatusApproved indicates a proposal promoted to baseline.
	StatusApproved VersionStatus = "approved"
)

// Valid reports whether s is a known version status.
func (s VersionStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

// Approval records who approved a change version and when.
type Approval struct {
	By string   `json:"by"`
	At utc.Time `json:"at"`
}

// ChangeVersion is an immutable proposal: a full snapshot of the edited
// dataset plus submission and approval metadata. Entries are never
// mutated in place except the single pending-to-approved transition,
// which replaces the entry with an updated copy.
type ChangeVersion struct {
	ID          string           `json:"id,omitempty"`       // Audit identifier, stamped at propose time
	Version     int              `json:"version"`            // Monotonically increasing per dataset, starting at 1
	SubmittedAt utc.Time         `json:"submittedAt"`        // Submission timestamp
	SubmittedBy string           `json:"submittedBy"`        // Display name of the proposing reviewer
	Status      VersionStatus    `json:"status"`             // pending or approved
	Approval    *Approval        `json:"approval,omitempty"` // Present iff Status == approved
	Renames     string           `json:"renames,omitempty"`  // Prior dataset name when this proposal renamed it
	Row         datasets.Dataset `json:"row"`                // Full snapshot of the proposed dataset
}

// Approved reports whether the version has been promoted to baseline.
func (v ChangeVersion) Approved() bool {
	return v.Status == StatusApproved
}

// Clone returns a deep copy of the change version.
func (v ChangeVersion) Clone() ChangeVersion {
	versionCopy := v
	versionCopy.Row = datasets.CloneDataset(v.Row)
	if v.Approval != nil {
		approval := *v.Approval
		versionCopy.Approval = &approval
	}
	return versionCopy
}

// CloneVersions returns a deep copy of a change version slice.
// Returns nil if the input slice is nil.
func CloneVersions(versions []ChangeVersion) []ChangeVersion {
	if versions == nil {
		return nil
	}
	result := make([]ChangeVersion, len(versions))
	for i, version := range versions {
		result[i] = version.Clone()
	}
	return result
}

// CloneMap returns a deep copy of a history map.
// Returns nil if the input map is nil.
func CloneMap(source map[string][]ChangeVersion) map[string][]ChangeVersion {
	if source == nil {
		return nil
	}
	result := make(map[string][]ChangeVersion, len(source))
	for name, versions := range source {
		result[name] = CloneVersions(versions)
	}
	return result
}

// LatestApproved returns the approved entry with the highest version
// number, or false when no entry is approved. Approval order in the
// slice does not matter; version number does.
func LatestApproved(versions []ChangeVersion) (ChangeVersion, bool) {
	var latest ChangeVersion
	found := false
	for _, version := range versions {
		if !version.Approved() {
			continue
		}
		if !found || version.Version > latest.Version {
			latest = version
			found = true
		}
	}
	if !found {
		return ChangeVersion{}, false
	}
	return latest.Clone(), true
}

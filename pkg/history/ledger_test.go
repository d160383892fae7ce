package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/datatrust/pkg/datasets"
	"github.com/agentstation/datatrust/pkg/errors"
)

func testLedger() *Ledger {
	clock := utc.Time{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	ids := 0
	return New(datasets.DefaultDatasets(),
		WithClock(func() utc.Time { return clock }),
		WithIDFunc(func() string { ids++; return fmt.Sprintf("cv-%d", ids) }),
	)
}

func editedRow(l *Ledger, name string, edit func(*datasets.Dataset)) datasets.Dataset {
	row := l.RowForVersion(name, 0, nil)
	edit(&row)
	return row
}

func TestProposeVersionNumbers(t *testing.T) {
	l := testLedger()
	const name = "Global Equity Trades"

	for i := 1; i <= 3; i++ {
		entry, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
			r.Deadline = fmt.Sprintf("2026-0%d-01", i)
		}), "dana")
		require.NoError(t, err)
		assert.Equal(t, i, entry.Version)
		assert.Equal(t, StatusPending, entry.Status)
		assert.NotEmpty(t, entry.ID)
	}
	assert.Len(t, l.History(name), 3)
}

func TestProposeValidation(t *testing.T) {
	l := testLedger()

	_, err := l.Propose("", datasets.EmptyDataset("x"), "dana")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = l.Propose("Global Equity Trades", datasets.Dataset{}, "dana")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestProposeRenameMovesHistory(t *testing.T) {
	l := testLedger()
	const oldName = "Global Equity Trades"
	const newName = "Global Equity Flows"

	_, err := l.Propose(oldName, editedRow(l, oldName, func(r *datasets.Dataset) {
		r.Deadline = "2026-06-30"
	}), "dana")
	require.NoError(t, err)

	_, err = l.Propose(oldName, editedRow(l, oldName, func(r *datasets.Dataset) {
		r.Name = newName
	}), "dana")
	require.NoError(t, err)

	assert.Empty(t, l.History(oldName))
	versions := l.History(newName)
	require.Len(t, versions, 2)
	assert.Equal(t, 1, versions[0].Version)
	assert.Equal(t, 2, versions[1].Version)
	assert.Empty(t, versions[0].Renames)
	assert.Equal(t, oldName, versions[1].Renames)

	_, ok := l.Baseline(oldName)
	assert.False(t, ok)
	_, ok = l.Baseline(newName)
	assert.True(t, ok)
}

func TestApprove(t *testing.T) {
	l := testLedger()
	const name = "ESG Ratings Vault"

	_, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
		r.Status = datasets.StatusOnTrack
	}), "dana")
	require.NoError(t, err)

	t.Run("missing dataset", func(t *testing.T) {
		_, err := l.Approve("Nope", 1, "mike")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("missing version index", func(t *testing.T) {
		_, err := l.Approve(name, 2, "mike")
		assert.ErrorIs(t, err, errors.ErrNotFound)
		_, err = l.Approve(name, 0, "mike")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("approval stamps the record", func(t *testing.T) {
		row, err := l.Approve(name, 1, "mike")
		require.NoError(t, err)
		assert.Equal(t, datasets.StatusOnTrack, row.Status)

		versions := l.History(name)
		require.Len(t, versions, 1)
		assert.Equal(t, StatusApproved, versions[0].Status)
		require.NotNil(t, versions[0].Approval)
		assert.Equal(t, "mike", versions[0].Approval.By)
	})

	t.Run("idempotent", func(t *testing.T) {
		before := l.Derive()
		row, err := l.Approve(name, 1, "someone-else")
		require.NoError(t, err)
		assert.Equal(t, datasets.StatusOnTrack, row.Status)
		assert.Equal(t, before, l.Derive())

		// First approver is preserved.
		assert.Equal(t, "mike", l.History(name)[0].Approval.By)
	})
}

func TestDerive(t *testing.T) {
	t.Run("no history keeps baselines", func(t *testing.T) {
		l := testLedger()
		derived := l.Derive()
		assert.Len(t, derived, len(datasets.DefaultDatasets()))
	})

	t.Run("pending proposals do not change the baseline", func(t *testing.T) {
		l := testLedger()
		const name = "Fixed Income Curves"
		baseline, _ := l.Baseline(name)

		_, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
			r.Deadline = "2027-01-01"
		}), "dana")
		require.NoError(t, err)

		assert.Equal(t, baseline.Deadline, l.Derive()[name].Deadline)
	})

	t.Run("latest approved version wins", func(t *testing.T) {
		l := testLedger()
		const name = "Fixed Income Curves"

		for _, deadline := range []string{"2026-05-01", "2026-07-01", "2026-09-01"} {
			deadline := deadline
			_, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
				r.Deadline = deadline
			}), "dana")
			require.NoError(t, err)
		}

		// Approve v2 while v3 stays pending: derived row shows v2 and
		// the pending v3 survives untouched.
		_, err := l.Approve(name, 2, "mike")
		require.NoError(t, err)
		assert.Equal(t, "2026-07-01", l.Derive()[name].Deadline)
		assert.Equal(t, StatusPending, l.History(name)[2].Status)

		_, err = l.Approve(name, 1, "mike")
		require.NoError(t, err)
		assert.Equal(t, "2026-07-01", l.Derive()[name].Deadline, "higher approved version still wins")
	})

	t.Run("deterministic", func(t *testing.T) {
		l := testLedger()
		_, err := l.Propose("Trade Surveillance Alerts", editedRow(l, "Trade Surveillance Alerts", func(r *datasets.Dataset) {
			r.Status = datasets.StatusOnTrack
		}), "dana")
		require.NoError(t, err)
		_, err = l.Approve("Trade Surveillance Alerts", 1, "mike")
		require.NoError(t, err)
		assert.Equal(t, l.Derive(), l.Derive())
	})
}

func TestDeriveRename(t *testing.T) {
	l := testLedger()
	const oldName = "Global Equity Trades"
	const newName = "Global Equity Flows"

	_, err := l.Propose(oldName, editedRow(l, oldName, func(r *datasets.Dataset) {
		r.Name = newName
		r.Deadline = "2026-12-31"
	}), "dana")
	require.NoError(t, err)
	_, err = l.Approve(newName, 1, "mike")
	require.NoError(t, err)

	derived := l.Derive()
	assert.NotContains(t, derived, oldName)
	require.Contains(t, derived, newName)
	assert.Equal(t, "2026-12-31", derived[newName].Deadline)
	assert.Len(t, derived, len(datasets.DefaultDatasets()))
}

func TestDeriveRenameAfterRoundTrip(t *testing.T) {
	// After history round-trips through the host, the ledger is rebuilt
	// with the original baselines but history keyed under the new name.
	// The stale old-name baseline must still be superseded.
	l := testLedger()
	const oldName = "Global Equity Trades"
	const newName = "Global Equity Flows"

	_, err := l.Propose(oldName, editedRow(l, oldName, func(r *datasets.Dataset) {
		r.Name = newName
	}), "dana")
	require.NoError(t, err)
	_, err = l.Approve(newName, 1, "mike")
	require.NoError(t, err)

	rebuilt := New(datasets.DefaultDatasets(), WithHistory(l.Snapshot()))
	derived := rebuilt.Derive()
	assert.NotContains(t, derived, oldName)
	assert.Contains(t, derived, newName)
	assert.Len(t, derived, len(datasets.DefaultDatasets()))
}

func TestRowForVersion(t *testing.T) {
	l := testLedger()
	const name = "ESG Ratings Vault"

	_, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
		r.Deadline = "2026-08-15"
	}), "dana")
	require.NoError(t, err)

	t.Run("history entry", func(t *testing.T) {
		assert.Equal(t, "2026-08-15", l.RowForVersion(name, 1, nil).Deadline)
	})

	t.Run("baseline for index zero", func(t *testing.T) {
		baseline, _ := l.Baseline(name)
		assert.Equal(t, baseline, l.RowForVersion(name, 0, nil))
	})

	t.Run("out of range falls back to baseline", func(t *testing.T) {
		baseline, _ := l.Baseline(name)
		assert.Equal(t, baseline, l.RowForVersion(name, 9, nil))
	})

	t.Run("unknown name falls back to current then placeholder", func(t *testing.T) {
		current := datasets.EmptyDataset("Loose Row")
		current.Deadline = "2026-01-01"
		assert.Equal(t, current, l.RowForVersion("Loose Row", 2, &current))

		placeholder := l.RowForVersion("Loose Row", 2, nil)
		assert.Equal(t, "Loose Row", placeholder.Name)
		assert.Equal(t, datasets.StatusOnTrack, placeholder.Status)
	})
}

func TestAccessorsReturnClones(t *testing.T) {
	l := testLedger()
	const name = "Global Equity Trades"

	_, err := l.Propose(name, editedRow(l, name, func(r *datasets.Dataset) {
		r.Deadline = "2026-10-01"
	}), "dana")
	require.NoError(t, err)

	versions := l.History(name)
	versions[0].Row.Deadline = "mutated"
	assert.Equal(t, "2026-10-01", l.History(name)[0].Row.Deadline)

	snapshot := l.Snapshot()
	snapshot[name][0].Row.Detail.Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", l.History(name)[0].Row.Detail.Tags[0])
}

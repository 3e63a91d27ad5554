package delta

import (
	"fmt"

	"github.com/planora/planora/internal/model"
)

// EntityDelta is the change set for one collection. Created and Updated
// carry full records (updates are whole-record replacements); Deleted
// carries only ids.
type EntityDelta[T any] struct {
	Created []T      `json:"created"`
	Updated []T      `json:"updated"`
	Deleted []string `json:"deleted"`
}

// Empty reports whether the collection has no pending changes.
func (d EntityDelta[T]) Empty() bool {
	return len(d.Created) == 0 && len(d.Updated) == 0 && len(d.Deleted) == 0
}

func (d EntityDelta[T]) changeCount() int {
	return len(d.Created) + len(d.Updated) + len(d.Deleted)
}

// Delta is the full change set between baseline and present.
type Delta struct {
	// BudgetTotal is set only when the figure differs from baseline.
	BudgetTotal *float64 `json:"budgetTotal,omitempty"`

	Guests      EntityDelta[model.Guest]       `json:"guests"`
	GuestGroups EntityDelta[model.GuestGroup]  `json:"guestGroups"`
	Expenses    EntityDelta[model.ExpenseItem] `json:"expenses"`
}

// Empty reports whether nothing changed since baseline.
func (d Delta) Empty() bool {
	return d.BudgetTotal == nil && d.Guests.Empty() && d.GuestGroups.Empty() && d.Expenses.Empty()
}

// TotalChanges sums created+updated+deleted across all collections.
// The budget figure does not count; it rides along with either payload.
func (d Delta) TotalChanges() int {
	return d.Guests.changeCount() + d.GuestGroups.changeCount() + d.Expenses.changeCount()
}

// Tracker remembers the baseline plan and per-entity content hashes taken
// when the baseline was set. Like the history store it is owned by a
// single editing session and is not synchronized.
type Tracker struct {
	baseline     *model.Plan
	guestHashes  map[string]string
	groupHashes  map[string]string
	expenseHashes map[string]string
}

// NewTracker creates a tracker with the given plan as baseline.
func NewTracker(baseline *model.Plan) (*Tracker, error) {
	t := &Tracker{}
	if err := t.Reset(baseline); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset advances the baseline to the given plan. Called on load and from
// MarkSynced; never called on a failed write.
func (t *Tracker) Reset(baseline *model.Plan) error {
	if baseline == nil {
		baseline = model.TemplatePlan()
	}

	guestHashes := make(map[string]string, len(baseline.Guests))
	for _, g := range baseline.Guests {
		h, err := model.GuestHash(g)
		if err != nil {
			return fmt.Errorf("baseline guest %s: %w", g.ID, err)
		}
		guestHashes[g.ID] = h
	}
	groupHashes := make(map[string]string, len(baseline.GuestGroups))
	for _, gr := range baseline.GuestGroups {
		h, err := model.GroupHash(gr)
		if err != nil {
			return fmt.Errorf("baseline group %s: %w", gr.ID, err)
		}
		groupHashes[gr.ID] = h
	}
	expenseHashes := make(map[string]string, len(baseline.Expenses))
	for _, e := range baseline.Expenses {
		h, err := model.ExpenseHash(e)
		if err != nil {
			return fmt.Errorf("baseline expense %s: %w", e.ID, err)
		}
		expenseHashes[e.ID] = h
	}

	t.baseline = baseline.Clone()
	t.guestHashes = guestHashes
	t.groupHashes = groupHashes
	t.expenseHashes = expenseHashes
	return nil
}

// Baseline returns the tracked baseline plan (read-only).
func (t *Tracker) Baseline() *model.Plan {
	return t.baseline
}

// MarkSynced advances the baseline to the given present plan. Call it only
// after the persistence collaborator confirmed durability: calling it
// after a failed write silently drops unsynced changes, and skipping it
// after a successful one resends them.
func (t *Tracker) MarkSynced(present *model.Plan) error {
	return t.Reset(present)
}

// Deltas diffs the present plan against the baseline. The caller takes
// the returned snapshot before issuing an asynchronous write; edits made
// while that write is in flight surface in the next call because the
// baseline only advances on MarkSynced.
func (t *Tracker) Deltas(present *model.Plan) (Delta, error) {
	var d Delta

	if present.BudgetTotal != t.baseline.BudgetTotal {
		v := present.BudgetTotal
		d.BudgetTotal = &v
	}

	presentGuests := make(map[string]bool, len(present.Guests))
	for _, g := range present.Guests {
		presentGuests[g.ID] = true
		baseHash, existed := t.guestHashes[g.ID]
		if !existed {
			d.Guests.Created = append(d.Guests.Created, g)
			continue
		}
		h, err := model.GuestHash(g)
		if err != nil {
			return Delta{}, fmt.Errorf("diff guest %s: %w", g.ID, err)
		}
		if h != baseHash {
			d.Guests.Updated = append(d.Guests.Updated, g)
		}
	}
	for _, g := range t.baseline.Guests {
		if !presentGuests[g.ID] {
			d.Guests.Deleted = append(d.Guests.Deleted, g.ID)
		}
	}

	presentGroups := make(map[string]bool, len(present.GuestGroups))
	for _, gr := range present.GuestGroups {
		presentGroups[gr.ID] = true
		baseHash, existed := t.groupHashes[gr.ID]
		if !existed {
			d.GuestGroups.Created = append(d.GuestGroups.Created, gr)
			continue
		}
		h, err := model.GroupHash(gr)
		if err != nil {
			return Delta{}, fmt.Errorf("diff group %s: %w", gr.ID, err)
		}
		if h != baseHash {
			d.GuestGroups.Updated = append(d.GuestGroups.Updated, gr)
		}
	}
	for _, gr := range t.baseline.GuestGroups {
		if !presentGroups[gr.ID] {
			d.GuestGroups.Deleted = append(d.GuestGroups.Deleted, gr.ID)
		}
	}

	presentExpenses := make(map[string]bool, len(present.Expenses))
	for _, e := range present.Expenses {
		presentExpenses[e.ID] = true
		baseHash, existed := t.expenseHashes[e.ID]
		if !existed {
			d.Expenses.Created = append(d.Expenses.Created, e)
			continue
		}
		h, err := model.ExpenseHash(e)
		if err != nil {
			return Delta{}, fmt.Errorf("diff expense %s: %w", e.ID, err)
		}
		if h != baseHash {
			d.Expenses.Updated = append(d.Expenses.Updated, e)
		}
	}
	for _, e := range t.baseline.Expenses {
		if !presentExpenses[e.ID] {
			d.Expenses.Deleted = append(d.Expenses.Deleted, e.ID)
		}
	}

	return d, nil
}

// HasPendingChanges reports whether anything changed since baseline.
// Auto-save schedulers poll this.
func (t *Tracker) HasPendingChanges(present *model.Plan) (bool, error) {
	d, err := t.Deltas(present)
	if err != nil {
		return false, err
	}
	return !d.Empty(), nil
}

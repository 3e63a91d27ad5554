// Package session owns one editing session: a history store, a delta
// tracker sharing the same plan, and the sync handshake with a
// persistence collaborator.
//
// Sessions are plain values created per editor (per event, per tab, per
// request); nothing in this package or below it is a singleton, so any
// number of sessions coexist in one process without cross-talk.
package session

import (
	"context"
	"fmt"

	"github.com/planora/planora/internal/delta"
	"github.com/planora/planora/internal/history"
	"github.com/planora/planora/internal/model"
)

// Persister is the persistence collaborator boundary. Implementations
// accept either a full plan or a delta change set and report durability
// through the error return. They never call back into the session.
type Persister interface {
	SaveFull(ctx context.Context, p *model.Plan) error
	SaveDelta(ctx context.Context, d delta.Delta) error
}

// Loader is the initial-load collaborator: it supplies a persisted plan,
// or nil when none exists (the session then starts from the template).
type Loader interface {
	LoadPlan(ctx context.Context) (*model.Plan, error)
}

// Session binds an undo/redo store and a delta tracker to one plan.
type Session struct {
	hist    *history.Store
	tracker *delta.Tracker
}

// New starts a session on the given plan (nil = template). The plan is
// simultaneously the present state and the sync baseline, so a freshly
// loaded session has no pending changes.
func New(initial *model.Plan) (*Session, error) {
	if initial == nil {
		initial = model.TemplatePlan()
	}
	tracker, err := delta.NewTracker(initial)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &Session{
		hist:    history.New(initial),
		tracker: tracker,
	}, nil
}

// Open starts a session from the initial-load collaborator, falling back
// to the template plan when the loader has nothing.
func Open(ctx context.Context, l Loader) (*Session, error) {
	p, err := l.LoadPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return New(p)
}

// Plan returns the present plan (read-only).
func (s *Session) Plan() *model.Plan {
	return s.hist.Present()
}

// Execute applies an edit. Returns true when the plan changed.
func (s *Session) Execute(a history.Action) bool {
	return s.hist.Execute(a)
}

// Undo steps the plan back one frame. The sync baseline is untouched, so
// undoing a synced edit simply makes the reversal the next pending change.
func (s *Session) Undo() bool { return s.hist.Undo() }

// Redo reapplies the last undone frame.
func (s *Session) Redo() bool { return s.hist.Redo() }

// CanUndo reports whether an undo frame exists.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo frame exists.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Load replaces the plan wholesale and resets both the history (a load is
// not undoable) and the sync baseline in one step.
func (s *Session) Load(p *model.Plan) error {
	if p == nil {
		p = model.TemplatePlan()
	}
	s.hist.LoadState(p)
	if err := s.tracker.Reset(s.hist.Present()); err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	return nil
}

// Deltas returns the pending change set against the sync baseline.
func (s *Session) Deltas() (delta.Delta, error) {
	return s.tracker.Deltas(s.hist.Present())
}

// HasPendingChanges reports whether a sync would transfer anything.
// Auto-save schedulers poll this on their own interval.
func (s *Session) HasPendingChanges() (bool, error) {
	return s.tracker.HasPendingChanges(s.hist.Present())
}

// SyncResult describes what a Sync call did.
type SyncResult struct {
	Strategy delta.Strategy `json:"strategy"`
	Changes  int            `json:"changes"`
	Skipped  bool           `json:"skipped"` // nothing was pending
}

// Sync captures a consistent snapshot of the present plan, transfers it
// to the persister using the recommended strategy, and advances the
// baseline only on success.
//
// The snapshot is taken synchronously before the write, so edits arriving
// while the write is in flight land in the next delta rather than being
// lost or double-sent. On failure the baseline stays put and the error is
// surfaced to the caller; there is no internal retry.
func (s *Session) Sync(ctx context.Context, p Persister) (SyncResult, error) {
	snapshot := s.hist.Present()
	d, err := s.tracker.Deltas(snapshot)
	if err != nil {
		return SyncResult{}, fmt.Errorf("sync plan: %w", err)
	}
	if d.Empty() {
		return SyncResult{Strategy: delta.StrategyDelta, Skipped: true}, nil
	}

	totalItems := len(snapshot.Guests) + len(snapshot.GuestGroups) + len(snapshot.Expenses)
	result := SyncResult{
		Strategy: d.Recommend(totalItems),
		Changes:  d.TotalChanges(),
	}

	switch result.Strategy {
	case delta.StrategyFull:
		err = p.SaveFull(ctx, snapshot)
	default:
		err = p.SaveDelta(ctx, d)
	}
	if err != nil {
		return SyncResult{}, fmt.Errorf("sync plan: %w", err)
	}

	if err := s.tracker.MarkSynced(snapshot); err != nil {
		return SyncResult{}, fmt.Errorf("sync plan: advance baseline: %w", err)
	}
	return result, nil
}

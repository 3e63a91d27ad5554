package history

import "github.com/planora/planora/internal/model"

// Store is the undo/redo container around the present plan.
//
// Invariants:
//   - present is never nil.
//   - Execute clears future (an edit after undo discards the redo branch).
//   - A frame is pushed only when the reducer actually changed the plan.
type Store struct {
	past    []*model.Plan
	present *model.Plan
	future  []*model.Plan
}

// New creates a store with the given initial plan and empty history.
// A nil initial plan starts from the template.
func New(initial *model.Plan) *Store {
	if initial == nil {
		initial = model.TemplatePlan()
	}
	return &Store{present: initial}
}

// Present returns the current plan. Callers must treat it as read-only;
// all edits go through Execute.
func (s *Store) Present() *model.Plan {
	return s.present
}

// Execute applies an action through the reducer. Returns true when the
// plan changed (and a history frame was recorded), false for absorbed
// no-ops.
func (s *Store) Execute(a Action) bool {
	next := Reduce(s.present, a)
	if next == s.present {
		return false
	}
	s.past = append(s.past, s.present)
	s.present = next
	s.future = nil
	return true
}

// Undo steps back one frame. Returns false when there is nothing to undo.
func (s *Store) Undo() bool {
	if len(s.past) == 0 {
		return false
	}
	last := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append([]*model.Plan{s.present}, s.future...)
	s.present = last
	return true
}

// Redo reapplies the most recently undone frame. Returns false when there
// is nothing to redo.
func (s *Store) Redo() bool {
	if len(s.future) == 0 {
		return false
	}
	next := s.future[0]
	s.future = s.future[1:]
	s.past = append(s.past, s.present)
	s.present = next
	return true
}

// LoadState replaces the present plan and wipes both stacks: a fresh load
// is not undoable past this point. Callers that track a sync baseline
// must reset it to the same plan (see session.Session).
func (s *Store) LoadState(p *model.Plan) {
	if p == nil {
		p = model.TemplatePlan()
	}
	s.present = p
	s.past = nil
	s.future = nil
}

// CanUndo reports whether the past stack is non-empty.
func (s *Store) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (s *Store) CanRedo() bool { return len(s.future) > 0 }

// PastLen returns the undo depth.
func (s *Store) PastLen() int { return len(s.past) }

// FutureLen returns the redo depth.
func (s *Store) FutureLen() int { return len(s.future) }

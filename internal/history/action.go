package history

import "github.com/planora/planora/internal/model"

// Action is the sealed set of plan edits the reducer understands.
// Update actions carry complete replacement records, never partial
// patches; that keeps the reducer a pure structural replacement and keeps
// downstream change detection a plain deep-equality question.
type Action interface {
	isAction()
}

// ReplacePlan swaps in a whole new plan (import, template reset).
type ReplacePlan struct {
	Plan *model.Plan
}

// SetBudgetTotal changes the overall budget figure.
type SetBudgetTotal struct {
	Total float64
}

// AddExpense appends a new expense line.
type AddExpense struct {
	Expense model.ExpenseItem
}

// UpdateExpense replaces the expense with a matching id.
type UpdateExpense struct {
	Expense model.ExpenseItem
}

// DeleteExpense removes the expense with the given id.
type DeleteExpense struct {
	ID string
}

// AddGuest appends a new guest.
type AddGuest struct {
	Guest model.Guest
}

// AddGuests appends a batch of guests in one frame (bulk import).
type AddGuests struct {
	Guests []model.Guest
}

// UpdateGuest replaces the guest with a matching id.
type UpdateGuest struct {
	Guest model.Guest
}

// DeleteGuest removes the guest with the given id. Children keep their
// ParentID; the tree builder degrades them to roots.
type DeleteGuest struct {
	ID string
}

// ToggleGuestConfirmed flips a guest's confirmation flag.
type ToggleGuestConfirmed struct {
	ID string
}

// AddGroup appends a new guest group.
type AddGroup struct {
	Group model.GuestGroup
}

// DeleteGroup removes a group. Guests referencing it are left untouched
// and render as ungrouped.
type DeleteGroup struct {
	ID string
}

func (ReplacePlan) isAction()          {}
func (SetBudgetTotal) isAction()       {}
func (AddExpense) isAction()           {}
func (UpdateExpense) isAction()        {}
func (DeleteExpense) isAction()        {}
func (AddGuest) isAction()             {}
func (AddGuests) isAction()            {}
func (UpdateGuest) isAction()          {}
func (DeleteGuest) isAction()          {}
func (ToggleGuestConfirmed) isAction() {}
func (AddGroup) isAction()             {}
func (DeleteGroup) isAction()          {}

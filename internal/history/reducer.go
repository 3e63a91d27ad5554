package history

import (
	"slices"

	"github.com/planora/planora/internal/model"
)

// Reduce applies an action to a plan and returns the resulting plan.
//
// Reduce never mutates its input. When the action has no effect (unknown
// id, empty batch, identical budget) it returns the input pointer
// unchanged, which is the no-op signal the Store keys off.
func Reduce(p *model.Plan, a Action) *model.Plan {
	switch act := a.(type) {
	case ReplacePlan:
		if act.Plan == nil {
			return p
		}
		return act.Plan.Clone()

	case SetBudgetTotal:
		if act.Total == p.BudgetTotal {
			return p
		}
		next := *p
		next.BudgetTotal = act.Total
		return &next

	case AddExpense:
		next := *p
		next.Expenses = append(slices.Clone(p.Expenses), act.Expense)
		return &next

	case UpdateExpense:
		i := slices.IndexFunc(p.Expenses, func(e model.ExpenseItem) bool { return e.ID == act.Expense.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.Expenses = slices.Clone(p.Expenses)
		next.Expenses[i] = act.Expense
		return &next

	case DeleteExpense:
		i := slices.IndexFunc(p.Expenses, func(e model.ExpenseItem) bool { return e.ID == act.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.Expenses = slices.Delete(slices.Clone(p.Expenses), i, i+1)
		return &next

	case AddGuest:
		next := *p
		next.Guests = append(slices.Clone(p.Guests), act.Guest)
		return &next

	case AddGuests:
		if len(act.Guests) == 0 {
			return p
		}
		next := *p
		next.Guests = append(slices.Clone(p.Guests), act.Guests...)
		return &next

	case UpdateGuest:
		i := slices.IndexFunc(p.Guests, func(g model.Guest) bool { return g.ID == act.Guest.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.Guests = slices.Clone(p.Guests)
		next.Guests[i] = act.Guest
		return &next

	case DeleteGuest:
		i := slices.IndexFunc(p.Guests, func(g model.Guest) bool { return g.ID == act.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.Guests = slices.Delete(slices.Clone(p.Guests), i, i+1)
		return &next

	case ToggleGuestConfirmed:
		i := slices.IndexFunc(p.Guests, func(g model.Guest) bool { return g.ID == act.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.Guests = slices.Clone(p.Guests)
		next.Guests[i].Confirmed = !next.Guests[i].Confirmed
		return &next

	case AddGroup:
		next := *p
		next.GuestGroups = append(slices.Clone(p.GuestGroups), act.Group)
		return &next

	case DeleteGroup:
		i := slices.IndexFunc(p.GuestGroups, func(g model.GuestGroup) bool { return g.ID == act.ID })
		if i < 0 {
			return p
		}
		next := *p
		next.GuestGroups = slices.Delete(slices.Clone(p.GuestGroups), i, i+1)
		return &next

	default:
		return p
	}
}

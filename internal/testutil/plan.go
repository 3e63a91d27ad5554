package testutil

import "github.com/planora/planora/internal/model"

// SamplePlan returns a small plan exercising every field class: an
// explicit root, a child with a photo, nullable is-root left unset, and
// a contracted expense. Callers may mutate the result freely; each call
// builds a fresh value.
func SamplePlan() *model.Plan {
	isRoot := true
	return &model.Plan{
		BudgetTotal: 15000,
		GuestGroups: []model.GuestGroup{
			{ID: "grp1", Name: "Family", Color: "#8b5cf6"},
			{ID: "grp2", Name: "Friends", Color: "#06b6d4"},
		},
		Guests: []model.Guest{
			{ID: "g1", Name: "Marta", GroupID: "grp1", Confirmed: true, Priority: 5, IsRoot: &isRoot},
			{ID: "g2", Name: "Paulo", GroupID: "grp2", ParentID: "g1", Priority: 3, PhotoURL: "https://example.com/p.jpg"},
		},
		Expenses: []model.ExpenseItem{
			{ID: "e1", Category: "Venue", Supplier: "Quinta X", EstimatedValue: 8000, ActualValue: 7500, IsContracted: true, Include: true},
		},
	}
}

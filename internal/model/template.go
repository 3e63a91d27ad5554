package model

// Default group palette, normalized hex. The importer falls back to these
// colors when a synthesized group carries none.
var defaultGroupColors = []string{
	"#8b5cf6", // violet
	"#06b6d4", // cyan
	"#f59e0b", // amber
	"#ef4444", // red
	"#10b981", // emerald
}

// DefaultGroupColor returns a palette color for the i-th group, cycling
// when the palette runs out.
func DefaultGroupColor(i int) string {
	if i < 0 {
		i = 0
	}
	return defaultGroupColors[i%len(defaultGroupColors)]
}

// TemplatePlan returns the initial plan used when no persisted snapshot
// exists: an empty guest list with a starter set of groups and a zero
// budget.
func TemplatePlan() *Plan {
	return &Plan{
		BudgetTotal: 0,
		Expenses:    []ExpenseItem{},
		Guests:      []Guest{},
		GuestGroups: []GuestGroup{
			{ID: "group-family", Name: "Family", Color: DefaultGroupColor(0)},
			{ID: "group-friends", Name: "Friends", Color: DefaultGroupColor(1)},
			{ID: "group-work", Name: "Work", Color: DefaultGroupColor(2)},
		},
	}
}

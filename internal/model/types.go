package model

// Priority bounds for guests. Values outside the range are clamped at the
// import boundary; the core itself stores whatever it is given.
const (
	PriorityMin     = 1
	PriorityDefault = 3
	PriorityMax     = 5
)

// Guest is one invitee. ParentID, when non-empty, names the guest who
// brought this one; the tree builder tolerates dangling and cyclic parent
// links, so no referential integrity is enforced here.
type Guest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupID   string `json:"groupId,omitempty"` // empty = ungrouped
	Confirmed bool   `json:"confirmed"`
	ParentID  string `json:"parentId,omitempty"` // empty = no inviter
	Priority  int    `json:"priority"`
	PhotoURL  string `json:"photoUrl,omitempty"`

	// IsRoot overrides root detection in the tree builder.
	// nil = derive from ParentID, true = force root, false = force non-root.
	IsRoot *bool `json:"isRoot,omitempty"`
}

// GuestGroup is a display grouping for guests. Deleting a group never
// cascades; guests referencing a deleted group render as ungrouped.
type GuestGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ExpenseItem is one budget line.
//
// Include gates whether the item counts toward totals at all;
// IsContracted gates whether ActualValue counts as committed spend.
type ExpenseItem struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Supplier       string  `json:"supplier"`
	EstimatedValue float64 `json:"estimatedValue"`
	ActualValue    float64 `json:"actualValue"`
	IsContracted   bool    `json:"isContracted"`
	Include        bool    `json:"include"`
}

// Plan is the aggregate root: the unit of undo/redo and of synchronization.
// One Plan exists per editing session and is replaced wholesale on load or
// import.
type Plan struct {
	BudgetTotal float64       `json:"budgetTotal"`
	Expenses    []ExpenseItem `json:"expenses"`
	Guests      []Guest       `json:"guests"`
	GuestGroups []GuestGroup  `json:"guestGroups"`
}

// Clone returns a deep copy. IsRoot pointers are duplicated so the copy
// shares no mutable memory with the original.
func (p *Plan) Clone() *Plan {
	cp := &Plan{
		BudgetTotal: p.BudgetTotal,
		Expenses:    make([]ExpenseItem, len(p.Expenses)),
		Guests:      make([]Guest, len(p.Guests)),
		GuestGroups: make([]GuestGroup, len(p.GuestGroups)),
	}
	copy(cp.Expenses, p.Expenses)
	copy(cp.GuestGroups, p.GuestGroups)
	for i, g := range p.Guests {
		if g.IsRoot != nil {
			v := *g.IsRoot
			g.IsRoot = &v
		}
		cp.Guests[i] = g
	}
	return cp
}

// GuestByID returns the guest with the given id, or nil.
func (p *Plan) GuestByID(id string) *Guest {
	for i := range p.Guests {
		if p.Guests[i].ID == id {
			return &p.Guests[i]
		}
	}
	return nil
}

// GroupByID returns the group with the given id, or nil.
func (p *Plan) GroupByID(id string) *GuestGroup {
	for i := range p.GuestGroups {
		if p.GuestGroups[i].ID == id {
			return &p.GuestGroups[i]
		}
	}
	return nil
}

// ExpenseByID returns the expense with the given id, or nil.
func (p *Plan) ExpenseByID(id string) *ExpenseItem {
	for i := range p.Expenses {
		if p.Expenses[i].ID == id {
			return &p.Expenses[i]
		}
	}
	return nil
}

// BudgetSummary aggregates expense lines against the plan budget.
type BudgetSummary struct {
	BudgetTotal float64 `json:"budgetTotal"`
	Estimated   float64 `json:"estimated"` // sum of included estimates
	Committed   float64 `json:"committed"` // sum of included, contracted actuals
	Remaining   float64 `json:"remaining"` // BudgetTotal - Committed
}

// Summarize computes the budget summary. Items with Include=false are
// invisible to every total; ActualValue counts only once contracted.
func (p *Plan) Summarize() BudgetSummary {
	s := BudgetSummary{BudgetTotal: p.BudgetTotal}
	for _, e := range p.Expenses {
		if !e.Include {
			continue
		}
		s.Estimated += e.EstimatedValue
		if e.IsContracted {
			s.Committed += e.ActualValue
		}
	}
	s.Remaining = s.BudgetTotal - s.Committed
	return s
}

// canonicalMap converts a Guest to the map form consumed by
// MarshalCanonical. Optional fields are omitted when unset so that a guest
// round-tripped through a representation that drops empty fields hashes
// the same.
func (g Guest) canonicalMap() map[string]any {
	m := map[string]any{
		"id":        g.ID,
		"name":      g.Name,
		"confirmed": g.Confirmed,
		"priority":  g.Priority,
	}
	if g.GroupID != "" {
		m["groupId"] = g.GroupID
	}
	if g.ParentID != "" {
		m["parentId"] = g.ParentID
	}
	if g.PhotoURL != "" {
		m["photoUrl"] = g.PhotoURL
	}
	if g.IsRoot != nil {
		m["isRoot"] = *g.IsRoot
	}
	return m
}

func (gr GuestGroup) canonicalMap() map[string]any {
	return map[string]any{
		"id":    gr.ID,
		"name":  gr.Name,
		"color": gr.Color,
	}
}

func (e ExpenseItem) canonicalMap() map[string]any {
	return map[string]any{
		"id":             e.ID,
		"category":       e.Category,
		"supplier":       e.Supplier,
		"estimatedValue": e.EstimatedValue,
		"actualValue":    e.ActualValue,
		"isContracted":   e.IsContracted,
		"include":        e.Include,
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Clone_Independent(t *testing.T) {
	isRoot := true
	original := &Plan{
		BudgetTotal: 1000,
		Guests: []Guest{
			{ID: "g1", Name: "Ana", Priority: 3, IsRoot: &isRoot},
			{ID: "g2", Name: "Bruno", Priority: 2, ParentID: "g1"},
		},
		GuestGroups: []GuestGroup{{ID: "grp1", Name: "Family", Color: "#fff"}},
		Expenses:    []ExpenseItem{{ID: "e1", Category: "Venue", EstimatedValue: 500, Include: true}},
	}

	cp := original.Clone()
	cp.BudgetTotal = 2000
	cp.Guests[0].Name = "Changed"
	*cp.Guests[0].IsRoot = false
	cp.Expenses[0].EstimatedValue = 999

	assert.Equal(t, float64(1000), original.BudgetTotal)
	assert.Equal(t, "Ana", original.Guests[0].Name)
	assert.True(t, *original.Guests[0].IsRoot, "IsRoot pointer must not be shared")
	assert.Equal(t, float64(500), original.Expenses[0].EstimatedValue)
}

func TestPlan_LookupsByID(t *testing.T) {
	p := &Plan{
		Guests:      []Guest{{ID: "g1", Name: "Ana"}},
		GuestGroups: []GuestGroup{{ID: "grp1", Name: "Family"}},
		Expenses:    []ExpenseItem{{ID: "e1", Category: "Venue"}},
	}

	require.NotNil(t, p.GuestByID("g1"))
	assert.Equal(t, "Ana", p.GuestByID("g1").Name)
	assert.Nil(t, p.GuestByID("missing"))

	require.NotNil(t, p.GroupByID("grp1"))
	assert.Nil(t, p.GroupByID("missing"))

	require.NotNil(t, p.ExpenseByID("e1"))
	assert.Nil(t, p.ExpenseByID("missing"))
}

func TestPlan_Summarize(t *testing.T) {
	p := &Plan{
		BudgetTotal: 10000,
		Expenses: []ExpenseItem{
			{ID: "e1", EstimatedValue: 3000, ActualValue: 2800, IsContracted: true, Include: true},
			{ID: "e2", EstimatedValue: 1500, ActualValue: 1600, IsContracted: false, Include: true},
			{ID: "e3", EstimatedValue: 9999, ActualValue: 9999, IsContracted: true, Include: false},
		},
	}

	s := p.Summarize()
	assert.Equal(t, float64(10000), s.BudgetTotal)
	assert.Equal(t, float64(4500), s.Estimated, "excluded items do not count")
	assert.Equal(t, float64(2800), s.Committed, "only contracted actuals count")
	assert.Equal(t, float64(7200), s.Remaining)
}

func TestTemplatePlan(t *testing.T) {
	p := TemplatePlan()

	assert.Zero(t, p.BudgetTotal)
	assert.Empty(t, p.Guests)
	assert.Empty(t, p.Expenses)
	require.NotEmpty(t, p.GuestGroups)
	for _, g := range p.GuestGroups {
		assert.NotEmpty(t, g.ID)
		assert.NotEmpty(t, g.Color)
	}
}

func TestDefaultGroupColor_Cycles(t *testing.T) {
	first := DefaultGroupColor(0)
	assert.Equal(t, first, DefaultGroupColor(len(defaultGroupColors)))
	assert.Equal(t, first, DefaultGroupColor(-3), "negative index is clamped")
}

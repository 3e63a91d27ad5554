package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestHash_StableAcrossCalls(t *testing.T) {
	g := Guest{ID: "g1", Name: "Ana", GroupID: "grp1", Confirmed: true, Priority: 4}

	h1, err := GuestHash(g)
	require.NoError(t, err)
	h2, err := GuestHash(g)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestGuestHash_ChangesOnAnyField(t *testing.T) {
	base := Guest{ID: "g1", Name: "Ana", Priority: 3}
	baseHash, err := GuestHash(base)
	require.NoError(t, err)

	isRoot := false
	variants := []Guest{
		{ID: "g2", Name: "Ana", Priority: 3},
		{ID: "g1", Name: "Ana Maria", Priority: 3},
		{ID: "g1", Name: "Ana", Priority: 5},
		{ID: "g1", Name: "Ana", Priority: 3, Confirmed: true},
		{ID: "g1", Name: "Ana", Priority: 3, ParentID: "g0"},
		{ID: "g1", Name: "Ana", Priority: 3, IsRoot: &isRoot},
	}
	for _, v := range variants {
		h, err := GuestHash(v)
		require.NoError(t, err)
		assert.NotEqual(t, baseHash, h)
	}
}

func TestDomainSeparation(t *testing.T) {
	// A group and an expense with colliding field values must not collide.
	gr := GuestGroup{ID: "x", Name: "same", Color: ""}
	grHash, err := GroupHash(gr)
	require.NoError(t, err)

	e := ExpenseItem{ID: "x", Category: "same"}
	eHash, err := ExpenseHash(e)
	require.NoError(t, err)

	assert.NotEqual(t, grHash, eHash)
}

func TestExpenseHash_FloatStability(t *testing.T) {
	// Values that arrive as whole numbers hash the same whether the source
	// representation carried them as 2500 or 2500.0.
	a := ExpenseItem{ID: "e1", EstimatedValue: 2500, Include: true}
	b := ExpenseItem{ID: "e1", EstimatedValue: 2500.0, Include: true}

	ha, err := ExpenseHash(a)
	require.NoError(t, err)
	hb, err := ExpenseHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/internal/model"
)

func TestStore_New_NilInitialUsesTemplate(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s.Present())
	assert.NotEmpty(t, s.Present().GuestGroups)
}

func TestStore_Execute_PushesFrame(t *testing.T) {
	s := New(fixturePlan())

	changed := s.Execute(AddGuest{Guest: model.Guest{ID: "g3", Name: "Carla"}})
	assert.True(t, changed)
	assert.Equal(t, 1, s.PastLen())
	assert.Len(t, s.Present().Guests, 3)
}

func TestStore_Execute_NoOpSuppressed(t *testing.T) {
	s := New(fixturePlan())
	before := s.Present()

	changed := s.Execute(DeleteGuest{ID: "nonexistent-id"})
	assert.False(t, changed)
	assert.Equal(t, 0, s.PastLen())
	assert.Same(t, before, s.Present())
}

func TestStore_UndoRedo_RoundTrip(t *testing.T) {
	s := New(fixturePlan())
	original := s.Present()

	actions := []Action{
		AddGuest{Guest: model.Guest{ID: "g3", Name: "Carla"}},
		SetBudgetTotal{Total: 7500},
		DeleteExpense{ID: "e1"},
		ToggleGuestConfirmed{ID: "g1"},
		AddGroup{Group: model.GuestGroup{ID: "grp2", Name: "Work"}},
	}
	for _, a := range actions {
		require.True(t, s.Execute(a))
	}
	final := s.Present()

	for range actions {
		require.True(t, s.Undo())
	}
	assert.Same(t, original, s.Present(), "N undos return the exact original plan")
	assert.False(t, s.Undo(), "undo past the beginning is a no-op")

	for range actions {
		require.True(t, s.Redo())
	}
	assert.Same(t, final, s.Present(), "N redos return the exact final plan")
	assert.False(t, s.Redo(), "redo past the end is a no-op")
}

func TestStore_ExecuteAfterUndo_DiscardsRedoBranch(t *testing.T) {
	s := New(fixturePlan())

	require.True(t, s.Execute(SetBudgetTotal{Total: 1}))
	require.True(t, s.Execute(SetBudgetTotal{Total: 2}))
	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	require.True(t, s.Execute(SetBudgetTotal{Total: 3}))
	assert.Equal(t, 0, s.FutureLen())
	assert.False(t, s.Redo())
	assert.Equal(t, float64(3), s.Present().BudgetTotal)
}

func TestStore_UndoOrderIsLIFO_RedoOrderIsFIFO(t *testing.T) {
	s := New(&model.Plan{})

	for i := 1; i <= 3; i++ {
		require.True(t, s.Execute(SetBudgetTotal{Total: float64(i)}))
	}

	require.True(t, s.Undo())
	assert.Equal(t, float64(2), s.Present().BudgetTotal)
	require.True(t, s.Undo())
	assert.Equal(t, float64(1), s.Present().BudgetTotal)

	require.True(t, s.Redo())
	assert.Equal(t, float64(2), s.Present().BudgetTotal)
	require.True(t, s.Redo())
	assert.Equal(t, float64(3), s.Present().BudgetTotal)
}

func TestStore_LoadState_ClearsHistory(t *testing.T) {
	s := New(fixturePlan())
	require.True(t, s.Execute(SetBudgetTotal{Total: 1}))
	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	fresh := model.TemplatePlan()
	s.LoadState(fresh)

	assert.Same(t, fresh, s.Present())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestStore_LoadState_NilFallsBackToTemplate(t *testing.T) {
	s := New(fixturePlan())
	s.LoadState(nil)
	require.NotNil(t, s.Present())
	assert.Empty(t, s.Present().Guests)
}

func TestStore_ManyFrames(t *testing.T) {
	// History depth is bounded only by memory.
	s := New(&model.Plan{})
	const n = 500
	for i := 0; i < n; i++ {
		require.True(t, s.Execute(AddGuest{Guest: model.Guest{ID: fmt.Sprintf("g%d", i)}}))
	}
	assert.Equal(t, n, s.PastLen())
	for i := 0; i < n; i++ {
		require.True(t, s.Undo())
	}
	assert.Empty(t, s.Present().Guests)
}

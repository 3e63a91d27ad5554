package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestBuild_SimpleForest(t *testing.T) {
	guests := []model.Guest{
		{ID: "marta", Name: "Marta"},
		{ID: "paulo", Name: "Paulo", ParentID: "marta"},
		{ID: "rita", Name: "Rita", ParentID: "paulo"},
		{ID: "nuno", Name: "Nuno", ParentID: "marta"},
		{ID: "solo", Name: "Solo"},
	}

	nodes := Build(guests)
	require.Len(t, nodes, 5)

	assert.True(t, nodes["marta"].IsRoot)
	assert.Equal(t, 0, nodes["marta"].Level)
	assert.Equal(t, []string{"Marta"}, nodes["marta"].Chain)

	assert.False(t, nodes["rita"].IsRoot)
	assert.Equal(t, 2, nodes["rita"].Level)
	assert.Equal(t, []string{"Marta", "Paulo", "Rita"}, nodes["rita"].Chain)

	assert.Equal(t, 1, nodes["nuno"].Level)
	assert.True(t, nodes["solo"].IsRoot)
}

func TestBuild_ChainLengthMatchesLevel(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "b"},
		{ID: "d", Name: "D", ParentID: "c"},
	}

	for id, n := range Build(guests) {
		assert.Equal(t, n.Level+1, len(n.Chain), "guest %s", id)
	}
}

func TestBuild_ExplicitRootOverride(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A"},
		// Has a parent but is declared a root: the declaration wins.
		{ID: "b", Name: "B", ParentID: "a", IsRoot: boolPtr(true)},
		{ID: "c", Name: "C", ParentID: "b"},
	}

	nodes := Build(guests)
	assert.True(t, nodes["b"].IsRoot)
	assert.Equal(t, 0, nodes["b"].Level)
	assert.Equal(t, []string{"B"}, nodes["b"].Chain)
	// Children of a declared root hang off it normally.
	assert.Equal(t, 1, nodes["c"].Level)
	assert.Equal(t, []string{"B", "C"}, nodes["c"].Chain)
	// The declared root does not credit its former parent.
	assert.Equal(t, 0, nodes["a"].ChildCount)
}

func TestBuild_ExplicitNonRootResolvesThroughParent(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a", IsRoot: boolPtr(false)},
	}

	nodes := Build(guests)
	assert.False(t, nodes["b"].IsRoot)
	assert.Equal(t, 1, nodes["b"].Level)
}

func TestBuild_ExplicitNonRootWithoutParentDegradesToRoot(t *testing.T) {
	// Declared non-root but nothing to attach to. The declaration loses
	// and the guest lands at level 0 anyway.
	guests := []model.Guest{
		{ID: "orphan", Name: "Orphan", IsRoot: boolPtr(false)},
		{ID: "dangling", Name: "Dangling", ParentID: "ghost", IsRoot: boolPtr(false)},
	}

	nodes := Build(guests)
	for id, n := range nodes {
		assert.True(t, n.IsRoot, "guest %s", id)
		assert.Equal(t, 0, n.Level, "guest %s", id)
	}
	assert.Equal(t, []string{"Orphan"}, nodes["orphan"].Chain)
	assert.Equal(t, []string{"Dangling"}, nodes["dangling"].Chain)
}

func TestBuild_DanglingParentBecomesRoot(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A", ParentID: "never-existed"},
	}

	nodes := Build(guests)
	require.Contains(t, nodes, "a")
	assert.True(t, nodes["a"].IsRoot)
	assert.Equal(t, []string{"A"}, nodes["a"].Chain)
}

func TestBuild_CycleTerminates(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "c"},
		{ID: "c", Name: "C", ParentID: "a"},
	}

	nodes := Build(guests)
	require.Len(t, nodes, 3, "every guest gets a node even inside a cycle")

	// Exactly one member of the cycle is demoted to a root with an empty
	// chain; the others resolve through it.
	demoted := 0
	for _, n := range nodes {
		if n.IsRoot {
			demoted++
			assert.Empty(t, n.Chain)
			assert.Equal(t, 0, n.Level)
		}
	}
	assert.Equal(t, 1, demoted)
}

func TestBuild_SelfReferenceTerminates(t *testing.T) {
	guests := []model.Guest{
		{ID: "narcissus", Name: "Narcissus", ParentID: "narcissus"},
	}

	nodes := Build(guests)
	require.Contains(t, nodes, "narcissus")
	assert.True(t, nodes["narcissus"].IsRoot)
	assert.Empty(t, nodes["narcissus"].Chain)
}

func TestBuild_InfluenceCounts(t *testing.T) {
	//   marta
	//   ├── paulo
	//   │   ├── rita
	//   │   └── vera
	//   └── nuno
	guests := []model.Guest{
		{ID: "marta", Name: "Marta"},
		{ID: "paulo", Name: "Paulo", ParentID: "marta"},
		{ID: "rita", Name: "Rita", ParentID: "paulo"},
		{ID: "vera", Name: "Vera", ParentID: "paulo"},
		{ID: "nuno", Name: "Nuno", ParentID: "marta"},
	}

	nodes := Build(guests)
	assert.Equal(t, 4, nodes["marta"].ChildCount, "root counts its whole subtree")
	assert.Equal(t, 2, nodes["paulo"].ChildCount)
	assert.Equal(t, 0, nodes["rita"].ChildCount)
	assert.Equal(t, 0, nodes["vera"].ChildCount)
	assert.Equal(t, 0, nodes["nuno"].ChildCount)
}

func TestBuild_InfluenceWalkStopsOnCycle(t *testing.T) {
	// b hangs off the a<->c cycle; the credit walk must terminate.
	guests := []model.Guest{
		{ID: "a", Name: "A", ParentID: "c"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "b", Name: "B", ParentID: "a"},
	}

	nodes := Build(guests)
	require.Len(t, nodes, 3)
	total := 0
	for _, n := range nodes {
		total += n.ChildCount
	}
	assert.Greater(t, total, 0)
}

func TestBuild_Idempotent(t *testing.T) {
	guests := []model.Guest{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "x", Name: "X", ParentID: "y"},
		{ID: "y", Name: "Y", ParentID: "x"},
	}

	first := Build(guests)
	second := Build(guests)
	assert.Equal(t, first, second)
}

func TestBuild_EmptyInput(t *testing.T) {
	nodes := Build(nil)
	assert.Empty(t, nodes)
}

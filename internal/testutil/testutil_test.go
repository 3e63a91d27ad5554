package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	ids := NewSequentialIDs()
	assert.Equal(t, "id-1", ids.Next())
	assert.Equal(t, "id-2", ids.Next())

	ids.Reset()
	assert.Equal(t, "id-1", ids.Next())
}

func TestSamplePlanIndependence(t *testing.T) {
	a := SamplePlan()
	b := SamplePlan()

	a.Guests[0].Name = "mutated"
	assert.Equal(t, "Marta", b.Guests[0].Name)

	*a.Guests[0].IsRoot = false
	assert.True(t, *b.Guests[0].IsRoot)
}

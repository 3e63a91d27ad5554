// Package testutil provides deterministic fixtures shared by package
// tests: a sequential id generator for importer runs and a sample plan
// with every field class populated.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates ids "id-1", "id-2", ... in order.
//
// It replaces random UUID generation in tests so that two runs of the
// same import produce identical plans.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu sync.Mutex
	n  int
}

// NewSequentialIDs creates a generator whose first Next() returns "id-1".
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

// Next returns the next id in the sequence.
func (s *SequentialIDs) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// Reset restarts the sequence. After Reset(), the next call to Next()
// returns "id-1" again.
func (s *SequentialIDs) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}

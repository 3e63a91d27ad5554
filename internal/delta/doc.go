// Package delta computes minimal change sets between the present plan and
// a baseline, the last plan known to be durably persisted.
//
// The tracker remembers, per collection, the content hash of every entity
// at baseline time. Diffing the present plan is then three id-set
// comparisons plus hash comparisons for survivors, so "updated" means
// structurally different, never "serialized with keys in another order".
//
// The baseline advances in exactly two places: when a plan is loaded and
// when the caller confirms a durable write (MarkSynced). A failed write
// leaves the baseline untouched; the next diff recomputes the same
// still-pending changes.
package delta

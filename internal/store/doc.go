// Package store is the SQLite persistence collaborator.
//
// It implements both sides of the sync boundary: session.Loader (read a
// persisted plan back, or report that none exists) and session.Persister
// (accept a full-plan payload or a delta payload). Both save shapes run
// in a single transaction, so a crashed save never leaves a half-written
// plan for the next load.
//
// The schema deliberately carries no foreign keys between guests and
// guest groups or between guests and their inviters: dangling references
// are valid plan states (deleting a group never cascades, and the tree
// builder degrades broken parent links to roots).
package store

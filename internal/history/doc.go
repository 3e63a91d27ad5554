// Package history implements linear undo/redo over an event plan.
//
// A Store holds three things: the past stack, the present plan, and the
// future stack. Edits go through a pure reducer; the store pushes one
// history frame per effective edit and discards the redo branch on every
// new edit after an undo (linear history, no tree).
//
// No-op actions are absorbed, not recorded: the reducer signals "nothing
// changed" by returning the exact plan pointer it was given, and the
// store skips the frame push. Deleting an id that does not exist is the
// canonical example.
//
// The store is deliberately unsynchronized. One logical editing session
// owns a store at a time; concurrent sessions each get their own (no
// package-level state anywhere in this package).
package history

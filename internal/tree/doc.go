// Package tree derives the rooted-forest projection of a guest list.
//
// Guests reference the person who brought them via ParentID, which makes
// the input a forest in the happy case but possibly a graph with dangling
// or cyclic links after arbitrary edits. Build converts the flat list into
// a per-guest Node (level, ancestor chain, influence count, root flag)
// and is total: every input, including cyclic ones, produces a node for
// every guest.
//
// The projection is read-only. Consumers (rankings, hierarchical display,
// breadcrumb captions, exports) never feed anything back into the plan.
package tree

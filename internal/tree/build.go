package tree

import (
	"github.com/planora/planora/internal/model"
)

// Node is the derived position of one guest in the invitation forest.
type Node struct {
	// Level is the number of edges to the nearest root. Roots sit at 0.
	Level int `json:"level"`

	// Chain lists ancestor names from the root down to this guest, so
	// Chain[len-1] is the guest's own name. A guest demoted to root by
	// cycle detection carries an empty chain.
	Chain []string `json:"chain"`

	// ChildCount is the number of guests, direct or transitive, this
	// guest brought.
	ChildCount int `json:"childCount"`

	// IsRoot marks guests with no inviter attribution, whether declared,
	// derived, or forced by a broken parent link.
	IsRoot bool `json:"isRoot"`
}

// Build derives a Node for every guest in the list.
//
// Root resolution, applied in order per guest:
//  1. IsRoot explicitly true: root.
//  2. IsRoot explicitly false: resolve through the parent chain; if the
//     parent link is absent or dangling the guest still degrades to a
//     root (the override loses to a missing parent).
//  3. IsRoot unset: root iff ParentID is empty.
//  4. ParentID set but dangling: root with a single-element chain.
//
// Malformed links never fail the build. A guest revisited within its own
// ancestor resolution (a parent cycle) becomes a root with an empty chain
// at level 0, which bounds every traversal.
//
// Build is a pure function of its input: repeated calls on the same list
// return structurally identical maps.
func Build(guests []model.Guest) map[string]*Node {
	byID := make(map[string]*model.Guest, len(guests))
	for i := range guests {
		byID[guests[i].ID] = &guests[i]
	}

	b := &builder{
		byID:  byID,
		nodes: make(map[string]*Node, len(guests)),
	}
	for i := range guests {
		b.resolve(&guests[i], make(map[string]bool))
	}

	// Influence pass. Every non-root guest credits each ancestor on the
	// path up to and including its nearest root.
	for i := range guests {
		g := &guests[i]
		if b.nodes[g.ID].IsRoot {
			continue
		}
		b.credit(g)
	}

	return b.nodes
}

type builder struct {
	byID  map[string]*model.Guest
	nodes map[string]*Node // memoized across the whole build pass
}

// resolve computes (and memoizes) the node for g. visiting tracks the
// current ancestor-resolution chain; a revisit means a parent cycle.
func (b *builder) resolve(g *model.Guest, visiting map[string]bool) *Node {
	if n, ok := b.nodes[g.ID]; ok {
		return n
	}
	if visiting[g.ID] {
		// Parent cycle: demote to root with an empty chain so the
		// recursion terminates.
		n := &Node{Level: 0, Chain: []string{}, IsRoot: true}
		b.nodes[g.ID] = n
		return n
	}
	visiting[g.ID] = true

	explicitRoot := g.IsRoot != nil && *g.IsRoot
	explicitNonRoot := g.IsRoot != nil && !*g.IsRoot

	if explicitRoot || (!explicitNonRoot && g.ParentID == "") {
		n := &Node{Level: 0, Chain: []string{g.Name}, IsRoot: true}
		b.nodes[g.ID] = n
		return n
	}

	parent, ok := b.byID[g.ParentID]
	if !ok {
		// Dangling parent link. Applies even under an explicit
		// IsRoot=false: with no resolvable parent the guest has nowhere
		// else to sit. Self-references fall through to resolve, where
		// the visiting set demotes them like any other cycle.
		n := &Node{Level: 0, Chain: []string{g.Name}, IsRoot: true}
		b.nodes[g.ID] = n
		return n
	}

	pn := b.resolve(parent, visiting)
	chain := make([]string, 0, len(pn.Chain)+1)
	chain = append(chain, pn.Chain...)
	chain = append(chain, g.Name)
	n := &Node{Level: pn.Level + 1, Chain: chain, IsRoot: false}

	// A memo entry may already exist if g sat on a cycle that resolved
	// through it; the cycle verdict wins so results stay consistent
	// across the pass.
	if existing, ok := b.nodes[g.ID]; ok {
		return existing
	}
	b.nodes[g.ID] = n
	return n
}

// credit walks upward from g's parent, incrementing ChildCount on every
// ancestor until a root is credited or the walk runs out of resolvable
// parents. A per-walk visited set makes revisits (cycles) terminate the
// walk silently rather than loop.
func (b *builder) credit(g *model.Guest) {
	visited := map[string]bool{g.ID: true}
	cur, ok := b.byID[g.ParentID]
	for ok && !visited[cur.ID] {
		visited[cur.ID] = true
		n := b.nodes[cur.ID]
		n.ChildCount++
		if n.IsRoot {
			return
		}
		cur, ok = b.byID[cur.ParentID]
	}
}

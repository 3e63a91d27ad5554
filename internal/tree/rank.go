package tree

import (
	"sort"
	"strings"

	"github.com/planora/planora/internal/model"
)

// Influencer is one row of the "who brought the most guests" ranking.
type Influencer struct {
	GuestID    string `json:"guestId"`
	Name       string `json:"name"`
	ChildCount int    `json:"childCount"`
}

// TopInfluencers ranks guests by descending ChildCount, breaking ties by
// name then id so the ranking is deterministic. Guests with zero influence
// are excluded. n <= 0 means no limit.
func TopInfluencers(guests []model.Guest, nodes map[string]*Node, n int) []Influencer {
	ranking := make([]Influencer, 0, len(guests))
	for _, g := range guests {
		node, ok := nodes[g.ID]
		if !ok || node.ChildCount == 0 {
			continue
		}
		ranking = append(ranking, Influencer{GuestID: g.ID, Name: g.Name, ChildCount: node.ChildCount})
	}
	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if a.ChildCount != b.ChildCount {
			return a.ChildCount > b.ChildCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.GuestID < b.GuestID
	})
	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// RootGroup is one root guest together with every guest whose ancestor
// path reaches it, ordered by level then name for stable display.
type RootGroup struct {
	RootID   string   `json:"rootId"`
	RootName string   `json:"rootName"`
	GuestIDs []string `json:"guestIds"` // excludes the root itself
}

// GroupByRoot partitions guests under their nearest root. Roots (including
// guests demoted to root by broken links) each head their own group.
// Groups and members are deterministically ordered.
func GroupByRoot(guests []model.Guest, nodes map[string]*Node) []RootGroup {
	byID := make(map[string]*model.Guest, len(guests))
	for i := range guests {
		byID[guests[i].ID] = &guests[i]
	}

	members := make(map[string][]string)
	var rootIDs []string
	for _, g := range guests {
		node, ok := nodes[g.ID]
		if !ok {
			continue
		}
		if node.IsRoot {
			rootIDs = append(rootIDs, g.ID)
			continue
		}
		if rootID, ok := nearestRoot(&g, byID, nodes); ok {
			members[rootID] = append(members[rootID], g.ID)
		}
	}

	sort.Slice(rootIDs, func(i, j int) bool {
		a, b := byID[rootIDs[i]], byID[rootIDs[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	groups := make([]RootGroup, 0, len(rootIDs))
	for _, rootID := range rootIDs {
		ids := members[rootID]
		sort.Slice(ids, func(i, j int) bool {
			a, b := nodes[ids[i]], nodes[ids[j]]
			if a.Level != b.Level {
				return a.Level < b.Level
			}
			an, bn := byID[ids[i]].Name, byID[ids[j]].Name
			if an != bn {
				return an < bn
			}
			return ids[i] < ids[j]
		})
		groups = append(groups, RootGroup{
			RootID:   rootID,
			RootName: byID[rootID].Name,
			GuestIDs: ids,
		})
	}
	return groups
}

// nearestRoot walks parent links until it hits a root node. Returns false
// when the walk dead-ends on a broken link or a revisit before reaching
// one (the guest then belongs to no displayable group).
func nearestRoot(g *model.Guest, byID map[string]*model.Guest, nodes map[string]*Node) (string, bool) {
	visited := map[string]bool{g.ID: true}
	cur, ok := byID[g.ParentID]
	for ok && !visited[cur.ID] {
		visited[cur.ID] = true
		if nodes[cur.ID].IsRoot {
			return cur.ID, true
		}
		cur, ok = byID[cur.ParentID]
	}
	return "", false
}

// ChainLabel formats a node's ancestor chain as a breadcrumb caption,
// e.g. "Marta > Paulo > Rita". Empty for cycle-demoted roots.
func ChainLabel(n *Node) string {
	return strings.Join(n.Chain, " > ")
}

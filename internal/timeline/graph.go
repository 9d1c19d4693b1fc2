package timeline

import "github.com/alexanderramin/chronos/internal/domain"

// GraphIndex is an adjacency index over dependency and milestone-link edges,
// rebuilt once per render of the edge lists. It deliberately exposes only
// one-hop neighbor lookups: highlighting considers direct predecessors and
// successors, never transitive reachability, so a cyclic input (A→B→A) is
// stored as given and can never cause unbounded traversal.
type GraphIndex struct {
	predecessors   map[string][]string // successor id -> predecessor ids
	successors     map[string][]string // predecessor id -> successor ids
	milestoneItems map[string][]string // milestone id -> linked work item ids
	itemMilestones map[string][]string // work item id -> linked milestone ids
}

// BuildGraphIndex indexes the given edges. Duplicate edges are kept as
// supplied; the index performs no validation.
func BuildGraphIndex(deps []domain.Dependency, milestones []*domain.Milestone) *GraphIndex {
	g := &GraphIndex{
		predecessors:   make(map[string][]string),
		successors:     make(map[string][]string),
		milestoneItems: make(map[string][]string),
		itemMilestones: make(map[string][]string),
	}
	for _, d := range deps {
		g.predecessors[d.SuccessorID] = append(g.predecessors[d.SuccessorID], d.PredecessorID)
		g.successors[d.PredecessorID] = append(g.successors[d.PredecessorID], d.SuccessorID)
	}
	for _, m := range milestones {
		for _, itemID := range m.LinkedWorkItemIDs {
			g.milestoneItems[m.ID] = append(g.milestoneItems[m.ID], itemID)
			g.itemMilestones[itemID] = append(g.itemMilestones[itemID], m.ID)
		}
	}
	return g
}

// Predecessors returns the direct predecessor ids of the item.
func (g *GraphIndex) Predecessors(itemID string) []string {
	return g.predecessors[itemID]
}

// Successors returns the direct successor ids of the item.
func (g *GraphIndex) Successors(itemID string) []string {
	return g.successors[itemID]
}

// LinkedItems returns the work item ids a milestone contributes-to links reach.
func (g *GraphIndex) LinkedItems(milestoneID string) []string {
	return g.milestoneItems[milestoneID]
}

// LinkedMilestones returns the milestone ids linked to a work item.
func (g *GraphIndex) LinkedMilestones(itemID string) []string {
	return g.itemMilestones[itemID]
}

// Neighbors returns the item itself plus its direct predecessors and
// successors, the exact set an item hover highlights.
func (g *GraphIndex) Neighbors(itemID string) map[string]bool {
	set := map[string]bool{itemID: true}
	for _, id := range g.predecessors[itemID] {
		set[id] = true
	}
	for _, id := range g.successors[itemID] {
		set[id] = true
	}
	return set
}

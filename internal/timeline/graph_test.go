package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildGraphIndex_Adjacency(t *testing.T) {
	deps := []domain.Dependency{
		{PredecessorID: "wi-1", SuccessorID: "wi-2", Type: domain.FinishToStart},
		{PredecessorID: "wi-2", SuccessorID: "wi-3", Type: domain.FinishToStart},
	}
	g := BuildGraphIndex(deps, nil)

	assert.Empty(t, g.Predecessors("wi-1"))
	assert.Equal(t, []string{"wi-2"}, g.Successors("wi-1"))
	assert.Equal(t, []string{"wi-1"}, g.Predecessors("wi-2"))
	assert.Equal(t, []string{"wi-3"}, g.Successors("wi-2"))
	assert.Empty(t, g.Successors("wi-3"))
}

func TestBuildGraphIndex_CycleTolerated(t *testing.T) {
	deps := []domain.Dependency{
		{PredecessorID: "wi-1", SuccessorID: "wi-2"},
		{PredecessorID: "wi-2", SuccessorID: "wi-1"},
	}
	g := BuildGraphIndex(deps, nil)

	// Edges are stored as given; lookups stay one hop, so a cycle can
	// never cause unbounded traversal.
	assert.Equal(t, []string{"wi-2"}, g.Successors("wi-1"))
	assert.Equal(t, []string{"wi-2"}, g.Predecessors("wi-1"))
	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true}, g.Neighbors("wi-1"))
}

func TestBuildGraphIndex_MilestoneLinks(t *testing.T) {
	m := &domain.Milestone{
		ID:                "ms-1",
		Title:             "Beta",
		TargetDate:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		LinkedWorkItemIDs: []string{"wi-1", "wi-3"},
	}
	g := BuildGraphIndex(nil, []*domain.Milestone{m})

	assert.ElementsMatch(t, []string{"wi-1", "wi-3"}, g.LinkedItems("ms-1"))
	assert.Equal(t, []string{"ms-1"}, g.LinkedMilestones("wi-1"))
	assert.Empty(t, g.LinkedMilestones("wi-2"))
}

func TestNeighbors_IncludesBothDirections(t *testing.T) {
	deps := []domain.Dependency{
		{PredecessorID: "wi-1", SuccessorID: "wi-2"},
		{PredecessorID: "wi-2", SuccessorID: "wi-3"},
	}
	g := BuildGraphIndex(deps, nil)

	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true, "wi-3": true}, g.Neighbors("wi-2"))
	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true}, g.Neighbors("wi-1"),
		"direct neighbors only, never the transitive chain")
}

package timeline

import (
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainController builds the wi-1 → wi-2 → wi-3 linear chain with one
// milestone linked only to wi-1.
func chainController() (*HighlightController, []Connector) {
	deps := []domain.Dependency{
		{PredecessorID: "wi-1", SuccessorID: "wi-2", Type: domain.FinishToStart},
		{PredecessorID: "wi-2", SuccessorID: "wi-3", Type: domain.FinishToStart},
	}
	ms := &domain.Milestone{ID: "ms-1", Title: "Beta", LinkedWorkItemIDs: []string{"wi-1"}}
	index := BuildGraphIndex(deps, []*domain.Milestone{ms})
	ctrl := NewHighlightController(index, []string{"wi-1", "wi-2", "wi-3"})

	edges := []Connector{
		{Kind: EdgeDependency, FromID: "wi-1", ToID: "wi-2"},
		{Kind: EdgeDependency, FromID: "wi-2", ToID: "wi-3"},
		{Kind: EdgeMilestoneLink, FromID: "ms-1", ToID: "wi-1"},
	}
	return ctrl, edges
}

func TestHighlight_ItemHoverChainHead(t *testing.T) {
	ctrl, edges := chainController()

	ctrl.HoverItem("wi-1")

	s := ctrl.State()
	assert.Equal(t, SourceItem, s.Source)
	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true}, s.Highlighted)
	assert.Equal(t, map[string]bool{"wi-3": true}, s.Dimmed)

	assert.Equal(t, EmphasisHighlighted, ctrl.EdgeEmphasis(edges[0]), "incident edge highlights")
	assert.Equal(t, EmphasisDimmed, ctrl.EdgeEmphasis(edges[1]), "non-incident edge dims")
}

func TestHighlight_ItemHoverChainMiddle(t *testing.T) {
	ctrl, _ := chainController()

	ctrl.HoverItem("wi-2")

	s := ctrl.State()
	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true, "wi-3": true}, s.Highlighted)
	assert.Empty(t, s.Dimmed)
}

func TestHighlight_ConnectorHover(t *testing.T) {
	ctrl, edges := chainController()

	ctrl.HoverConnector(edges[0]) // wi-1 → wi-2

	s := ctrl.State()
	assert.Equal(t, SourceArrow, s.Source)
	assert.Equal(t, map[string]bool{"wi-1": true, "wi-2": true}, s.Highlighted)
	assert.Equal(t, map[string]bool{"wi-3": true}, s.Dimmed, "items not incident to the edge dim")

	assert.Equal(t, EmphasisHighlighted, ctrl.EdgeEmphasis(edges[0]), "only the hovered edge highlights")
	assert.Equal(t, EmphasisDimmed, ctrl.EdgeEmphasis(edges[1]))
	assert.Equal(t, EmphasisDimmed, ctrl.EdgeEmphasis(edges[2]))
}

func TestHighlight_ArrowHoverReplacesItemHover(t *testing.T) {
	ctrl, edges := chainController()

	ctrl.HoverItem("wi-3")
	ctrl.HoverConnector(edges[0])

	s := ctrl.State()
	assert.Equal(t, SourceArrow, s.Source, "the most recent trigger wins")
	assert.True(t, s.Dimmed["wi-3"], "dimming comes from the new source only")
	assert.False(t, s.Highlighted["wi-3"])
}

func TestHighlight_MilestoneHover(t *testing.T) {
	ctrl, edges := chainController()

	ctrl.HoverMilestone("ms-1")

	s := ctrl.State()
	assert.Equal(t, SourceMilestone, s.Source)
	assert.Equal(t, map[string]bool{"ms-1": true, "wi-1": true}, s.Highlighted)
	assert.Equal(t, map[string]bool{"wi-2": true, "wi-3": true}, s.Dimmed,
		"a milestone linked only to wi-1 dims wi-2 and wi-3")

	assert.Equal(t, EmphasisHighlighted, ctrl.EdgeEmphasis(edges[2]), "milestone link highlights")
	assert.Equal(t, EmphasisDimmed, ctrl.EdgeEmphasis(edges[0]))
}

func TestHighlight_ClearRemovesAllClassification(t *testing.T) {
	ctrl, edges := chainController()

	ctrl.HoverItem("wi-2")
	ctrl.Clear()

	s := ctrl.State()
	assert.Equal(t, SourceNone, s.Source)
	assert.Empty(t, s.Highlighted)
	assert.Empty(t, s.Dimmed)
	for _, e := range edges {
		assert.Equal(t, EmphasisNormal, ctrl.EdgeEmphasis(e))
	}
	for _, id := range []string{"wi-1", "wi-2", "wi-3", "ms-1"} {
		assert.Equal(t, EmphasisNormal, ctrl.ItemEmphasis(id))
	}
}

func TestHighlight_Idempotent(t *testing.T) {
	ctrl, _ := chainController()

	ctrl.HoverItem("wi-1")
	first := ctrl.State()
	ctrl.HoverItem("wi-1")

	assert.Equal(t, first.Highlighted, ctrl.State().Highlighted)
	assert.Equal(t, first.Dimmed, ctrl.State().Dimmed)
}

func TestHighlight_ReindexClearsActiveTrigger(t *testing.T) {
	ctrl, _ := chainController()
	ctrl.HoverItem("wi-1")
	require.True(t, ctrl.Active())

	ctrl.Reindex(BuildGraphIndex(nil, nil), []string{"wi-1"})
	assert.False(t, ctrl.Active())
}

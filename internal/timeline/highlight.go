package timeline

// HighlightSource identifies which trigger owns the active highlight. The
// most recently activated trigger wins outright: activating any source
// replaces whatever was active, so lingering dim classification can only
// come from the new source.
type HighlightSource string

const (
	SourceNone      HighlightSource = "none"
	SourceItem      HighlightSource = "item"
	SourceArrow     HighlightSource = "arrow"
	SourceMilestone HighlightSource = "milestone"
)

// Emphasis is the rendering classification of an item or connector under
// the active highlight.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisHighlighted
	EmphasisDimmed
)

// HighlightState is the derived highlight/dim partition. It is recomputed
// in full on every trigger change; recomputing from the same trigger always
// yields the same sets.
type HighlightState struct {
	Source      HighlightSource
	HoveredID   string // item id, connector key, or milestone id
	Highlighted map[string]bool
	Dimmed      map[string]bool

	// Arrow-hover endpoints, kept for edge classification.
	hoveredFrom string
	hoveredTo   string
}

// HighlightController tracks the single active hover/focus trigger and
// derives the highlight partition from the graph index. Keyboard focus and
// pointer hover share the same entry points, so both produce identical
// outcomes; blur and mouse-leave both land in Clear.
type HighlightController struct {
	index      *GraphIndex
	allItemIDs []string
	state      HighlightState
}

// NewHighlightController creates a controller over the given index and the
// full ordered work item id list.
func NewHighlightController(index *GraphIndex, allItemIDs []string) *HighlightController {
	c := &HighlightController{index: index, allItemIDs: allItemIDs}
	c.Clear()
	return c
}

// Reindex swaps in a freshly built graph index and id list (the edge lists
// changed), preserving no highlight: any active trigger is cleared because
// its sets may no longer be valid.
func (c *HighlightController) Reindex(index *GraphIndex, allItemIDs []string) {
	c.index = index
	c.allItemIDs = allItemIDs
	c.Clear()
}

// State returns the current partition.
func (c *HighlightController) State() HighlightState {
	return c.state
}

// Active reports whether any trigger currently owns the highlight.
func (c *HighlightController) Active() bool {
	return c.state.Source != SourceNone
}

// HoverItem activates an item trigger: the item plus its direct
// predecessors and successors are highlighted, every other work item is
// dimmed. Also used for keyboard focus.
func (c *HighlightController) HoverItem(itemID string) {
	highlighted := c.index.Neighbors(itemID)
	c.state = HighlightState{
		Source:      SourceItem,
		HoveredID:   itemID,
		Highlighted: highlighted,
		Dimmed:      c.complement(highlighted),
	}
}

// HoverConnector activates an arrow trigger: exactly the two endpoints are
// highlighted and all other items dimmed. An arrow hover arriving while an
// item hover is active replaces it outright.
func (c *HighlightController) HoverConnector(conn Connector) {
	highlighted := map[string]bool{conn.FromID: true, conn.ToID: true}
	c.state = HighlightState{
		Source:      SourceArrow,
		HoveredID:   conn.Key(),
		Highlighted: highlighted,
		Dimmed:      c.complement(highlighted),
		hoveredFrom: conn.FromID,
		hoveredTo:   conn.ToID,
	}
}

// HoverMilestone activates a milestone trigger: the milestone and its
// linked work items are highlighted, unlinked items dimmed. Also used for
// keyboard focus on a milestone marker.
func (c *HighlightController) HoverMilestone(milestoneID string) {
	highlighted := map[string]bool{milestoneID: true}
	for _, id := range c.index.LinkedItems(milestoneID) {
		highlighted[id] = true
	}
	c.state = HighlightState{
		Source:      SourceMilestone,
		HoveredID:   milestoneID,
		Highlighted: highlighted,
		Dimmed:      c.complement(highlighted),
	}
}

// Clear deactivates the highlight (mouse-leave or blur with no replacement
// trigger): every item and edge returns to normal classification.
func (c *HighlightController) Clear() {
	c.state = HighlightState{
		Source:      SourceNone,
		Highlighted: map[string]bool{},
		Dimmed:      map[string]bool{},
	}
}

// ItemEmphasis classifies a work item (or milestone) id under the active
// highlight.
func (c *HighlightController) ItemEmphasis(id string) Emphasis {
	switch {
	case c.state.Source == SourceNone:
		return EmphasisNormal
	case c.state.Highlighted[id]:
		return EmphasisHighlighted
	default:
		return EmphasisDimmed
	}
}

// EdgeEmphasis classifies a connector under the active highlight:
//   - item trigger: edges with the hovered item as an endpoint highlight,
//     all others dim.
//   - arrow trigger: only the hovered edge highlights.
//   - milestone trigger: only links from the hovered milestone highlight.
func (c *HighlightController) EdgeEmphasis(conn Connector) Emphasis {
	switch c.state.Source {
	case SourceNone:
		return EmphasisNormal
	case SourceItem:
		if conn.Touches(c.state.HoveredID) {
			return EmphasisHighlighted
		}
	case SourceArrow:
		if conn.FromID == c.state.hoveredFrom && conn.ToID == c.state.hoveredTo {
			return EmphasisHighlighted
		}
	case SourceMilestone:
		if conn.Kind == EdgeMilestoneLink && conn.FromID == c.state.HoveredID {
			return EmphasisHighlighted
		}
	}
	return EmphasisDimmed
}

// complement returns every known work item id not present in set.
func (c *HighlightController) complement(set map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, id := range c.allItemIDs {
		if !set[id] {
			out[id] = true
		}
	}
	return out
}

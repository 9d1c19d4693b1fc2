package timeline

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
)

// Point is a canvas coordinate: X is a column, Y a row.
type Point struct {
	X int
	Y int
}

// EdgeKind distinguishes dependency connectors from milestone links.
type EdgeKind string

const (
	EdgeDependency    EdgeKind = "dependency"
	EdgeMilestoneLink EdgeKind = "milestone_link"
)

// Connector is the routed geometry of one edge. Connectors render above the
// background grid and below item bars.
type Connector struct {
	Kind EdgeKind

	// Edge identity. For dependencies FromID is the predecessor work item
	// and ToID the successor; for milestone links FromID is the milestone.
	FromID string
	ToID   string

	// Points is the orthogonal polyline from the predecessor's trailing
	// edge to the successor's leading edge: either a single horizontal
	// segment (same row) or a horizontal-vertical-horizontal route.
	Points []Point

	// Label is the accessible description combining both endpoint titles.
	Label string

	// Critical marks edges whose both endpoints are on the critical path.
	Critical bool
}

// Key identifies the edge for hover matching.
func (c Connector) Key() string {
	return c.FromID + "→" + c.ToID
}

// Touches reports whether the connector has the given id as an endpoint.
func (c Connector) Touches(id string) bool {
	return c.FromID == id || c.ToID == id
}

// RouteDependency computes the connector for a dependency edge given both
// endpoints' bar rects. Returns false when either endpoint has no geometry
// this pass (unscheduled item).
func RouteDependency(dep domain.Dependency, bars []BarRect, titles map[string]string, critical map[string]bool) (Connector, bool) {
	from, ok := BarFor(bars, dep.PredecessorID)
	if !ok {
		return Connector{}, false
	}
	to, ok := BarFor(bars, dep.SuccessorID)
	if !ok {
		return Connector{}, false
	}

	start := Point{X: from.End(), Y: from.RowIndex}
	end := Point{X: to.X, Y: to.RowIndex}

	c := Connector{
		Kind:     EdgeDependency,
		FromID:   dep.PredecessorID,
		ToID:     dep.SuccessorID,
		Points:   routeOrthogonal(start, end),
		Label:    fmt.Sprintf("%s to %s, %s", titles[dep.PredecessorID], titles[dep.SuccessorID], dep.Type.Label()),
		Critical: critical[dep.PredecessorID] && critical[dep.SuccessorID],
	}
	return c, true
}

// RouteMilestoneLinks computes the connectors from a milestone's marker
// position to every linked item's bar, using the same routing as
// dependencies against the marker point instead of a bar edge.
func RouteMilestoneLinks(m *domain.Milestone, marker Point, bars []BarRect, titles map[string]string) []Connector {
	var out []Connector
	for _, itemID := range m.LinkedWorkItemIDs {
		bar, ok := BarFor(bars, itemID)
		if !ok {
			continue
		}
		end := Point{X: bar.End(), Y: bar.RowIndex}
		out = append(out, Connector{
			Kind:   EdgeMilestoneLink,
			FromID: m.ID,
			ToID:   itemID,
			Points: routeOrthogonal(marker, end),
			Label:  fmt.Sprintf("%s contributes to %s", titles[itemID], m.Title),
		})
	}
	return out
}

// routeOrthogonal returns the polyline between two points: a direct
// horizontal segment when the rows match, otherwise a
// horizontal-vertical-horizontal route with the elbow one column past the
// start so the connector always leaves the trailing edge before turning.
func routeOrthogonal(start, end Point) []Point {
	if start.Y == end.Y {
		return []Point{start, end}
	}
	elbowX := start.X + 1
	if end.X > elbowX {
		// Turn at the midpoint between the two edges.
		elbowX = start.X + (end.X-start.X)/2
	}
	return []Point{
		start,
		{X: elbowX, Y: start.Y},
		{X: elbowX, Y: end.Y},
		end,
	}
}

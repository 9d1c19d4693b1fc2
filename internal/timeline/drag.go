package timeline

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// DragZone classifies where inside a bar a drag grabbed it.
type DragZone string

const (
	ZoneMove        DragZone = "move"
	ZoneResizeStart DragZone = "resize_start"
	ZoneResizeEnd   DragZone = "resize_end"
)

// Edge-zone widths in columns. Touch input gets a wider grab zone to
// compensate for finger imprecision.
const (
	edgeThreshold      = 1
	edgeThresholdTouch = 2
)

// ClassifyZone maps a pointer column inside a bar to a drag zone: the
// resize zones hug the left and right edges, everything between is a move.
func ClassifyZone(bar BarRect, x int, touch bool) DragZone {
	threshold := edgeThreshold
	if touch {
		threshold = edgeThresholdTouch
	}
	// Never let the two edge zones swallow the whole bar.
	if 2*threshold >= bar.Width {
		threshold = bar.Width / 2
	}
	switch {
	case x < bar.X+threshold:
		return ZoneResizeStart
	case x >= bar.End()-threshold:
		return ZoneResizeEnd
	default:
		return ZoneMove
	}
}

// DragPhase is the controller's position in the drag state machine.
type DragPhase string

const (
	PhaseIdle       DragPhase = "idle"
	PhaseDragging   DragPhase = "dragging"
	PhaseCommitting DragPhase = "committing"
)

// DragState is the live state of an active drag. Preview dates are tentative
// and never written back to the work item; the bar layout reads them only
// through LayoutBars.
type DragState struct {
	ItemID        string
	Zone          DragZone
	PreviewStart  time.Time
	PreviewEnd    time.Time
	OriginalStart time.Time
	OriginalEnd   time.Time
}

// Moved reports whether the preview differs from the original dates.
func (s DragState) Moved() bool {
	return !s.PreviewStart.Equal(s.OriginalStart) || !s.PreviewEnd.Equal(s.OriginalEnd)
}

// CommitRequest is handed to the caller on release so it can invoke the
// persistence collaborator off the controller. The generation ties the
// eventual resolution back to this drag; stale resolutions are ignored.
type CommitRequest struct {
	Generation int
	ItemID     string
	OldStart   time.Time
	OldEnd     time.Time
	NewStart   time.Time
	NewEnd     time.Time
}

// DragController is the chart-wide drag state machine:
// idle → dragging(zone) → committing → idle, with cancel and no-op release
// short-circuiting back to idle. At most one drag exists at a time.
type DragController struct {
	phase      DragPhase
	state      DragState
	generation int
}

// NewDragController returns an idle controller.
func NewDragController() *DragController {
	return &DragController{phase: PhaseIdle}
}

// Phase returns the current state-machine phase.
func (c *DragController) Phase() DragPhase {
	return c.phase
}

// Active returns the live drag state while dragging or committing, else nil.
func (c *DragController) Active() *DragState {
	if c.phase == PhaseIdle {
		return nil
	}
	s := c.state
	return &s
}

// Start begins a drag on the item in the given zone. It refuses (returning
// false) when a drag is already active, a commit is outstanding, or the item
// lacks either date. An invalid drag target is not an error, it just never
// becomes a drag.
func (c *DragController) Start(item *domain.WorkItem, zone DragZone) bool {
	if c.phase != PhaseIdle || !item.Scheduled() {
		return false
	}
	c.generation++
	c.phase = PhaseDragging
	c.state = DragState{
		ItemID:        item.ID,
		Zone:          zone,
		PreviewStart:  domain.DayFloor(*item.StartDate),
		PreviewEnd:    domain.DayFloor(*item.EndDate),
		OriginalStart: domain.DayFloor(*item.StartDate),
		OriginalEnd:   domain.DayFloor(*item.EndDate),
	}
	return true
}

// Move applies a horizontal pointer delta (in columns, measured from the
// drag anchor) to the preview dates. The delta is snapped to whole days.
// Move zone shifts both dates; the resize zones shift one date, clamped so
// the bar never collapses below one day.
func (c *DragController) Move(dxCells int, zoom ZoomLevel) {
	if c.phase != PhaseDragging {
		return
	}
	days := XToDays(dxCells, zoom)
	switch c.state.Zone {
	case ZoneMove:
		c.state.PreviewStart = domain.AddDays(c.state.OriginalStart, days)
		c.state.PreviewEnd = domain.AddDays(c.state.OriginalEnd, days)
	case ZoneResizeStart:
		start := domain.AddDays(c.state.OriginalStart, days)
		latest := domain.AddDays(c.state.OriginalEnd, -1)
		if start.After(latest) {
			start = latest
		}
		c.state.PreviewStart = start
		c.state.PreviewEnd = c.state.OriginalEnd
	case ZoneResizeEnd:
		end := domain.AddDays(c.state.OriginalEnd, days)
		earliest := domain.AddDays(c.state.OriginalStart, 1)
		if end.Before(earliest) {
			end = earliest
		}
		c.state.PreviewStart = c.state.OriginalStart
		c.state.PreviewEnd = end
	}
}

// Release ends the drag. When the preview moved, the controller enters
// committing and returns the request the caller must resolve through the
// persistence collaborator; otherwise it returns false and goes idle.
func (c *DragController) Release() (CommitRequest, bool) {
	if c.phase != PhaseDragging {
		return CommitRequest{}, false
	}
	if !c.state.Moved() {
		c.phase = PhaseIdle
		return CommitRequest{}, false
	}
	c.phase = PhaseCommitting
	return CommitRequest{
		Generation: c.generation,
		ItemID:     c.state.ItemID,
		OldStart:   c.state.OriginalStart,
		OldEnd:     c.state.OriginalEnd,
		NewStart:   c.state.PreviewStart,
		NewEnd:     c.state.PreviewEnd,
	}, true
}

// Cancel discards the drag immediately: no commit, no events. A resolution
// arriving for a commit that was outstanding at cancel time is stale and
// will be ignored.
func (c *DragController) Cancel() {
	c.phase = PhaseIdle
	c.generation++
}

// Resolve completes an outstanding commit and returns to idle. Returns
// false when the resolution is stale (the controller moved on: cancelled,
// torn down, or a different drag started); stale results must never touch
// current state. Whether the persistence call succeeded or failed is the
// caller's concern; either way the drag state is discarded, so a failed
// commit reverts the bar to its original geometry on the next layout pass.
func (c *DragController) Resolve(req CommitRequest) bool {
	if c.phase != PhaseCommitting || req.Generation != c.generation {
		return false
	}
	c.phase = PhaseIdle
	return true
}

package timeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragItem(start, end time.Time) *domain.WorkItem {
	return &domain.WorkItem{ID: "wi-1", Title: "Design", StartDate: &start, EndDate: &end}
}

func TestClassifyZone(t *testing.T) {
	bar := BarRect{X: 10, Width: 8}

	assert.Equal(t, ZoneResizeStart, ClassifyZone(bar, 10, false))
	assert.Equal(t, ZoneMove, ClassifyZone(bar, 11, false))
	assert.Equal(t, ZoneMove, ClassifyZone(bar, 14, false))
	assert.Equal(t, ZoneMove, ClassifyZone(bar, 16, false))
	assert.Equal(t, ZoneResizeEnd, ClassifyZone(bar, 17, false))
}

func TestClassifyZone_TouchWidensEdges(t *testing.T) {
	bar := BarRect{X: 10, Width: 8}

	assert.Equal(t, ZoneMove, ClassifyZone(bar, 11, false))
	assert.Equal(t, ZoneResizeStart, ClassifyZone(bar, 11, true))
	assert.Equal(t, ZoneMove, ClassifyZone(bar, 16, false))
	assert.Equal(t, ZoneResizeEnd, ClassifyZone(bar, 16, true))
}

func TestClassifyZone_NarrowBarKeepsMoveZone(t *testing.T) {
	bar := BarRect{X: 0, Width: 3}

	// Edge zones shrink so they can never swallow the whole bar.
	assert.Equal(t, ZoneResizeStart, ClassifyZone(bar, 0, true))
	assert.Equal(t, ZoneMove, ClassifyZone(bar, 1, true))
	assert.Equal(t, ZoneResizeEnd, ClassifyZone(bar, 2, true))
}

func TestDrag_StartRefusesUnscheduled(t *testing.T) {
	c := NewDragController()
	start := day(2026, 3, 1)

	assert.False(t, c.Start(&domain.WorkItem{ID: "wi-1"}, ZoneMove))
	assert.False(t, c.Start(&domain.WorkItem{ID: "wi-1", StartDate: &start}, ZoneMove))
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestDrag_OnlyOneActive(t *testing.T) {
	c := NewDragController()
	item := dragItem(day(2026, 3, 1), day(2026, 3, 5))

	require.True(t, c.Start(item, ZoneMove))
	assert.False(t, c.Start(item, ZoneMove), "second pointer-down while dragging is ignored")
}

func TestDrag_MoveShiftsBothDatesSnapped(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneMove))

	// 4 cells/day at day zoom; 10 cells rounds to 3 days, not 2.
	c.Move(10, ZoomDay)

	s := c.Active()
	require.NotNil(t, s)
	assert.Equal(t, day(2026, 3, 4), s.PreviewStart)
	assert.Equal(t, day(2026, 3, 8), s.PreviewEnd)
	assert.Equal(t, day(2026, 3, 1), s.OriginalStart, "originals are kept for rollback")
}

func TestDrag_MoveAppliesFromOriginals(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneMove))

	// Successive moves are absolute deltas from the anchor, not cumulative.
	c.Move(8, ZoomDay)
	c.Move(4, ZoomDay)

	s := c.Active()
	assert.Equal(t, day(2026, 3, 2), s.PreviewStart)
	assert.Equal(t, day(2026, 3, 6), s.PreviewEnd)
}

func TestDrag_ResizeStartClamped(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneResizeStart))

	c.Move(100, ZoomDay) // way past the end date

	s := c.Active()
	assert.Equal(t, day(2026, 3, 4), s.PreviewStart, "start never passes end − 1 day")
	assert.Equal(t, day(2026, 3, 5), s.PreviewEnd, "end date untouched by a start resize")
}

func TestDrag_ResizeEndClamped(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneResizeEnd))

	c.Move(-100, ZoomDay)

	s := c.Active()
	assert.Equal(t, day(2026, 3, 2), s.PreviewEnd, "end never precedes start + 1 day")
	assert.Equal(t, day(2026, 3, 1), s.PreviewStart)
}

func TestDrag_ReleaseWithoutMovementGoesIdle(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneMove))

	c.Move(1, ZoomDay) // under half a day, snaps to zero
	_, committed := c.Release()

	assert.False(t, committed)
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestDrag_ReleaseCommitsAndResolves(t *testing.T) {
	c := NewDragController()
	item := dragItem(day(2026, 3, 1), day(2026, 3, 5))
	require.True(t, c.Start(item, ZoneMove))
	c.Move(8, ZoomDay)

	req, committed := c.Release()
	require.True(t, committed)
	assert.Equal(t, PhaseCommitting, c.Phase())
	assert.Equal(t, "wi-1", req.ItemID)
	assert.Equal(t, day(2026, 3, 1), req.OldStart)
	assert.Equal(t, day(2026, 3, 5), req.OldEnd)
	assert.Equal(t, day(2026, 3, 3), req.NewStart)
	assert.Equal(t, day(2026, 3, 7), req.NewEnd)

	assert.False(t, c.Start(item, ZoneMove), "no fresh drag while committing")

	assert.True(t, c.Resolve(req))
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestDrag_StaleResolveIgnored(t *testing.T) {
	c := NewDragController()
	item := dragItem(day(2026, 3, 1), day(2026, 3, 5))
	require.True(t, c.Start(item, ZoneMove))
	c.Move(8, ZoomDay)
	req, _ := c.Release()

	// The view is torn down / the drag cancelled while the commit is
	// still outstanding.
	c.Cancel()
	assert.False(t, c.Resolve(req), "a resolution arriving after cancel is stale")
	assert.Equal(t, PhaseIdle, c.Phase())

	// A whole new drag cycle must also invalidate the old request.
	require.True(t, c.Start(item, ZoneMove))
	c.Move(4, ZoomDay)
	req2, _ := c.Release()
	assert.False(t, c.Resolve(req))
	assert.True(t, c.Resolve(req2))
}

func TestDrag_CancelDiscardsPreview(t *testing.T) {
	c := NewDragController()
	require.True(t, c.Start(dragItem(day(2026, 3, 1), day(2026, 3, 5)), ZoneMove))
	c.Move(20, ZoomDay)

	c.Cancel()
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Nil(t, c.Active())
}

// TestDrag_ClampInvariants property-tests the resize clamps: whatever the
// pointer does, the preview span never collapses below one day and the
// untouched date never moves.
func TestDrag_ClampInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	zooms := []ZoomLevel{ZoomDay, ZoomWeek, ZoomMonth}

	for trial := 0; trial < 300; trial++ {
		start := domain.AddDays(day(2026, 1, 1), rng.Intn(200))
		end := domain.AddDays(start, rng.Intn(30)+1)
		zone := []DragZone{ZoneMove, ZoneResizeStart, ZoneResizeEnd}[rng.Intn(3)]
		zoom := zooms[rng.Intn(len(zooms))]

		c := NewDragController()
		require.True(t, c.Start(dragItem(start, end), zone))
		c.Move(rng.Intn(801)-400, zoom)

		s := c.Active()
		require.NotNil(t, s)
		assert.True(t, s.PreviewStart.Before(s.PreviewEnd),
			"trial %d: preview start must stay before preview end", trial)
		switch zone {
		case ZoneResizeStart:
			assert.Equal(t, end, s.PreviewEnd, "trial %d", trial)
		case ZoneResizeEnd:
			assert.Equal(t, start, s.PreviewStart, "trial %d", trial)
		case ZoneMove:
			assert.Equal(t, domain.DaysBetween(start, end),
				domain.DaysBetween(s.PreviewStart, s.PreviewEnd),
				"trial %d: move preserves the span length", trial)
		}
	}
}

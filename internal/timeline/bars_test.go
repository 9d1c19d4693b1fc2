package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledItem(id string, row int, start, end time.Time) *domain.WorkItem {
	return &domain.WorkItem{ID: id, Title: id, RowIndex: row, StartDate: &start, EndDate: &end}
}

func TestLayoutBars_RowOrderAndGeometry(t *testing.T) {
	r := ComputeChartRange(day(2026, 3, 1), day(2026, 4, 1), ZoomDay)
	items := []*domain.WorkItem{
		scheduledItem("wi-1", 0, day(2026, 3, 1), day(2026, 3, 5)),
		scheduledItem("wi-2", 1, day(2026, 3, 5), day(2026, 3, 12)),
	}

	bars := LayoutBars(items, r, ZoomDay, nil)
	require.Len(t, bars, 2)

	assert.Equal(t, DateToX(day(2026, 3, 1), r, ZoomDay), bars[0].X)
	assert.Equal(t, 16, bars[0].Width, "4 days at 4 cells/day")
	assert.Equal(t, 0, bars[0].RowIndex)
	assert.Equal(t, 1, bars[1].RowIndex)
}

func TestLayoutBars_SkipsUnscheduled(t *testing.T) {
	r := ComputeChartRange(day(2026, 3, 1), day(2026, 4, 1), ZoomDay)
	start := day(2026, 3, 3)
	items := []*domain.WorkItem{
		{ID: "wi-1", RowIndex: 0, StartDate: &start}, // no end date
		{ID: "wi-2", RowIndex: 1},                    // fully unscheduled
		scheduledItem("wi-3", 2, day(2026, 3, 4), day(2026, 3, 6)),
	}

	bars := LayoutBars(items, r, ZoomDay, nil)
	require.Len(t, bars, 1)
	assert.Equal(t, "wi-3", bars[0].ItemID)
}

func TestLayoutBars_EmptyInput(t *testing.T) {
	r := DefaultChartRange(day(2026, 3, 1), ZoomWeek)
	assert.Empty(t, LayoutBars(nil, r, ZoomWeek, nil))
}

func TestLayoutBars_MinimumWidth(t *testing.T) {
	r := ComputeChartRange(day(2026, 1, 1), day(2026, 12, 31), ZoomMonth)
	items := []*domain.WorkItem{
		scheduledItem("wi-1", 0, day(2026, 6, 1), day(2026, 6, 2)), // 1 day at 0.5 cells/day
	}

	bars := LayoutBars(items, r, ZoomMonth, nil)
	require.Len(t, bars, 1)
	assert.Equal(t, MinBarWidth, bars[0].Width)
}

func TestLayoutBars_DragPreviewOverridesStoredDates(t *testing.T) {
	r := ComputeChartRange(day(2026, 3, 1), day(2026, 4, 1), ZoomDay)
	items := []*domain.WorkItem{
		scheduledItem("wi-1", 0, day(2026, 3, 1), day(2026, 3, 5)),
		scheduledItem("wi-2", 1, day(2026, 3, 6), day(2026, 3, 10)),
	}
	drag := &DragState{
		ItemID:       "wi-1",
		Zone:         ZoneMove,
		PreviewStart: day(2026, 3, 8),
		PreviewEnd:   day(2026, 3, 12),
	}

	bars := LayoutBars(items, r, ZoomDay, drag)
	require.Len(t, bars, 2)

	dragged, ok := BarFor(bars, "wi-1")
	require.True(t, ok)
	assert.Equal(t, DateToX(day(2026, 3, 8), r, ZoomDay), dragged.X, "dragged item follows the preview")

	other, ok := BarFor(bars, "wi-2")
	require.True(t, ok)
	assert.Equal(t, DateToX(day(2026, 3, 6), r, ZoomDay), other.X, "other items keep stored dates")
}

package timeline

import "github.com/alexanderramin/chronos/internal/domain"

// MinBarWidth is the narrowest rendered bar. Single-day items at coarse zoom
// would otherwise collapse to zero columns and become untargetable.
const MinBarWidth = 2

// BarRect is the derived geometry of one work item's bar. It is recomputed
// from (range, zoom, dates) on every relevant change and never stored.
type BarRect struct {
	ItemID   string
	X        int
	Width    int
	RowIndex int
}

// End returns the exclusive right edge of the bar.
func (b BarRect) End() int {
	return b.X + b.Width
}

// LayoutBars derives bar rectangles for the items, in row order. Items
// missing either date produce no geometry (the caller renders an
// unscheduled placeholder for those rows). When drag is non-nil and active
// for an item, that item's preview dates replace its stored dates; this is
// the single point where preview and stored state are reconciled, so it must
// be re-evaluated on every interaction tick.
func LayoutBars(items []*domain.WorkItem, r ChartRange, zoom ZoomLevel, drag *DragState) []BarRect {
	var bars []BarRect
	for _, item := range items {
		start, end := item.StartDate, item.EndDate
		if drag != nil && drag.ItemID == item.ID {
			start, end = &drag.PreviewStart, &drag.PreviewEnd
		}
		if start == nil || end == nil {
			continue
		}
		x := DateToX(*start, r, zoom)
		width := DateToX(*end, r, zoom) - x
		if width < MinBarWidth {
			width = MinBarWidth
		}
		bars = append(bars, BarRect{
			ItemID:   item.ID,
			X:        x,
			Width:    width,
			RowIndex: item.RowIndex,
		})
	}
	return bars
}

// BarFor returns the rect for the given item id, or false when the item has
// no geometry this pass.
func BarFor(bars []BarRect, itemID string) (BarRect, bool) {
	for _, b := range bars {
		if b.ItemID == itemID {
			return b, true
		}
	}
	return BarRect{}, false
}

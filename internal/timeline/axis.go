// Package timeline implements the chart interaction engine: the date↔column
// coordinate transform, bar and connector geometry, the drag-to-reschedule
// state machine, and hover/focus relationship highlighting.
//
// Everything here is expressed in terminal cell columns ("x") measured from
// the left edge of the chart canvas. All functions are pure except the two
// controllers, which hold the small interaction state owned by the chart view.
package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ZoomLevel selects the display granularity of the time axis.
type ZoomLevel string

const (
	ZoomDay   ZoomLevel = "day"
	ZoomWeek  ZoomLevel = "week"
	ZoomMonth ZoomLevel = "month"
)

// CellsPerDay returns the fixed horizontal scale for the zoom level.
func (z ZoomLevel) CellsPerDay() float64 {
	switch z {
	case ZoomDay:
		return 4
	case ZoomMonth:
		return 0.5
	default: // ZoomWeek
		return 1
	}
}

// padDays returns the margin added on each side of the item-derived span so
// edge bars are not flush against the canvas border. Coarser zooms pad wider.
func (z ZoomLevel) padDays() int {
	switch z {
	case ZoomDay:
		return 3
	case ZoomMonth:
		return 21
	default:
		return 7
	}
}

// ZoomIn returns the next finer zoom level, or the same level at the finest.
func (z ZoomLevel) ZoomIn() ZoomLevel {
	switch z {
	case ZoomMonth:
		return ZoomWeek
	case ZoomWeek:
		return ZoomDay
	default:
		return ZoomDay
	}
}

// ZoomOut returns the next coarser zoom level, or the same level at the coarsest.
func (z ZoomLevel) ZoomOut() ZoomLevel {
	switch z {
	case ZoomDay:
		return ZoomWeek
	case ZoomWeek:
		return ZoomMonth
	default:
		return ZoomMonth
	}
}

// ChartRange is the visible calendar window. It always encloses every dated
// item plus a zoom-dependent padding margin.
type ChartRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the whole-day length of the range.
func (r ChartRange) Days() int {
	return domain.DaysBetween(r.Start, r.End)
}

// Contains reports whether the day-floored date falls inside the range,
// inclusive of both bounds.
func (r ChartRange) Contains(date time.Time) bool {
	d := domain.DayFloor(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// ComputeChartRange derives the visible window from the earliest and latest
// item dates. A reversed input span is clamped rather than rejected: the
// range is never shorter than one day before padding is applied.
func ComputeChartRange(earliest, latest time.Time, zoom ZoomLevel) ChartRange {
	start := domain.DayFloor(earliest)
	end := domain.DayFloor(latest)
	if end.Before(start) {
		end = start
	}
	if end.Equal(start) {
		end = domain.AddDays(start, 1)
	}
	pad := zoom.padDays()
	return ChartRange{
		Start: domain.AddDays(start, -pad),
		End:   domain.AddDays(end, pad),
	}
}

// DefaultChartRange is the fallback window used when no item carries dates:
// roughly three months centered on today, plus the usual padding.
func DefaultChartRange(today time.Time, zoom ZoomLevel) ChartRange {
	return ComputeChartRange(domain.AddDays(today, -45), domain.AddDays(today, 45), zoom)
}

// DateToX maps a date to a column offset within the chart canvas. The
// transform is linear in whole days and monotonic non-decreasing.
func DateToX(date time.Time, r ChartRange, zoom ZoomLevel) int {
	days := domain.DaysBetween(r.Start, date)
	return int(math.Round(float64(days) * zoom.CellsPerDay()))
}

// XToDays converts a horizontal cell delta back into the nearest whole-day
// delta (snap-to-day). Inverse of DateToX up to rounding.
func XToDays(dx int, zoom ZoomLevel) int {
	return int(math.Round(float64(dx) / zoom.CellsPerDay()))
}

// ChartWidth returns the full canvas width in columns for the range.
func ChartWidth(r ChartRange, zoom ZoomLevel) int {
	return DateToX(r.End, r, zoom)
}

// TodayX returns the column of the today marker, or false when today falls
// outside the visible range.
func TodayX(today time.Time, r ChartRange, zoom ZoomLevel) (int, bool) {
	if !r.Contains(today) {
		return 0, false
	}
	return DateToX(today, r, zoom), true
}

// GridLine is a vertical rule on the canvas. Major lines sit on coarser
// calendar boundaries and are drawn with a heavier stroke.
type GridLine struct {
	X     int
	Major bool
}

// GridLines generates the vertical rules for the range. Minor lines follow
// the zoom's base granularity (days at day zoom, weeks otherwise); major
// lines follow the next coarser boundary (months, or years at month zoom).
func GridLines(r ChartRange, zoom ZoomLevel) []GridLine {
	var lines []GridLine
	for d := r.Start; !d.After(r.End); d = domain.AddDays(d, 1) {
		var minor, major bool
		switch zoom {
		case ZoomDay:
			minor = true
			major = d.Day() == 1
		case ZoomWeek:
			minor = d.Weekday() == time.Monday
			major = d.Day() == 1
		case ZoomMonth:
			minor = d.Day() == 1
			major = d.Day() == 1 && d.Month() == time.January
		}
		if !minor && !major {
			continue
		}
		lines = append(lines, GridLine{X: DateToX(d, r, zoom), Major: major})
	}
	return lines
}

// HeaderCell is one labelled span in the chart header row.
type HeaderCell struct {
	X     int
	Width int
	Label string
	Today bool // cell containing today, styled distinctly
}

// HeaderCells generates one cell per granularity unit of the zoom level.
// Labels coarsen with the zoom: day-of-month at day zoom, week start dates
// at week zoom, month names at month zoom.
func HeaderCells(r ChartRange, zoom ZoomLevel, today time.Time) []HeaderCell {
	today = domain.DayFloor(today)
	var cells []HeaderCell
	for d := r.Start; d.Before(r.End); {
		next := nextHeaderBoundary(d, zoom)
		if next.After(r.End) {
			next = r.End
		}
		x := DateToX(d, r, zoom)
		cell := HeaderCell{
			X:     x,
			Width: DateToX(next, r, zoom) - x,
			Label: headerLabel(d, zoom),
			Today: !today.Before(d) && today.Before(next),
		}
		cells = append(cells, cell)
		d = next
	}
	return cells
}

func nextHeaderBoundary(d time.Time, zoom ZoomLevel) time.Time {
	switch zoom {
	case ZoomDay:
		return domain.AddDays(d, 1)
	case ZoomWeek:
		// Advance to the next Monday.
		n := (8 - int(d.Weekday())) % 7
		if n == 0 {
			n = 7
		}
		return domain.AddDays(d, n)
	default:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}
}

func headerLabel(d time.Time, zoom ZoomLevel) string {
	switch zoom {
	case ZoomDay:
		if d.Day() == 1 {
			return d.Format("Jan 2")
		}
		return d.Format("2")
	case ZoomWeek:
		return d.Format("Jan 2")
	default:
		if d.Month() == time.January {
			return d.Format("Jan 2006")
		}
		return d.Format("Jan")
	}
}

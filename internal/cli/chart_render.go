package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/theme"
	"github.com/alexanderramin/chronos/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// milestoneLaneRow is the canvas row of the milestone marker lane, one
// above the first item row. Connector routes to markers use it as their
// endpoint Y.
const milestoneLaneRow = -1

// paintedCell is one canvas cell with its resolved style.
type paintedCell struct {
	ch    rune
	color lipgloss.TerminalColor
	bold  bool
}

// rowCanvas is a scanline of the chart, indexed by absolute canvas X.
type rowCanvas struct {
	offset int
	cells  []paintedCell
}

func newRowCanvas(offset, width int) *rowCanvas {
	return &rowCanvas{offset: offset, cells: make([]paintedCell, width)}
}

func (rc *rowCanvas) set(x int, ch rune, color lipgloss.TerminalColor, bold bool) {
	i := x - rc.offset
	if i < 0 || i >= len(rc.cells) {
		return
	}
	rc.cells[i] = paintedCell{ch: ch, color: color, bold: bold}
}

func (rc *rowCanvas) render() string {
	var b strings.Builder
	for _, c := range rc.cells {
		if c.ch == 0 {
			b.WriteRune(' ')
			continue
		}
		style := lipgloss.NewStyle().Foreground(c.color)
		if c.bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(string(c.ch)))
	}
	return b.String()
}

func (v *chartView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("loading timeline…")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("error: "+v.err.Error())
	}
	if v.payload == nil || len(v.payload.Items) == 0 {
		return "\n  " + formatter.Dim("no scheduled work items; add some with `chronos item add`")
	}

	var lines []string
	lines = append(lines, v.renderHeaderRow())
	lines = append(lines, v.renderMilestoneLane())
	lines = append(lines, v.renderItemRows()...)
	if tip := v.renderTooltip(); tip != "" {
		lines = append(lines, tip)
	}
	return strings.Join(lines, "\n")
}

// renderHeaderRow draws the date scale, prefixed by the zoom indicator in
// the sidebar gutter.
func (v *chartView) renderHeaderRow() string {
	gutter := fmt.Sprintf(" %-*s", sidebarWidth-1, string(v.state.Zoom))
	rc := newRowCanvas(v.scrollX, v.canvasWidth())

	headerColor := v.state.Theme.Resolve(theme.TokenHeader)
	todayColor := v.state.Theme.Resolve(theme.TokenToday)
	for _, cell := range timeline.HeaderCells(v.rng, v.state.Zoom, v.today) {
		color := headerColor
		if cell.Today {
			color = todayColor
		}
		for i, r := range []rune(cell.Label) {
			if i >= cell.Width {
				break
			}
			rc.set(cell.X+i, r, color, cell.Today)
		}
	}
	return formatter.Dim(gutter) + formatter.Dim("│") + rc.render()
}

// renderMilestoneLane draws the pinned marker lane above the item rows.
func (v *chartView) renderMilestoneLane() string {
	gutter := strings.Repeat(" ", sidebarWidth)
	rc := newRowCanvas(v.scrollX, v.canvasWidth())
	v.paintGrid(rc)
	v.paintToday(rc)

	for _, m := range v.payload.Milestones {
		x := timeline.DateToX(m.TargetDate, v.rng, v.state.Zoom)
		color := v.state.Theme.Resolve(theme.TokenMilestone)
		emphasized := v.highlight.State().Source == timeline.SourceMilestone &&
			v.highlight.State().HoveredID == m.ID
		rc.set(x, '◆', color, emphasized)
	}
	return gutter + formatter.Dim("│") + rc.render()
}

func (v *chartView) renderItemRows() []string {
	rows := make([]string, 0, v.visibleRows())
	for screenRow := 0; screenRow < v.visibleRows(); screenRow++ {
		row := screenRow + v.scrollY
		if row >= len(v.payload.Items) {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, v.renderItemRow(row))
	}
	return rows
}

func (v *chartView) renderItemRow(row int) string {
	item := v.itemInRow(row)

	rc := newRowCanvas(v.scrollX, v.canvasWidth())
	v.paintGrid(rc)
	v.paintToday(rc)
	v.paintConnectors(rc, row)
	v.paintBars(rc, row)

	return v.renderSidebarCell(item, row) + formatter.Dim("│") + rc.render()
}

func (v *chartView) itemInRow(row int) *domain.WorkItem {
	for _, it := range v.payload.Items {
		if it.RowIndex == row {
			return it
		}
	}
	return nil
}

func (v *chartView) renderSidebarCell(item *domain.WorkItem, row int) string {
	if item == nil {
		return strings.Repeat(" ", sidebarWidth)
	}
	title := item.Title
	if runes := []rune(title); len(runes) > sidebarWidth-2 {
		title = string(runes[:sidebarWidth-3]) + "…"
	}
	cell := fmt.Sprintf(" %-*s", sidebarWidth-1, title)

	style := lipgloss.NewStyle().Foreground(v.state.Theme.Resolve(theme.TokenText))
	switch v.highlight.ItemEmphasis(item.ID) {
	case timeline.EmphasisHighlighted:
		style = style.Bold(true)
	case timeline.EmphasisDimmed:
		style = lipgloss.NewStyle().Foreground(v.state.Theme.Resolve(theme.TokenTextDim))
	}
	if v.focusIdx >= 0 && v.payload.Items[v.focusIdx].ID == item.ID {
		style = style.Underline(true)
	}
	return style.Render(cell)
}

func (v *chartView) paintGrid(rc *rowCanvas) {
	minor := v.state.Theme.Resolve(theme.TokenGridMinor)
	major := v.state.Theme.Resolve(theme.TokenGridMajor)
	for _, g := range timeline.GridLines(v.rng, v.state.Zoom) {
		if g.Major {
			rc.set(g.X, '┊', major, false)
		} else {
			rc.set(g.X, '┆', minor, false)
		}
	}
}

func (v *chartView) paintToday(rc *rowCanvas) {
	if x, ok := timeline.TodayX(v.today, v.rng, v.state.Zoom); ok {
		rc.set(x, '│', v.state.Theme.Resolve(theme.TokenToday), false)
	}
}

// paintConnectors draws the segments of every connector that cross the
// given row, with corner and arrowhead glyphs.
func (v *chartView) paintConnectors(rc *rowCanvas, row int) {
	for _, c := range v.connectors {
		color := v.state.Theme.Resolve(theme.TokenArrow)
		if c.Critical {
			color = v.state.Theme.Resolve(theme.TokenArrowCritical)
		}
		bold := false
		switch v.highlight.EdgeEmphasis(c) {
		case timeline.EmphasisHighlighted:
			bold = true
		case timeline.EmphasisDimmed:
			color = v.state.Theme.Resolve(theme.TokenGridMinor)
		}
		v.paintPolyline(rc, row, c.Points, color, bold)
	}
}

func (v *chartView) paintPolyline(rc *rowCanvas, row int, pts []timeline.Point, color lipgloss.TerminalColor, bold bool) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		last := i+2 == len(pts)
		switch {
		case a.Y == b.Y && a.Y == row:
			lo, hi := minInt(a.X, b.X), maxInt(a.X, b.X)
			for x := lo; x <= hi; x++ {
				rc.set(x, '─', color, bold)
			}
			if last {
				if b.X >= a.X {
					rc.set(b.X, '▶', color, bold)
				} else {
					rc.set(b.X, '◀', color, bold)
				}
			}
		case a.X == b.X:
			lo, hi := minInt(a.Y, b.Y), maxInt(a.Y, b.Y)
			if row > lo && row < hi {
				rc.set(a.X, '│', color, bold)
			}
			// Corner glyphs at the segment ends.
			if row == a.Y && lo != hi {
				rc.set(a.X, cornerGlyph(pts, i, true), color, bold)
			}
			if row == b.Y && lo != hi {
				rc.set(a.X, cornerGlyph(pts, i, false), color, bold)
			}
		}
	}
}

// cornerGlyph picks the box-drawing corner where a vertical segment meets
// its neighboring horizontal segments.
func cornerGlyph(pts []timeline.Point, i int, top bool) rune {
	a, b := pts[i], pts[i+1]
	goingDown := b.Y > a.Y
	if top {
		// Joint between the previous horizontal run and this vertical.
		rightward := i == 0 || pts[i].X >= pts[i-1].X
		if goingDown {
			if rightward {
				return '┐'
			}
			return '┌'
		}
		if rightward {
			return '┘'
		}
		return '└'
	}
	// Joint between this vertical and the next horizontal run.
	rightward := i+2 >= len(pts) || pts[i+2].X >= b.X
	if goingDown {
		if rightward {
			return '└'
		}
		return '┘'
	}
	if rightward {
		return '┌'
	}
	return '┐'
}

func (v *chartView) paintBars(rc *rowCanvas, row int) {
	dragging := v.drag.Active()
	for _, b := range v.bars {
		if b.RowIndex != row {
			continue
		}
		item := v.payload.ItemByID(b.ItemID)
		if item == nil {
			continue
		}
		color := v.barColor(item)
		bold := false
		ch := '█'
		switch v.highlight.ItemEmphasis(item.ID) {
		case timeline.EmphasisHighlighted:
			bold = true
		case timeline.EmphasisDimmed:
			ch = '▒'
			color = v.state.Theme.Resolve(theme.TokenTextDim)
		}
		if dragging != nil && dragging.ItemID == item.ID {
			// Preview bars render hollow until the commit lands.
			ch = '▓'
		}
		for x := b.X; x < b.End(); x++ {
			rc.set(x, ch, color, bold)
		}
		// Hovering an edge zone without dragging previews the resize
		// grip, the terminal stand-in for a resize cursor.
		if dragging == nil && b.ItemID == v.hoverZoneItemID {
			switch v.hoverZone {
			case timeline.ZoneResizeStart:
				rc.set(b.X, '▐', color, bold)
			case timeline.ZoneResizeEnd:
				rc.set(b.End()-1, '▌', color, bold)
			}
		}
	}
}

func (v *chartView) barColor(item *domain.WorkItem) lipgloss.TerminalColor {
	if v.payload.CriticalPath[item.ID] {
		return v.state.Theme.Resolve(theme.TokenBarCritical)
	}
	switch item.Status {
	case domain.WorkItemDone:
		return v.state.Theme.Resolve(theme.TokenBarDone)
	case domain.WorkItemInProgress:
		return v.state.Theme.Resolve(theme.TokenBarInProgress)
	case domain.WorkItemBlocked:
		return v.state.Theme.Resolve(theme.TokenBarBlocked)
	default:
		return v.state.Theme.Resolve(theme.TokenBarPlanned)
	}
}

// renderTooltip shows the hovered item's details in a footer panel once the
// show-delay timer has elapsed. Suppressed while a drag or its commit is in
// flight: the preview bar is the feedback that matters then.
func (v *chartView) renderTooltip() string {
	if v.tooltipItemID == "" || v.drag.Phase() != timeline.PhaseIdle {
		return ""
	}
	item := v.payload.ItemByID(v.tooltipItemID)
	if item == nil {
		return ""
	}
	parts := []string{
		formatter.Bold(item.Title),
		formatter.DateSpan(item),
		formatter.StatusIndicator(item.Status),
	}
	if item.AssigneeName != "" {
		parts = append(parts, formatter.Dim(item.AssigneeName))
	}
	if badge := formatter.CriticalBadge(item.Critical); badge != "" {
		parts = append(parts, badge)
	}
	return " " + strings.Join(parts, "  ")
}

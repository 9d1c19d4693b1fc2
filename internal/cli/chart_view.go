package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sidebarWidth = 24

	// Screen rows above the chart content: app title + separator.
	chartTopOffset = 2

	// Tooltip delay timers. The hide delay is shorter so sweeping the
	// pointer across adjacent bars retargets the tooltip instead of
	// flickering it.
	tooltipShowDelay = 400 * time.Millisecond
	tooltipHideDelay = 120 * time.Millisecond
)

// timelineLoadedMsg signals that chart data has been loaded.
type timelineLoadedMsg struct {
	payload *contract.TimelinePayload
	err     error
}

// rescheduleResultMsg carries the outcome of a drag-commit persistence call.
type rescheduleResultMsg struct {
	req      timeline.CommitRequest
	accepted bool
	err      error
}

// tooltipShowMsg fires when the show-delay timer elapses. Stale sequence
// numbers identify timers that were superseded by later pointer movement.
type tooltipShowMsg struct{ seq int }

// tooltipHideMsg fires when the hide-delay timer elapses.
type tooltipHideMsg struct{ seq int }

// chartView renders the Gantt chart and owns all pointer and keyboard
// interaction with it.
type chartView struct {
	state *SharedState

	payload *contract.TimelinePayload
	loading bool
	err     error

	// Derived geometry, rebuilt on load, zoom, and drag preview changes.
	rng        timeline.ChartRange
	bars       []timeline.BarRect
	connectors []timeline.Connector
	graph      *timeline.GraphIndex

	drag      *timeline.DragController
	highlight *timeline.HighlightController

	// Drag anchoring: canvas X of the initial press.
	pressX int

	// Viewport scroll origin in canvas coordinates. Header, sidebar,
	// and canvas all render from these two fields, so they cannot
	// drift apart; the syncing flag stops nested scroll adjustments
	// (wheel handler and ensure-visible both moving the origin) from
	// cascading.
	scrollX int
	scrollY int
	syncing bool

	// Keyboard focus, as an index into payload.Items.
	focusIdx int

	// Tooltip state. Sequence numbers invalidate in-flight timers.
	hoveredItemID string
	tooltipItemID string
	tooltipSeq    int
	hideSeq       int

	// Edge-zone hover, rendered as a resize grip on the hovered bar.
	hoverZoneItemID string
	hoverZone       timeline.DragZone

	today time.Time
}

func newChartView(state *SharedState) *chartView {
	return &chartView{
		state:     state,
		loading:   true,
		drag:      timeline.NewDragController(),
		highlight: timeline.NewHighlightController(timeline.BuildGraphIndex(nil, nil), nil),
		focusIdx:  -1,
		today:     domain.DayFloor(time.Now().UTC()),
	}
}

func (v *chartView) ID() ViewID    { return ViewChart }
func (v *chartView) Title() string { return "timeline" }

func (v *chartView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "focus item")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "pan")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "zoom")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *chartView) Init() tea.Cmd {
	return v.loadTimeline()
}

func (v *chartView) loadTimeline() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		payload, err := app.Timeline.Load(context.Background())
		return timelineLoadedMsg{payload: payload, err: err}
	}
}

// rebuild recomputes all derived geometry from the payload and the current
// zoom and drag preview.
func (v *chartView) rebuild() {
	if v.payload == nil {
		return
	}
	if override := v.payload.Range; override != nil {
		v.rng = timeline.ComputeChartRange(override.Start, override.End, v.state.Zoom)
	} else if earliest, latest, ok := v.payload.DateSpan(); ok {
		v.rng = timeline.ComputeChartRange(earliest, latest, v.state.Zoom)
	} else {
		v.rng = timeline.DefaultChartRange(v.today, v.state.Zoom)
	}
	v.bars = timeline.LayoutBars(v.payload.Items, v.rng, v.state.Zoom, v.drag.Active())
	v.routeConnectors()
}

func (v *chartView) routeConnectors() {
	titles := v.payload.Titles()
	v.connectors = v.connectors[:0]
	for _, dep := range v.payload.Dependencies {
		if conn, ok := timeline.RouteDependency(dep, v.bars, titles, v.payload.CriticalPath); ok {
			v.connectors = append(v.connectors, conn)
		}
	}
	for _, m := range v.payload.Milestones {
		marker := timeline.Point{X: timeline.DateToX(m.TargetDate, v.rng, v.state.Zoom), Y: milestoneLaneRow}
		v.connectors = append(v.connectors, timeline.RouteMilestoneLinks(m, marker, v.bars, titles)...)
	}
}

// reindex rebuilds the adjacency index and resets the highlight controller.
func (v *chartView) reindex() {
	v.graph = timeline.BuildGraphIndex(v.payload.Dependencies, v.payload.Milestones)
	v.highlight.Reindex(v.graph, v.payload.ItemIDs())
}

func (v *chartView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case timelineLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.payload = msg.payload
		v.reindex()
		v.rebuild()
		if v.focusIdx >= len(v.payload.Items) {
			v.focusIdx = len(v.payload.Items) - 1
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadTimeline()

	case rescheduleResultMsg:
		return v.handleRescheduleResult(msg)

	case tooltipShowMsg:
		if msg.seq == v.tooltipSeq && v.hoveredItemID != "" {
			v.tooltipItemID = v.hoveredItemID
		}
		return v, nil

	case tooltipHideMsg:
		if msg.seq == v.hideSeq {
			v.tooltipItemID = ""
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.clampScroll()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)
	}

	return v, nil
}

func (v *chartView) handleRescheduleResult(msg rescheduleResultMsg) (tea.Model, tea.Cmd) {
	// A resolve for a superseded drag (cancelled, or a newer drag has
	// started) must not disturb the current state.
	if !v.drag.Resolve(msg.req) {
		return v, nil
	}
	if msg.err == nil && msg.accepted {
		return v, tea.Batch(
			v.loadTimeline(),
			func() tea.Msg {
				return rescheduleCommittedMsg{
					itemID:   msg.req.ItemID,
					oldStart: msg.req.OldStart,
					oldEnd:   msg.req.OldEnd,
					newStart: msg.req.NewStart,
					newEnd:   msg.req.NewEnd,
				}
			},
		)
	}
	// Rejected or failed: dropping the preview reverts the bar to its
	// stored dates.
	v.rebuild()
	return v, func() tea.Msg { return rescheduleFailedMsg{itemID: msg.req.ItemID, err: msg.err} }
}

// ── keyboard ─────────────────────────────────────────────────────────────────

func (v *chartView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.payload == nil {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		v.moveFocus(-1)
		return v, nil

	case "down", "j":
		v.moveFocus(1)
		return v, nil

	case "left", "h":
		v.setScroll(v.scrollX-4, v.scrollY)
		return v, nil

	case "right", "l":
		v.setScroll(v.scrollX+4, v.scrollY)
		return v, nil

	case "+", "=":
		v.setZoom(v.state.Zoom.ZoomIn())
		return v, nil

	case "-", "_":
		v.setZoom(v.state.Zoom.ZoomOut())
		return v, nil

	case "t":
		v.scrollToToday()
		return v, nil

	case "r":
		v.loading = true
		return v, v.loadTimeline()

	case "enter":
		if item := v.focusedItem(); item != nil {
			return v, func() tea.Msg {
				return itemSelectedMsg{itemID: item.ID, title: item.Title}
			}
		}
		return v, nil

	case "e":
		if item := v.focusedItem(); item != nil {
			return v, pushView(newEditFormView(v.state, item.ID))
		}
		return v, nil

	case "esc":
		if v.drag.Phase() == timeline.PhaseDragging {
			v.drag.Cancel()
			v.rebuild()
			return v, nil
		}
		v.highlight.Clear()
		v.focusIdx = -1
		return v, nil
	}

	return v, nil
}

func (v *chartView) focusedItem() *domain.WorkItem {
	if v.payload == nil || v.focusIdx < 0 || v.focusIdx >= len(v.payload.Items) {
		return nil
	}
	return v.payload.Items[v.focusIdx]
}

// moveFocus shifts the keyboard focus and mirrors it into the highlight
// controller so focus and hover produce identical emphasis.
func (v *chartView) moveFocus(delta int) {
	if len(v.payload.Items) == 0 {
		return
	}
	v.focusIdx += delta
	if v.focusIdx < 0 {
		v.focusIdx = 0
	}
	if v.focusIdx >= len(v.payload.Items) {
		v.focusIdx = len(v.payload.Items) - 1
	}
	item := v.payload.Items[v.focusIdx]
	v.highlight.HoverItem(item.ID)
	v.ensureRowVisible(item.RowIndex)
}

// setZoom switches zoom levels while keeping the leftmost visible date
// anchored, so the view does not jump to an unrelated part of the range.
func (v *chartView) setZoom(z timeline.ZoomLevel) {
	if z == v.state.Zoom {
		return
	}
	anchor := domain.AddDays(v.rng.Start, timeline.XToDays(v.scrollX, v.state.Zoom))
	v.state.Zoom = z
	v.rebuild()
	v.setScroll(timeline.DateToX(anchor, v.rng, z), v.scrollY)
}

func (v *chartView) scrollToToday() {
	x, ok := timeline.TodayX(v.today, v.rng, v.state.Zoom)
	if !ok {
		return
	}
	v.setScroll(x-v.canvasWidth()/2, v.scrollY)
}

// ── scrolling ────────────────────────────────────────────────────────────────

func (v *chartView) setScroll(x, y int) {
	if v.syncing {
		return
	}
	v.syncing = true
	v.scrollX = x
	v.scrollY = y
	v.clampScroll()
	v.syncing = false
}

func (v *chartView) clampScroll() {
	maxX := timeline.ChartWidth(v.rng, v.state.Zoom) - v.canvasWidth()
	if v.scrollX > maxX {
		v.scrollX = maxX
	}
	if v.scrollX < 0 {
		v.scrollX = 0
	}
	maxY := v.rowCount() - v.visibleRows()
	if v.scrollY > maxY {
		v.scrollY = maxY
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}

func (v *chartView) ensureRowVisible(row int) {
	if row < v.scrollY {
		v.setScroll(v.scrollX, row)
	} else if row >= v.scrollY+v.visibleRows() {
		v.setScroll(v.scrollX, row-v.visibleRows()+1)
	}
}

func (v *chartView) rowCount() int {
	if v.payload == nil {
		return 0
	}
	return len(v.payload.Items)
}

// visibleRows is the item-row capacity of the canvas: content height minus
// the chart header line and the milestone lane.
func (v *chartView) visibleRows() int {
	h := v.state.ContentHeight() - 2
	if h < 1 {
		return 1
	}
	return h
}

func (v *chartView) canvasWidth() int {
	w := v.state.Width - sidebarWidth - 1
	if w < 1 {
		return 1
	}
	return w
}

// ── mouse ────────────────────────────────────────────────────────────────────

// canvasPos translates screen coordinates into canvas cell coordinates.
// The returned row is an item row index; hitLane is true on the milestone
// lane and hitCanvas is false outside the chart area entirely.
func (v *chartView) canvasPos(x, y int) (cx, row int, hitLane, hitCanvas bool) {
	vy := y - chartTopOffset
	cx = x - sidebarWidth - 1 + v.scrollX
	if x < sidebarWidth+1 || vy < 1 {
		return 0, 0, false, false
	}
	if vy == 1 {
		return cx, 0, true, true
	}
	return cx, vy - 2 + v.scrollY, false, true
}

func (v *chartView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if v.payload == nil {
		return v, nil
	}

	// Motion with no button held drives hover; motion with the left
	// button held continues a drag, handled below.
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		return v, v.updateHover(msg.X, msg.Y)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.setScroll(v.scrollX, v.scrollY-1)
		return v, nil

	case tea.MouseButtonWheelDown:
		v.setScroll(v.scrollX, v.scrollY+1)
		return v, nil

	case tea.MouseButtonWheelLeft:
		v.setScroll(v.scrollX-2, v.scrollY)
		return v, nil

	case tea.MouseButtonWheelRight:
		v.setScroll(v.scrollX+2, v.scrollY)
		return v, nil

	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			return v, v.startDrag(msg.X, msg.Y)
		case tea.MouseActionMotion:
			v.continueDrag(msg.X)
			return v, nil
		case tea.MouseActionRelease:
			return v, v.releaseDrag()
		}

	case tea.MouseButtonNone:
		// Terminals report release as ButtonNone in some modes.
		if msg.Action == tea.MouseActionRelease {
			return v, v.releaseDrag()
		}
	}

	return v, nil
}

// updateHover reclassifies the pointer position into bar, connector,
// milestone, or background hover and arms the tooltip timers.
func (v *chartView) updateHover(x, y int) tea.Cmd {
	v.hoverZoneItemID = ""
	v.hoverZone = ""

	cx, row, onLane, onCanvas := v.canvasPos(x, y)
	if !onCanvas {
		return v.leaveHover()
	}

	if onLane {
		if m := v.milestoneAt(cx); m != nil {
			v.highlight.HoverMilestone(m.ID)
			return v.leaveBarHover()
		}
		return v.leaveHover()
	}

	if bar, ok := v.barAt(cx, row); ok {
		item := v.payload.ItemByID(bar.ItemID)
		v.highlight.HoverItem(bar.ItemID)
		v.hoverZoneItemID = bar.ItemID
		v.hoverZone = timeline.ClassifyZone(bar, cx, v.state.TouchMode)
		return v.enterBarHover(item.ID)
	}

	if conn, ok := v.connectorAt(cx, row); ok {
		v.highlight.HoverConnector(conn)
		return v.leaveBarHover()
	}

	return v.leaveHover()
}

// enterBarHover arms the tooltip show timer for a newly hovered bar and
// cancels any pending hide so crossing bars does not flicker.
func (v *chartView) enterBarHover(itemID string) tea.Cmd {
	v.hideSeq++
	if itemID == v.hoveredItemID {
		return nil
	}
	v.hoveredItemID = itemID
	if v.tooltipItemID != "" {
		// A tooltip is already up: retarget it immediately.
		v.tooltipItemID = itemID
		return nil
	}
	v.tooltipSeq++
	seq := v.tooltipSeq
	return tea.Tick(tooltipShowDelay, func(time.Time) tea.Msg {
		return tooltipShowMsg{seq: seq}
	})
}

// leaveBarHover keeps the current highlight (set by the caller) but
// schedules the tooltip to hide.
func (v *chartView) leaveBarHover() tea.Cmd {
	if v.hoveredItemID == "" {
		return nil
	}
	v.hoveredItemID = ""
	v.tooltipSeq++
	if v.tooltipItemID == "" {
		return nil
	}
	v.hideSeq++
	seq := v.hideSeq
	return tea.Tick(tooltipHideDelay, func(time.Time) tea.Msg {
		return tooltipHideMsg{seq: seq}
	})
}

func (v *chartView) leaveHover() tea.Cmd {
	v.highlight.Clear()
	return v.leaveBarHover()
}

func (v *chartView) startDrag(x, y int) tea.Cmd {
	cx, row, onLane, onCanvas := v.canvasPos(x, y)
	if !onCanvas || onLane {
		return nil
	}
	bar, ok := v.barAt(cx, row)
	if !ok {
		return nil
	}
	item := v.payload.ItemByID(bar.ItemID)
	if item == nil {
		return nil
	}
	zone := timeline.ClassifyZone(bar, cx, v.state.TouchMode)
	if v.drag.Start(item, zone) {
		v.pressX = cx
	}
	// Selection follows the press regardless of drag eligibility.
	return func() tea.Msg { return itemSelectedMsg{itemID: item.ID, title: item.Title} }
}

func (v *chartView) continueDrag(x int) {
	if v.drag.Phase() != timeline.PhaseDragging {
		return
	}
	cx := x - sidebarWidth - 1 + v.scrollX
	v.drag.Move(cx-v.pressX, v.state.Zoom)
	v.rebuild()
}

func (v *chartView) releaseDrag() tea.Cmd {
	req, ok := v.drag.Release()
	if !ok {
		v.rebuild()
		return nil
	}
	app := v.state.App
	return func() tea.Msg {
		accepted, err := app.Timeline.PersistDates(context.Background(), req.ItemID, req.NewStart, req.NewEnd)
		return rescheduleResultMsg{req: req, accepted: accepted, err: err}
	}
}

// ── hit testing ──────────────────────────────────────────────────────────────

func (v *chartView) barAt(cx, row int) (timeline.BarRect, bool) {
	for _, b := range v.bars {
		if b.RowIndex == row && cx >= b.X && cx < b.End() {
			return b, true
		}
	}
	return timeline.BarRect{}, false
}

func (v *chartView) milestoneAt(cx int) *domain.Milestone {
	for _, m := range v.payload.Milestones {
		x := timeline.DateToX(m.TargetDate, v.rng, v.state.Zoom)
		if cx == x {
			return m
		}
	}
	return nil
}

// connectorAt finds a connector whose polyline passes through the cell.
func (v *chartView) connectorAt(cx, row int) (timeline.Connector, bool) {
	for _, c := range v.connectors {
		for i := 0; i+1 < len(c.Points); i++ {
			if segmentContains(c.Points[i], c.Points[i+1], cx, row) {
				return c, true
			}
		}
	}
	return timeline.Connector{}, false
}

func segmentContains(a, b timeline.Point, x, y int) bool {
	if a.Y == b.Y {
		lo, hi := minInt(a.X, b.X), maxInt(a.X, b.X)
		return y == a.Y && x >= lo && x <= hi
	}
	lo, hi := minInt(a.Y, b.Y), maxInt(a.Y, b.Y)
	return x == a.X && y >= lo && y <= hi
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

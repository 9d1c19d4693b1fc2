package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks views to reload their data after a mutation.
type refreshViewMsg struct{}

// popAndRefreshMsg atomically pops the top view and reloads the views
// beneath it, used by forms after a successful save.
type popAndRefreshMsg struct{}

// itemSelectedMsg announces the chart's current selection so the host
// shell (and any stacked views) can react to it.
type itemSelectedMsg struct {
	itemID string
	title  string
}

// rescheduleCommittedMsg reports a persisted drag-reschedule, carrying the
// old and new date pairs so the host can show or act on the actual change.
type rescheduleCommittedMsg struct {
	itemID   string
	oldStart time.Time
	oldEnd   time.Time
	newStart time.Time
	newEnd   time.Time
}

// rescheduleFailedMsg reports a rejected or errored drag-reschedule.
// The chart has already reverted to the stored dates when this fires.
type rescheduleFailedMsg struct {
	itemID string
	err    error
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// refreshViews returns a tea.Cmd that broadcasts a data reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

package cli

import (
	"github.com/alexanderramin/chronos/internal/theme"
	"github.com/alexanderramin/chronos/internal/timeline"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App   *App
	Theme theme.Source

	// Chart settings carried across view switches.
	Zoom      timeline.ZoomLevel
	TouchMode bool

	// Selected work item context, set by the chart on enter/click.
	SelectedItemID    string
	SelectedItemTitle string

	// Terminal dimensions
	Width  int
	Height int
}

// ClearSelection resets the selected item state.
func (s *SharedState) ClearSelection() {
	s.SelectedItemID = ""
	s.SelectedItemTitle = ""
}

// SetSelection records the selected work item.
func (s *SharedState) SetSelection(id, title string) {
	s.SelectedItemID = id
	s.SelectedItemTitle = title
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

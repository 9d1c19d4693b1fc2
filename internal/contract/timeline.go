// Package contract defines the read-only payload exchanged between the
// business services and the chart surface. The chart consumes this data and
// proposes new dates through the persistence callback; it never mutates the
// payload itself.
package contract

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// TimelinePayload is everything the chart needs for one render generation:
// ordered work items, the edge lists, and the supplied critical-path set.
type TimelinePayload struct {
	// Items in display order; RowIndex matches the slice position and
	// rows never reorder within a render pass.
	Items []*domain.WorkItem

	Dependencies []domain.Dependency
	Milestones   []*domain.Milestone

	// CriticalPath is the supplied set of work item ids receiving
	// emphasis styling. The engine never computes this itself.
	CriticalPath map[string]bool

	// Range optionally overrides the item-derived chart window.
	Range *DateRange
}

// DateRange is an optional explicit chart window supplied with the payload.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateSpan returns the earliest and latest dates across all dated items and
// milestone targets, or false when nothing carries a date.
func (p *TimelinePayload) DateSpan() (earliest, latest time.Time, ok bool) {
	consider := func(t time.Time) {
		if !ok {
			earliest, latest, ok = t, t, true
			return
		}
		if t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	for _, item := range p.Items {
		if item.StartDate != nil {
			consider(*item.StartDate)
		}
		if item.EndDate != nil {
			consider(*item.EndDate)
		}
	}
	for _, m := range p.Milestones {
		consider(m.TargetDate)
	}
	return earliest, latest, ok
}

// Titles returns an id → title map over items and milestones, used for
// connector labelling.
func (p *TimelinePayload) Titles() map[string]string {
	titles := make(map[string]string, len(p.Items)+len(p.Milestones))
	for _, item := range p.Items {
		titles[item.ID] = item.Title
	}
	for _, m := range p.Milestones {
		titles[m.ID] = m.Title
	}
	return titles
}

// ItemIDs returns the ordered work item id list.
func (p *TimelinePayload) ItemIDs() []string {
	ids := make([]string, len(p.Items))
	for i, item := range p.Items {
		ids[i] = item.ID
	}
	return ids
}

// ItemByID returns the work item with the given id, or nil.
func (p *TimelinePayload) ItemByID(id string) *domain.WorkItem {
	for _, item := range p.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

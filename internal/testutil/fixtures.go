package testutil

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

// WorkItemOption mutates a fixture work item.
type WorkItemOption func(*domain.WorkItem)

// WithDates schedules the item over [start, end], given as YYYY-MM-DD.
// Panics on malformed input; fixtures fail loudly.
func WithDates(start, end string) WorkItemOption {
	return func(w *domain.WorkItem) {
		s, err := domain.ParseDay(start)
		if err != nil {
			panic(err)
		}
		e, err := domain.ParseDay(end)
		if err != nil {
			panic(err)
		}
		w.StartDate = &s
		w.EndDate = &e
	}
}

// WithStatus sets the item status.
func WithStatus(s domain.WorkItemStatus) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

// WithRow sets the display row index.
func WithRow(i int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.RowIndex = i
	}
}

// WithCritical marks the item as on the critical path.
func WithCritical() WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Critical = true
	}
}

// WithID overrides the generated id, for tests that reference items by
// stable ids.
func WithID(id string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.ID = id
	}
}

// NewWorkItem builds an unscheduled planned work item with a fresh uuid.
func NewWorkItem(title string, opts ...WorkItemOption) *domain.WorkItem {
	w := &domain.WorkItem{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    domain.WorkItemPlanned,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewMilestone builds a milestone targeting the given YYYY-MM-DD date and
// linked to the given work item ids.
func NewMilestone(title, target string, linked ...string) *domain.Milestone {
	t, err := domain.ParseDay(target)
	if err != nil {
		panic(err)
	}
	return &domain.Milestone{
		ID:                uuid.NewString(),
		Title:             title,
		TargetDate:        t,
		LinkedWorkItemIDs: linked,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

// NewDependency builds a finish-to-start edge.
func NewDependency(predecessorID, successorID string) domain.Dependency {
	return domain.Dependency{
		PredecessorID: predecessorID,
		SuccessorID:   successorID,
		Type:          domain.FinishToStart,
	}
}

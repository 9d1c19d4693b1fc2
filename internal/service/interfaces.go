package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
)

// TimelineService supplies the chart's read-only payload and accepts the
// single state-changing call the chart makes: a proposed reschedule.
type TimelineService interface {
	Load(ctx context.Context) (*contract.TimelinePayload, error)
	// PersistDates applies a drag-proposed reschedule. It returns false
	// (with a nil error) when the proposal is rejected by validation, so
	// the chart can roll back without surfacing an exception.
	PersistDates(ctx context.Context, itemID string, start, end time.Time) (bool, error)
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	Add(ctx context.Context, predecessorID, successorID string, depType domain.DependencyType, leadLagDays int) error
	Remove(ctx context.Context, predecessorID, successorID string) error
	List(ctx context.Context) ([]domain.Dependency, error)
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	List(ctx context.Context) ([]*domain.Milestone, error)
	Link(ctx context.Context, milestoneID, workItemID string) error
	Unlink(ctx context.Context, milestoneID, workItemID string) error
	Delete(ctx context.Context, id string) error
}

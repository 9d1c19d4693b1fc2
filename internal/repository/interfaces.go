package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	// List returns all work items ordered by row index; RowIndex is
	// normalized to the slice position.
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	// UpdateDates persists a reschedule without touching any other field.
	UpdateDates(ctx context.Context, id string, start, end time.Time) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	List(ctx context.Context) ([]domain.Dependency, error)
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	// List returns milestones ordered by target date, each with its
	// linked work item ids populated.
	List(ctx context.Context) ([]*domain.Milestone, error)
	Link(ctx context.Context, milestoneID, workItemID string) error
	Unlink(ctx context.Context, milestoneID, workItemID string) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/google/uuid"
)

type workItemService struct {
	workItems repository.WorkItemRepo
}

func NewWorkItemService(workItems repository.WorkItemRepo) WorkItemService {
	return &workItemService{workItems: workItems}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Status == "" {
		w.Status = domain.WorkItemPlanned
	}
	if !domain.ValidWorkItemStatuses[string(w.Status)] {
		return fmt.Errorf("invalid work item status %q", w.Status)
	}
	if err := validateSpan(w.StartDate, w.EndDate); err != nil {
		return err
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.workItems.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

func (s *workItemService) List(ctx context.Context) ([]*domain.WorkItem, error) {
	return s.workItems.List(ctx)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	if !domain.ValidWorkItemStatuses[string(w.Status)] {
		return fmt.Errorf("invalid work item status %q", w.Status)
	}
	if err := validateSpan(w.StartDate, w.EndDate); err != nil {
		return err
	}
	w.UpdatedAt = time.Now().UTC()
	return s.workItems.Update(ctx, w)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	return s.workItems.Delete(ctx, id)
}

// validateSpan requires either both dates or neither, with start before end.
func validateSpan(start, end *time.Time) error {
	if (start == nil) != (end == nil) {
		return fmt.Errorf("start and end dates must be set together")
	}
	if start != nil && !domain.DayFloor(*start).Before(domain.DayFloor(*end)) {
		return fmt.Errorf("start date must precede end date")
	}
	return nil
}

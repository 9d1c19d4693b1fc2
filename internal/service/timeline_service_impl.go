package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
)

type timelineService struct {
	workItems    repository.WorkItemRepo
	dependencies repository.DependencyRepo
	milestones   repository.MilestoneRepo
}

// NewTimelineService assembles the chart payload from the three repos.
func NewTimelineService(
	workItems repository.WorkItemRepo,
	dependencies repository.DependencyRepo,
	milestones repository.MilestoneRepo,
) TimelineService {
	return &timelineService{
		workItems:    workItems,
		dependencies: dependencies,
		milestones:   milestones,
	}
}

func (s *timelineService) Load(ctx context.Context) (*contract.TimelinePayload, error) {
	items, err := s.workItems.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading work items: %w", err)
	}
	deps, err := s.dependencies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	milestones, err := s.milestones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}

	critical := make(map[string]bool)
	for _, item := range items {
		if item.Critical {
			critical[item.ID] = true
		}
	}

	return &contract.TimelinePayload{
		Items:        items,
		Dependencies: deps,
		Milestones:   milestones,
		CriticalPath: critical,
	}, nil
}

// PersistDates validates and stores a proposed reschedule. A proposal whose
// start does not precede its end, or that targets an unknown or unscheduled
// item, is rejected with (false, nil); rejection is an expected outcome,
// not an error.
func (s *timelineService) PersistDates(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	start = domain.DayFloor(start)
	end = domain.DayFloor(end)
	if !start.Before(end) {
		return false, nil
	}

	item, err := s.workItems.GetByID(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("resolving reschedule target: %w", err)
	}
	if !item.Scheduled() {
		return false, nil
	}

	if err := s.workItems.UpdateDates(ctx, itemID, start, end); err != nil {
		return false, fmt.Errorf("persisting dates: %w", err)
	}
	return true, nil
}

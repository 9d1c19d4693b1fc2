package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/google/uuid"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	workItems  repository.WorkItemRepo
}

func NewMilestoneService(milestones repository.MilestoneRepo, workItems repository.WorkItemRepo) MilestoneService {
	return &milestoneService{milestones: milestones, workItems: workItems}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Title == "" {
		return fmt.Errorf("milestone title is required")
	}
	if m.TargetDate.IsZero() {
		return fmt.Errorf("milestone target date is required")
	}
	for _, itemID := range m.LinkedWorkItemIDs {
		if _, err := s.workItems.GetByID(ctx, itemID); err != nil {
			return fmt.Errorf("linked work item %s: %w", itemID, err)
		}
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) List(ctx context.Context) ([]*domain.Milestone, error) {
	return s.milestones.List(ctx)
}

func (s *milestoneService) Link(ctx context.Context, milestoneID, workItemID string) error {
	if _, err := s.milestones.GetByID(ctx, milestoneID); err != nil {
		return err
	}
	if _, err := s.workItems.GetByID(ctx, workItemID); err != nil {
		return err
	}
	return s.milestones.Link(ctx, milestoneID, workItemID)
}

func (s *milestoneService) Unlink(ctx context.Context, milestoneID, workItemID string) error {
	return s.milestones.Unlink(ctx, milestoneID, workItemID)
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}

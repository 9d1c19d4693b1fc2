package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
)

type dependencyService struct {
	dependencies repository.DependencyRepo
	workItems    repository.WorkItemRepo
}

func NewDependencyService(dependencies repository.DependencyRepo, workItems repository.WorkItemRepo) DependencyService {
	return &dependencyService{dependencies: dependencies, workItems: workItems}
}

func (s *dependencyService) Add(ctx context.Context, predecessorID, successorID string, depType domain.DependencyType, leadLagDays int) error {
	if predecessorID == successorID {
		return fmt.Errorf("an item cannot depend on itself")
	}
	if depType == "" {
		depType = domain.FinishToStart
	}
	if !domain.ValidDependencyTypes[string(depType)] {
		return fmt.Errorf("invalid dependency type %q", depType)
	}
	// Both endpoints must exist. Cycles are tolerated; the chart only
	// ever walks one hop.
	if _, err := s.workItems.GetByID(ctx, predecessorID); err != nil {
		return fmt.Errorf("predecessor: %w", err)
	}
	if _, err := s.workItems.GetByID(ctx, successorID); err != nil {
		return fmt.Errorf("successor: %w", err)
	}
	return s.dependencies.Create(ctx, &domain.Dependency{
		PredecessorID: predecessorID,
		SuccessorID:   successorID,
		Type:          depType,
		LeadLagDays:   leadLagDays,
	})
}

func (s *dependencyService) Remove(ctx context.Context, predecessorID, successorID string) error {
	return s.dependencies.Delete(ctx, predecessorID, successorID)
}

func (s *dependencyService) List(ctx context.Context) ([]domain.Dependency, error) {
	return s.dependencies.List(ctx)
}

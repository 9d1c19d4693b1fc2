package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/alexanderramin/chronos/internal/repository"
)

// ImportService loads a YAML plan document into storage.
type ImportService interface {
	// ImportPlan parses, validates, and persists a plan atomically:
	// either the whole file lands or nothing does. Returns counts of
	// imported items, dependencies, and milestones.
	ImportPlan(ctx context.Context, data []byte) (ImportResult, error)
}

// ImportResult summarizes a successful import.
type ImportResult struct {
	Items        int
	Dependencies int
	Milestones   int
}

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportPlan(ctx context.Context, data []byte) (ImportResult, error) {
	schema, err := importer.Parse(data)
	if err != nil {
		return ImportResult{}, err
	}
	plan, err := importer.Convert(schema)
	if err != nil {
		return ImportResult{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		workItems := repository.NewSQLiteWorkItemRepo(tx)
		deps := repository.NewSQLiteDependencyRepo(tx)
		milestones := repository.NewSQLiteMilestoneRepo(tx)

		for _, item := range plan.Items {
			if err := workItems.Create(ctx, item); err != nil {
				return err
			}
		}
		for _, dep := range plan.Dependencies {
			if err := deps.Create(ctx, &dep); err != nil {
				return err
			}
		}
		for _, m := range plan.Milestones {
			if err := milestones.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("importing plan: %w", err)
	}

	return ImportResult{
		Items:        len(plan.Items),
		Dependencies: len(plan.Dependencies),
		Milestones:   len(plan.Milestones),
	}, nil
}

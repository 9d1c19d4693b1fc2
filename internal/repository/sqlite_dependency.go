package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo against SQLite.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(dbtx db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: dbtx}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (predecessor_id, successor_id, dep_type, lead_lag_days)
		VALUES (?, ?, ?, ?)`
	depType := d.Type
	if depType == "" {
		depType = domain.FinishToStart
	}
	_, err := r.db.ExecContext(ctx, query, d.PredecessorID, d.SuccessorID, string(depType), d.LeadLagDays)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	query := `DELETE FROM dependencies WHERE predecessor_id = ? AND successor_id = ?`
	res, err := r.db.ExecContext(ctx, query, predecessorID, successorID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return requireRow(res, "dependency")
}

func (r *SQLiteDependencyRepo) List(ctx context.Context) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, successor_id, dep_type, lead_lag_days FROM dependencies`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.Dependency
	for rows.Next() {
		var (
			d       domain.Dependency
			depType string
		)
		if err := rows.Scan(&d.PredecessorID, &d.SuccessorID, &depType, &d.LeadLagDays); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.Type = domain.DependencyType(depType)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

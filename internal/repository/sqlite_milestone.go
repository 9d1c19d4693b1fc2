package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo against SQLite.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(dbtx db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: dbtx}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, title, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		m.ID, m.Title, domain.FormatDay(m.TargetDate), nowUTC(), nowUTC()); err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	for _, itemID := range m.LinkedWorkItemIDs {
		if err := r.Link(ctx, m.ID, itemID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `SELECT id, title, target_date, created_at, updated_at FROM milestones WHERE id = ?`
	m, err := r.scanMilestone(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("milestone: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("getting milestone: %w", err)
	}
	if err := r.loadLinks(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]*domain.Milestone, error) {
	query := `SELECT id, title, target_date, created_at, updated_at
		FROM milestones ORDER BY target_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := r.scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	for _, m := range milestones {
		if err := r.loadLinks(ctx, m); err != nil {
			return nil, err
		}
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Link(ctx context.Context, milestoneID, workItemID string) error {
	query := `INSERT OR IGNORE INTO milestone_links (milestone_id, work_item_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, milestoneID, workItemID); err != nil {
		return fmt.Errorf("linking milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) Unlink(ctx context.Context, milestoneID, workItemID string) error {
	query := `DELETE FROM milestone_links WHERE milestone_id = ? AND work_item_id = ?`
	res, err := r.db.ExecContext(ctx, query, milestoneID, workItemID)
	if err != nil {
		return fmt.Errorf("unlinking milestone: %w", err)
	}
	return requireRow(res, "milestone link")
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return requireRow(res, "milestone")
}

func (r *SQLiteMilestoneRepo) loadLinks(ctx context.Context, m *domain.Milestone) error {
	query := `SELECT work_item_id FROM milestone_links WHERE milestone_id = ? ORDER BY work_item_id`
	rows, err := r.db.QueryContext(ctx, query, m.ID)
	if err != nil {
		return fmt.Errorf("listing milestone links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return fmt.Errorf("scanning milestone link: %w", err)
		}
		m.LinkedWorkItemIDs = append(m.LinkedWorkItemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating milestone links: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) scanMilestone(s scanner) (*domain.Milestone, error) {
	var (
		m          domain.Milestone
		targetDate string
		createdAt  string
		updatedAt  string
	)
	if err := s.Scan(&m.ID, &m.Title, &targetDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t, err := domain.ParseDay(targetDate)
	if err != nil {
		return nil, fmt.Errorf("parsing target date: %w", err)
	}
	m.TargetDate = t
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		m.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		m.UpdatedAt = t
	}
	return &m, nil
}

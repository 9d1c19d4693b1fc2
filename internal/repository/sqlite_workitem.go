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

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, status, start_date, end_date, row_index,
		assignee, critical, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo against SQLite. It accepts a
// db.DBTX so the same implementation serves both direct and transactional
// access (the YAML importer runs it inside a unit of work).
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(dbtx db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: dbtx}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (id, title, status, start_date, end_date,
		row_index, assignee, critical, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		string(w.Status),
		nullableTimeToString(w.StartDate, domain.DayLayout),
		nullableTimeToString(w.EndDate, domain.DayLayout),
		w.RowIndex,
		w.AssigneeName,
		boolToInt(w.Critical),
		nowUTC(),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	w, err := scanWorkItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("getting work item: %w", err)
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) List(ctx context.Context) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items ORDER BY row_index, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var items []*domain.WorkItem
	for rows.Next() {
		w, err := scanWorkItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work item: %w", err)
		}
		// Normalize to the display position regardless of stored gaps.
		w.RowIndex = len(items)
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET title = ?, status = ?, start_date = ?, end_date = ?,
		row_index = ?, assignee = ?, critical = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		string(w.Status),
		nullableTimeToString(w.StartDate, domain.DayLayout),
		nullableTimeToString(w.EndDate, domain.DayLayout),
		w.RowIndex,
		w.AssigneeName,
		boolToInt(w.Critical),
		nowUTC(),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return requireRow(res, "work item")
}

func (r *SQLiteWorkItemRepo) UpdateDates(ctx context.Context, id string, start, end time.Time) error {
	query := `UPDATE work_items SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		domain.FormatDay(start), domain.FormatDay(end), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating work item dates: %w", err)
	}
	return requireRow(res, "work item")
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return requireRow(res, "work item")
}

// requireRow converts a zero-row result into ErrNotFound.
func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkItem(s scanner) (*domain.WorkItem, error) {
	var (
		w          domain.WorkItem
		status     string
		start, end sql.NullString
		critical   int
		createdAt  string
		updatedAt  string
	)
	if err := s.Scan(&w.ID, &w.Title, &status, &start, &end, &w.RowIndex,
		&w.AssigneeName, &critical, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	w.Status = domain.WorkItemStatus(status)
	w.StartDate = parseNullableTime(start, domain.DayLayout)
	w.EndDate = parseNullableTime(end, domain.DayLayout)
	w.Critical = intToBool(critical)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		w.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		w.UpdatedAt = t
	}
	return &w, nil
}

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs that hit an existing column are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Dates are stored as YYYY-MM-DD text; timestamps as RFC 3339 text.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'planned'
			CHECK (status IN ('planned', 'in_progress', 'done', 'blocked')),
		start_date TEXT,
		end_date TEXT,
		row_index INTEGER NOT NULL DEFAULT 0,
		assignee TEXT NOT NULL DEFAULT '',
		critical INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		predecessor_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		successor_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		dep_type TEXT NOT NULL DEFAULT 'finish_to_start'
			CHECK (dep_type IN ('finish_to_start', 'start_to_start', 'finish_to_finish')),
		lead_lag_days INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (predecessor_id, successor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		target_date TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestone_links (
		milestone_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		work_item_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		PRIMARY KEY (milestone_id, work_item_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_row ON work_items(row_index)`,
	`CREATE INDEX IF NOT EXISTS idx_dependencies_successor ON dependencies(successor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_milestone_links_item ON milestone_links(work_item_id)`,
}

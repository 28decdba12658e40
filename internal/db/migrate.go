package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are written to run on both
// SQLite and PostgreSQL and are safe to re-run.
func Migrate(db *sql.DB, dialect Dialect) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS on older SQLite.
			msg := err.Error()
			if strings.Contains(msg, "duplicate column name") || strings.Contains(msg, "already exists") {
				continue
			}
			return fmt.Errorf("migration %d (%s): %w", i, dialect, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL DEFAULT '',
		estimated_minutes INTEGER NOT NULL DEFAULT 0 CHECK(estimated_minutes >= 0),
		deadline          TEXT NOT NULL,
		importance        INTEGER NOT NULL DEFAULT 3 CHECK(importance BETWEEN 1 AND 5),
		splittable        INTEGER NOT NULL DEFAULT 1,
		preferred_time    TEXT NOT NULL DEFAULT 'any'
		                  CHECK(preferred_time IN ('morning','afternoon','evening','any')),
		focus_need        TEXT NOT NULL DEFAULT 'medium'
		                  CHECK(focus_need IN ('high','medium','low')),
		status            TEXT NOT NULL DEFAULT 'pending'
		                  CHECK(status IN ('pending','done')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS schedule_blocks (
		id         TEXT PRIMARY KEY,
		task_id    TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		title      TEXT NOT NULL,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_blocks_start ON schedule_blocks(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_blocks_task ON schedule_blocks(task_id)`,

	`CREATE TABLE IF NOT EXISTS routines (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL CHECK(kind IN ('fixed','blocked')),
		title      TEXT NOT NULL,
		days       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS blocked_ranges (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		start_minute INTEGER NOT NULL CHECK(start_minute >= 0),
		end_minute   INTEGER NOT NULL CHECK(end_minute <= 1440),
		reason       TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_blocked_ranges_date ON blocked_ranges(date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id              TEXT PRIMARY KEY,
		week_start_day  INTEGER NOT NULL DEFAULT 0 CHECK(week_start_day IN (0, 1)),
		grid_start_hour INTEGER NOT NULL DEFAULT 6,
		grid_end_hour   INTEGER NOT NULL DEFAULT 24,
		updated_at      TEXT NOT NULL
	)`,
}

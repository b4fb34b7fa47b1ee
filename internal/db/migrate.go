package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		key        TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL DEFAULT '',
		title      TEXT NOT NULL CHECK(title <> ''),
		tags       TEXT NOT NULL DEFAULT '[]',
		seq        INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_seq ON tasks(seq)`,

	`CREATE TABLE IF NOT EXISTS records (
		id         TEXT PRIMARY KEY,
		task_key   TEXT NOT NULL REFERENCES tasks(key) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		seq        INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_task ON records(task_key)`,
	`CREATE INDEX IF NOT EXISTS idx_records_seq ON records(seq)`,

	`CREATE TABLE IF NOT EXISTS raw_entries (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		parse_time INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,
}

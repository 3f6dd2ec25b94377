package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL CHECK(length(trim(name)) > 0),
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused')),
		color       TEXT NOT NULL DEFAULT '#3b82f6',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL CHECK(length(title) BETWEEN 1 AND 255),
		deadline    TEXT NOT NULL,
		period      TEXT NOT NULL
		            CHECK(period IN ('morning','afternoon','evening')),
		priority    TEXT NOT NULL
		            CHECK(priority IN ('urgent','problematic','important','standard')),
		status      TEXT NOT NULL DEFAULT 'backlog'
		            CHECK(status IN ('backlog','todo','blocked','doing','review','done')),
		is_archived INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline)`,

	// Task descriptions arrived after the first release.
	`ALTER TABLE tasks ADD COLUMN description TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id          TEXT PRIMARY KEY,
		first_name  TEXT NOT NULL DEFAULT '',
		last_name   TEXT NOT NULL DEFAULT '',
		avatar_url  TEXT NOT NULL DEFAULT '',
		updated_at  TEXT NOT NULL
	)`,
}

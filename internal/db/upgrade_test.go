package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradeAddsDescription opens a database created before task
// descriptions existed and checks that rows survive and gain the column.
func TestMigrate_UpgradeAddsDescription(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY, name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active', color TEXT NOT NULL DEFAULT '#3b82f6',
			created_at TEXT NOT NULL, updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY, project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			title TEXT NOT NULL, deadline TEXT NOT NULL, period TEXT NOT NULL,
			priority TEXT NOT NULL, status TEXT NOT NULL DEFAULT 'backlog',
			is_archived INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL, updated_at TEXT NOT NULL
		)`,
		`INSERT INTO projects (id, name, created_at, updated_at) VALUES ('p1', 'Legacy', 'x', 'x')`,
		`INSERT INTO tasks (id, project_id, title, deadline, period, priority, created_at, updated_at)
			VALUES ('t1', 'p1', 'Old task', '2023-12-01', 'evening', 'important', 'x', 'x')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var title, description string
	err = db.QueryRow(`SELECT title, description FROM tasks WHERE id = 't1'`).Scan(&title, &description)
	require.NoError(t, err)
	assert.Equal(t, "Old task", title)
	assert.Equal(t, "", description)

	require.NoError(t, Migrate(db), "second run tolerates the existing column")
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Deadlines are
// stored as YYYY-MM-DD and read back anchored at midnight in loc.
type SQLiteTaskRepo struct {
	db  db.DBTX
	loc *time.Location
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo. A nil loc means time.Local.
func NewSQLiteTaskRepo(db db.DBTX, loc *time.Location) *SQLiteTaskRepo {
	if loc == nil {
		loc = time.Local
	}
	return &SQLiteTaskRepo{db: db, loc: loc}
}

const taskColumns = `id, project_id, title, description, deadline, period, priority, status, is_archived, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		t.Description,
		domain.FormatDate(t.Deadline),
		string(t.Period),
		string(t.Priority),
		string(t.Status),
		boolToInt(t.IsArchived),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeArchived {
		query += ` WHERE is_archived = 0`
	}
	query += ` ORDER BY created_at, id`
	return r.query(ctx, query)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string, includeArchived bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?`
	if !includeArchived {
		query += ` AND is_archived = 0`
	}
	query += ` ORDER BY created_at, id`
	return r.query(ctx, query, projectID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, title = ?, description = ?, deadline = ?, period = ?,
		priority = ?, status = ?, is_archived = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		t.Title,
		t.Description,
		domain.FormatDate(t.Deadline),
		string(t.Period),
		string(t.Priority),
		string(t.Status),
		boolToInt(t.IsArchived),
		formatTimestamp(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	query := `UPDATE tasks SET is_archived = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(archived), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("archiving task: %w", err)
	}
	return requireAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task", id)
}

// DeleteByProject removes every task of a project and reports how many went.
func (r *SQLiteTaskRepo) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("deleting project tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking task rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteTaskRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var deadlineStr, periodStr, priorityStr, statusStr, createdAtStr, updatedAtStr string
	var archived int

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description,
		&deadlineStr, &periodStr, &priorityStr, &statusStr,
		&archived, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Deadline, err = domain.ParseDate(deadlineStr, r.loc)
	if err != nil {
		return nil, fmt.Errorf("parsing deadline of task %s: %w", t.ID, err)
	}
	t.Period = domain.Period(periodStr)
	t.Priority = domain.Priority(priorityStr)
	t.Status = domain.Status(statusStr)
	t.IsArchived = intToBool(archived)

	if err := parseTimestamps(
		timestampField{"created_at", createdAtStr, &t.CreatedAt},
		timestampField{"updated_at", updatedAtStr, &t.UpdatedAt},
	); err != nil {
		return nil, err
	}
	return &t, nil
}

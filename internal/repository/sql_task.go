package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
)

const taskColumns = `id, title, description, category, estimated_minutes, deadline, importance,
	splittable, preferred_time, focus_need, status, created_at, updated_at`

// SQLTaskRepo implements TaskRepo over any DBTX.
type SQLTaskRepo struct {
	db db.DBTX
}

// NewSQLTaskRepo creates a new SQLTaskRepo.
func NewSQLTaskRepo(conn db.DBTX) *SQLTaskRepo {
	return &SQLTaskRepo{db: conn}
}

func (r *SQLTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.Category,
		t.EstimatedMinutes,
		timeToString(t.Deadline),
		t.Importance,
		boolToInt(t.Splittable),
		string(t.PreferredTime),
		string(t.FocusNeed),
		string(t.Status),
		timeToString(t.CreatedAt),
		timeToString(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

// List returns tasks ordered by deadline, optionally filtered by status.
func (r *SQLTaskRepo) List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY deadline, created_at, id`

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
	return tasks, rows.Err()
}

func (r *SQLTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, category = ?, estimated_minutes = ?,
		deadline = ?, importance = ?, splittable = ?, preferred_time = ?, focus_need = ?,
		status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.Category,
		t.EstimatedMinutes,
		timeToString(t.Deadline),
		t.Importance,
		boolToInt(t.Splittable),
		string(t.PreferredTime),
		string(t.FocusNeed),
		string(t.Status),
		timeToString(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLTaskRepo) scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var deadline, createdAt, updatedAt, preferred, focus, status string
	var splittable int

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.EstimatedMinutes, &deadline, &t.Importance,
		&splittable, &preferred, &focus, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Splittable = intToBool(splittable)
	t.PreferredTime = domain.PreferredTime(preferred)
	t.FocusNeed = domain.FocusNeed(focus)
	t.Status = domain.TaskStatus(status)

	if t.Deadline, err = parseTime(deadline); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

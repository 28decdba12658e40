package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
)

const blockColumns = `id, task_id, title, start_at, end_at, note, created_at`

// SQLBlockRepo implements BlockRepo over any DBTX.
type SQLBlockRepo struct {
	db db.DBTX
}

// NewSQLBlockRepo creates a new SQLBlockRepo.
func NewSQLBlockRepo(conn db.DBTX) *SQLBlockRepo {
	return &SQLBlockRepo{db: conn}
}

func (r *SQLBlockRepo) Create(ctx context.Context, b *domain.ScheduleBlock) error {
	query := `INSERT INTO schedule_blocks (` + blockColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		nullableString(b.TaskID),
		b.Title,
		timeToString(b.Start),
		timeToString(b.End),
		b.Note,
		timeToString(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule block: %w", err)
	}
	return nil
}

func (r *SQLBlockRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM schedule_blocks WHERE id = ?`
	return scanBlock(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLBlockRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.ScheduleBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM schedule_blocks
		WHERE start_at < ? AND end_at > ?
		ORDER BY start_at, id`
	rows, err := r.db.QueryContext(ctx, query, timeToString(end), timeToString(start))
	if err != nil {
		return nil, fmt.Errorf("listing schedule blocks: %w", err)
	}
	defer rows.Close()
	return scanBlocks(rows)
}

func (r *SQLBlockRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.ScheduleBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM schedule_blocks WHERE task_id = ? ORDER BY start_at, id`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule blocks by task: %w", err)
	}
	defer rows.Close()
	return scanBlocks(rows)
}

func (r *SQLBlockRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_blocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule block: %w", err)
	}
	return requireAffected(res, "schedule block")
}

func scanBlock(row rowScanner) (*domain.ScheduleBlock, error) {
	var b domain.ScheduleBlock
	var taskID sql.NullString
	var start, end, createdAt string

	if err := row.Scan(&b.ID, &taskID, &b.Title, &start, &end, &b.Note, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule block: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule block: %w", err)
	}
	b.TaskID = stringPtr(taskID)

	var err error
	if b.Start, err = parseTime(start); err != nil {
		return nil, err
	}
	if b.End, err = parseTime(end); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.ScheduleBlock, error) {
	var blocks []*domain.ScheduleBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

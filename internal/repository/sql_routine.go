package repository

import (
	"context"
	"fmt"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
)

// SQLRoutineRepo implements RoutineRepo over any DBTX.
type SQLRoutineRepo struct {
	db db.DBTX
}

// NewSQLRoutineRepo creates a new SQLRoutineRepo.
func NewSQLRoutineRepo(conn db.DBTX) *SQLRoutineRepo {
	return &SQLRoutineRepo{db: conn}
}

func (r *SQLRoutineRepo) Create(ctx context.Context, rt *domain.Routine) error {
	query := `INSERT INTO routines (id, kind, title, days, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID,
		string(rt.Kind),
		rt.Title,
		joinDays(rt.Days),
		rt.Start.String(),
		rt.End.String(),
		timeToString(rt.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting routine: %w", err)
	}
	return nil
}

func (r *SQLRoutineRepo) List(ctx context.Context, kind domain.RoutineKind) ([]*domain.Routine, error) {
	query := `SELECT id, kind, title, days, start_time, end_time, created_at
		FROM routines WHERE kind = ? ORDER BY start_time, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	defer rows.Close()

	var routines []*domain.Routine
	for rows.Next() {
		var rt domain.Routine
		var k, days, start, end, createdAt string
		err := rows.Scan(&rt.ID, &k, &rt.Title, &days, &start, &end, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning routine: %w", err)
		}
		rt.Kind = domain.RoutineKind(k)
		if rt.Days, err = splitDays(days); err != nil {
			return nil, err
		}
		if rt.Start, err = domain.ParseTimeOfDay(start); err != nil {
			return nil, fmt.Errorf("routine %s start: %w", rt.ID, err)
		}
		if rt.End, err = domain.ParseTimeOfDay(end); err != nil {
			return nil, fmt.Errorf("routine %s end: %w", rt.ID, err)
		}
		if rt.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		routines = append(routines, &rt)
	}
	return routines, rows.Err()
}

func (r *SQLRoutineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	return requireAffected(res, "routine")
}

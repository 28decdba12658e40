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

// SQLSettingsRepo implements SettingsRepo. Settings live in a single row
// with id 'default'.
type SQLSettingsRepo struct {
	db db.DBTX
}

// NewSQLSettingsRepo creates a new SQLSettingsRepo.
func NewSQLSettingsRepo(conn db.DBTX) *SQLSettingsRepo {
	return &SQLSettingsRepo{db: conn}
}

func (r *SQLSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT week_start_day, grid_start_hour, grid_end_hour, updated_at
		FROM settings WHERE id = 'default'`
	var s domain.Settings
	var weekStart int
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(&weekStart, &s.GridStartHour, &s.GridEndHour, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.WeekStartDay = time.Weekday(weekStart)
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	query := `INSERT INTO settings (id, week_start_day, grid_start_hour, grid_end_hour, updated_at)
		VALUES ('default', ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			week_start_day = excluded.week_start_day,
			grid_start_hour = excluded.grid_start_hour,
			grid_end_hour = excluded.grid_end_hour,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		int(s.WeekStartDay),
		s.GridStartHour,
		s.GridEndHour,
		timeToString(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}

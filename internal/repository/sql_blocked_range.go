package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
)

// SQLBlockedRangeRepo implements BlockedRangeRepo over any DBTX.
type SQLBlockedRangeRepo struct {
	db db.DBTX
}

// NewSQLBlockedRangeRepo creates a new SQLBlockedRangeRepo.
func NewSQLBlockedRangeRepo(conn db.DBTX) *SQLBlockedRangeRepo {
	return &SQLBlockedRangeRepo{db: conn}
}

func (r *SQLBlockedRangeRepo) Create(ctx context.Context, b *domain.BlockedRange) error {
	query := `INSERT INTO blocked_ranges (id, date, start_minute, end_minute, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Date.Format(dateLayout),
		b.StartMinute,
		b.EndMinute,
		b.Reason,
		timeToString(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting blocked range: %w", err)
	}
	return nil
}

// ListBetween compares calendar dates only; the location of from and to is
// not converted.
func (r *SQLBlockedRangeRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error) {
	query := `SELECT id, date, start_minute, end_minute, reason, created_at
		FROM blocked_ranges WHERE date >= ? AND date <= ?
		ORDER BY date, start_minute, id`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing blocked ranges: %w", err)
	}
	defer rows.Close()

	var ranges []*domain.BlockedRange
	for rows.Next() {
		var b domain.BlockedRange
		var date, createdAt string
		err := rows.Scan(&b.ID, &date, &b.StartMinute, &b.EndMinute, &b.Reason, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning blocked range: %w", err)
		}
		if b.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing blocked range date %q: %w", date, err)
		}
		if b.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		ranges = append(ranges, &b)
	}
	return ranges, rows.Err()
}

func (r *SQLBlockedRangeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocked_ranges WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blocked range: %w", err)
	}
	return requireAffected(res, "blocked range")
}

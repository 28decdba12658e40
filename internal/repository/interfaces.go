package repository

import (
	"context"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// BlockRepo stores concrete calendar entries.
type BlockRepo interface {
	Create(ctx context.Context, b *domain.ScheduleBlock) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleBlock, error)
	// ListBetween returns blocks overlapping [start, end), ordered by start.
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.ScheduleBlock, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.ScheduleBlock, error)
	Delete(ctx context.Context, id string) error
}

// RoutineRepo stores fixed schedules and blocked templates.
type RoutineRepo interface {
	Create(ctx context.Context, r *domain.Routine) error
	List(ctx context.Context, kind domain.RoutineKind) ([]*domain.Routine, error)
	Delete(ctx context.Context, id string) error
}

type BlockedRangeRepo interface {
	Create(ctx context.Context, b *domain.BlockedRange) error
	// ListBetween returns ranges whose date falls in [from, to].
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

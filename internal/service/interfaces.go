package service

import (
	"context"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CommitmentService interface {
	AddRoutine(ctx context.Context, r *domain.Routine) error
	ListRoutines(ctx context.Context, kind domain.RoutineKind) ([]*domain.Routine, error)
	RemoveRoutine(ctx context.Context, id string) error

	AddBlock(ctx context.Context, b *domain.ScheduleBlock) error
	ListBlocks(ctx context.Context, start, end time.Time) ([]*domain.ScheduleBlock, error)
	RemoveBlock(ctx context.Context, id string) error

	AddBlockedRange(ctx context.Context, b *domain.BlockedRange) error
	ListBlockedRanges(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error)
	RemoveBlockedRange(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

type PlanService interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
	Reschedule(ctx context.Context, req RescheduleRequest) (*RescheduleResponse, error)
}

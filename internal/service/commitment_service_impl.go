package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
)

type commitmentService struct {
	routines repository.RoutineRepo
	blocks   repository.BlockRepo
	ranges   repository.BlockedRangeRepo
}

func NewCommitmentService(
	routines repository.RoutineRepo,
	blocks repository.BlockRepo,
	ranges repository.BlockedRangeRepo,
) CommitmentService {
	return &commitmentService{routines: routines, blocks: blocks, ranges: ranges}
}

func (s *commitmentService) AddRoutine(ctx context.Context, r *domain.Routine) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()
	return s.routines.Create(ctx, r)
}

func (s *commitmentService) ListRoutines(ctx context.Context, kind domain.RoutineKind) ([]*domain.Routine, error) {
	return s.routines.List(ctx, kind)
}

func (s *commitmentService) RemoveRoutine(ctx context.Context, id string) error {
	return s.routines.Delete(ctx, id)
}

func (s *commitmentService) AddBlock(ctx context.Context, b *domain.ScheduleBlock) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().UTC()
	return s.blocks.Create(ctx, b)
}

func (s *commitmentService) ListBlocks(ctx context.Context, start, end time.Time) ([]*domain.ScheduleBlock, error) {
	return s.blocks.ListBetween(ctx, start, end)
}

func (s *commitmentService) RemoveBlock(ctx context.Context, id string) error {
	return s.blocks.Delete(ctx, id)
}

func (s *commitmentService) AddBlockedRange(ctx context.Context, b *domain.BlockedRange) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().UTC()
	return s.ranges.Create(ctx, b)
}

func (s *commitmentService) ListBlockedRanges(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error) {
	return s.ranges.ListBetween(ctx, from, to)
}

func (s *commitmentService) RemoveBlockedRange(ctx context.Context, id string) error {
	return s.ranges.Delete(ctx, id)
}

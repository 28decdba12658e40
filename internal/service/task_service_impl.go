package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	now   func() time.Time
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks, now: time.Now}
}

// Create fills defaults for the optional fields, then validates.
func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if t.PreferredTime == "" {
		t.PreferredTime = domain.PreferAny
	}
	if t.FocusNeed == "" {
		t.FocusNeed = domain.FocusMedium
	}
	if t.Importance == 0 {
		t.Importance = 3
	}
	if err := t.Validate(); err != nil {
		return err
	}
	now := s.now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeDone bool) ([]*domain.Task, error) {
	if includeDone {
		return s.tasks.List(ctx, nil)
	}
	pending := domain.TaskPending
	return s.tasks.List(ctx, &pending)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = s.now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := t.MarkDone(s.now().UTC()); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/leten02/TimeGrid/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = d
	}
}

func WithEstimate(minutes int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMinutes = minutes
	}
}

func WithImportance(i int) TaskOption {
	return func(t *domain.Task) {
		t.Importance = i
	}
}

func WithFocus(f domain.FocusNeed) TaskOption {
	return func(t *domain.Task) {
		t.FocusNeed = f
	}
}

func WithPreferredTime(p domain.PreferredTime) TaskOption {
	return func(t *domain.Task) {
		t.PreferredTime = p
	}
}

func NotSplittable() TaskOption {
	return func(t *domain.Task) {
		t.Splittable = false
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

// NewTestTask returns a pending, splittable 60-minute task due in three days.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:               uuid.New().String(),
		Title:            title,
		EstimatedMinutes: 60,
		Deadline:         now.AddDate(0, 0, 3),
		Importance:       3,
		Splittable:       true,
		PreferredTime:    domain.PreferAny,
		FocusNeed:        domain.FocusMedium,
		Status:           domain.TaskPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestRoutine(kind domain.RoutineKind, title string, days []int, start, end string) *domain.Routine {
	return &domain.Routine{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Days:      days,
		Start:     domain.MustParseTimeOfDay(start),
		End:       domain.MustParseTimeOfDay(end),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Block options
type BlockOption func(*domain.ScheduleBlock)

func ForTask(taskID string) BlockOption {
	return func(b *domain.ScheduleBlock) {
		b.TaskID = &taskID
	}
}

func WithBlockNote(note string) BlockOption {
	return func(b *domain.ScheduleBlock) {
		b.Note = note
	}
}

func NewTestBlock(title string, start time.Time, d time.Duration, opts ...BlockOption) *domain.ScheduleBlock {
	b := &domain.ScheduleBlock{
		ID:        uuid.New().String(),
		Title:     title,
		Start:     start,
		End:       start.Add(d),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func NewTestBlockedRange(date time.Time, startMinute, endMinute int) *domain.BlockedRange {
	return &domain.BlockedRange{
		ID:          uuid.New().String(),
		Date:        date,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		Reason:      "test",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the longest accepted task title, in characters.
const MaxTitleLength = 120

type Task struct {
	ID               string
	Title            string
	Description      string
	Category         string
	EstimatedMinutes int
	Deadline         time.Time
	Importance       int
	Splittable       bool
	PreferredTime    PreferredTime
	FocusNeed        FocusNeed
	Status           TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a caller controls.
func (t *Task) Validate() error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if t.EstimatedMinutes < 0 {
		return fmt.Errorf("%d: %w", t.EstimatedMinutes, ErrNegativeEstimate)
	}
	if t.Importance < 1 || t.Importance > 5 {
		return fmt.Errorf("%d: %w", t.Importance, ErrInvalidImportance)
	}
	if !ValidFocusNeeds[string(t.FocusNeed)] {
		return fmt.Errorf("%q: %w", t.FocusNeed, ErrInvalidFocusNeed)
	}
	if !ValidPreferredTimes[string(t.PreferredTime)] {
		return fmt.Errorf("%q: %w", t.PreferredTime, ErrInvalidPreferredTime)
	}
	if t.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	return nil
}

func (t *Task) IsDone() bool {
	return t.Status == TaskDone
}

// MarkDone transitions a pending task to done.
func (t *Task) MarkDone(now time.Time) error {
	if t.IsDone() {
		return ErrAlreadyDone
	}
	t.Status = TaskDone
	t.UpdatedAt = now
	return nil
}

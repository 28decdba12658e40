package domain

import (
	"fmt"
	"time"
)

// Routine is a recurring weekly window: a class or shift when Kind is
// RoutineFixed, an unavailability such as sleep when Kind is RoutineBlocked.
type Routine struct {
	ID    string
	Kind  RoutineKind
	Title string
	Days  []int
	Start TimeOfDay
	End   TimeOfDay

	CreatedAt time.Time
}

type RoutineKind string

const (
	RoutineFixed   RoutineKind = "fixed"
	RoutineBlocked RoutineKind = "blocked"
)

// Validate checks weekday indices and time bounds. End may be earlier than
// Start, meaning the window runs past midnight.
func (r *Routine) Validate() error {
	if r.Kind != RoutineFixed && r.Kind != RoutineBlocked {
		return fmt.Errorf("%q: %w", r.Kind, ErrInvalidRoutineKind)
	}
	if r.Title == "" {
		return ErrEmptyTitle
	}
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("day %d: %w", d, ErrInvalidWeekday)
		}
	}
	if !r.Start.Valid() || !r.End.Valid() {
		return fmt.Errorf("%s-%s: %w", r.Start, r.End, ErrInvalidTimeFormat)
	}
	if r.Start == r.End {
		return fmt.Errorf("%s-%s: %w", r.Start, r.End, ErrInvalidRange)
	}
	return nil
}

// ScheduleBlock is a concrete calendar entry. TaskID is set when the block
// was produced by planning a task.
type ScheduleBlock struct {
	ID     string
	TaskID *string
	Title  string
	Start  time.Time
	End    time.Time
	Note   string

	CreatedAt time.Time
}

func (b *ScheduleBlock) Minutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

func (b *ScheduleBlock) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if !b.End.After(b.Start) {
		return ErrInvalidRange
	}
	return nil
}

// BlockedRange is a one-off unavailable interval on a single date.
type BlockedRange struct {
	ID          string
	Date        time.Time
	StartMinute int
	EndMinute   int
	Reason      string

	CreatedAt time.Time
}

func (b *BlockedRange) Validate() error {
	if b.StartMinute < 0 || b.EndMinute > MinutesPerDay {
		return fmt.Errorf("%d-%d: %w", b.StartMinute, b.EndMinute, ErrInvalidTimeFormat)
	}
	if b.EndMinute <= b.StartMinute {
		return ErrInvalidRange
	}
	return nil
}

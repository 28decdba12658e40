package domain

import "fmt"

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

// FocusNeed controls how long a single sitting for a task may be.
type FocusNeed string

const (
	FocusHigh   FocusNeed = "high"
	FocusMedium FocusNeed = "medium"
	FocusLow    FocusNeed = "low"
)

// PreferredTime is a soft time-of-day hint used by placement.
type PreferredTime string

const (
	PreferMorning   PreferredTime = "morning"
	PreferAfternoon PreferredTime = "afternoon"
	PreferEvening   PreferredTime = "evening"
	PreferAny       PreferredTime = "any"
)

// Priority is the coarse tag users may give instead of a numeric importance.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidFocusNeeds is the canonical set of accepted focus need strings.
var ValidFocusNeeds = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// ValidPreferredTimes is the canonical set of accepted preferred time strings.
var ValidPreferredTimes = map[string]bool{
	"morning": true, "afternoon": true, "evening": true, "any": true,
}

// ParseFocusNeed validates s as a focus need. Empty input yields FocusMedium.
func ParseFocusNeed(s string) (FocusNeed, error) {
	if s == "" {
		return FocusMedium, nil
	}
	if !ValidFocusNeeds[s] {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidFocusNeed)
	}
	return FocusNeed(s), nil
}

// ParsePreferredTime validates s as a preferred time. Empty input yields PreferAny.
func ParsePreferredTime(s string) (PreferredTime, error) {
	if s == "" {
		return PreferAny, nil
	}
	if !ValidPreferredTimes[s] {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidPreferredTime)
	}
	return PreferredTime(s), nil
}

// ImportanceFromPriority maps a priority tag onto the 1-5 importance scale.
func ImportanceFromPriority(p Priority) (int, error) {
	switch p {
	case PriorityHigh:
		return 5, nil
	case PriorityMedium:
		return 3, nil
	case PriorityLow:
		return 1, nil
	default:
		return 0, fmt.Errorf("priority %q: %w", p, ErrInvalidImportance)
	}
}

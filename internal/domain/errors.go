package domain

import "errors"

var (
	ErrInvalidTimeFormat    = errors.New("invalid time format, expected HH:MM")
	ErrInvalidFocusNeed     = errors.New("invalid focus need")
	ErrInvalidPreferredTime = errors.New("invalid preferred time")
	ErrInvalidImportance    = errors.New("importance must be between 1 and 5")
	ErrEmptyTitle           = errors.New("title is required")
	ErrTitleTooLong         = errors.New("title exceeds 120 characters")
	ErrNegativeEstimate     = errors.New("estimated minutes must not be negative")
	ErrInvalidWeekday       = errors.New("weekday index must be between 0 and 6")
	ErrInvalidRange         = errors.New("end must be after start")
	ErrAlreadyDone          = errors.New("task is already done")
	ErrMissingDeadline      = errors.New("deadline is required")
	ErrInvalidRoutineKind   = errors.New("routine kind must be fixed or blocked")
)

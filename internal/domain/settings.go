package domain

import (
	"fmt"
	"strings"
	"time"
)

type Settings struct {
	WeekStartDay  time.Weekday
	GridStartHour int
	GridEndHour   int
	UpdatedAt     time.Time
}

func DefaultSettings() Settings {
	return Settings{
		WeekStartDay:  time.Sunday,
		GridStartHour: 6,
		GridEndHour:   24,
	}
}

func (s Settings) Validate() error {
	if s.GridStartHour < 0 || s.GridEndHour > 24 || s.GridStartHour >= s.GridEndHour {
		return fmt.Errorf("grid %d-%d: %w", s.GridStartHour, s.GridEndHour, ErrInvalidRange)
	}
	if s.WeekStartDay != time.Sunday && s.WeekStartDay != time.Monday {
		return fmt.Errorf("week start %s: must be sunday or monday", s.WeekStartDay)
	}
	return nil
}

// ParseWeekStartDay accepts "sunday" or "monday" in any case.
func ParseWeekStartDay(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("week start %q: must be sunday or monday", s)
	}
}

// WeekBounds returns the midnight that starts the week containing t and the
// midnight seven days later, in t's location.
func WeekBounds(t time.Time, startDay time.Weekday) (time.Time, time.Time) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) - int(startDay) + 7) % 7
	start := midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

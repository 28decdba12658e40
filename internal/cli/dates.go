package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// parseDate reads YYYY-MM-DD as midnight in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// parseInstant accepts RFC3339 or "YYYY-MM-DD HH:MM" in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(dateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (want RFC3339 or YYYY-MM-DD HH:MM)", s)
}

// parseDeadline accepts anything parseInstant does. A bare date means the
// last minute of that day.
func parseDeadline(s string, loc *time.Location) (time.Time, error) {
	if d, err := parseDate(s, loc); err == nil {
		return d.Add(24*time.Hour - time.Minute), nil
	}
	return parseInstant(s, loc)
}

// parseDays reads a comma-separated list of day indices or weekday names.
// Indices count from the week's first day; names are converted relative to
// weekStart so "mon" is 1 in a Sunday week and 0 in a Monday week.
func parseDays(s string, weekStart time.Weekday) ([]int, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	}
	seen := make(map[int]bool)
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		var idx int
		if n, err := strconv.Atoi(part); err == nil {
			idx = n
		} else if wd, ok := weekdayByName[part]; ok {
			idx = (int(wd) - int(weekStart) + 7) % 7
		} else {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		if idx < 0 || idx > 6 {
			return nil, fmt.Errorf("day %d: %w", idx, domain.ErrInvalidWeekday)
		}
		if !seen[idx] {
			seen[idx] = true
			days = append(days, idx)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one day is required")
	}
	return days, nil
}

var weekdayByName = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// weekOf resolves an optional --week flag to an instant inside that week.
func weekOf(flag string, app *App) (time.Time, error) {
	if flag == "" {
		return app.now(), nil
	}
	return parseDate(flag, app.location())
}

// nowFlag resolves an optional --now override.
func nowFlag(flag string, app *App) (time.Time, error) {
	if flag == "" {
		return app.now(), nil
	}
	return parseInstant(flag, app.location())
}

package importer

import (
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/scheduler"
)

const dateLayout = "2006-01-02"

var validPriorities = map[string]bool{"high": true, "medium": true, "low": true}

// ValidateRequestFile checks the request file before conversion.
// Returns a slice of all validation errors found.
func ValidateRequestFile(f *RequestFile) []error {
	var errs []error

	errs = append(errs, validateWeek(f)...)
	errs = append(errs, validateTasks(f.Tasks)...)

	for i, b := range f.ExistingBlocks {
		errs = append(errs, validateBlock(fmt.Sprintf("existingBlocks[%d]", i), b)...)
	}
	for i, r := range f.FixedSchedules {
		errs = append(errs, validateRecurring(fmt.Sprintf("fixedSchedules[%d]", i), r)...)
	}
	for i, r := range f.BlockedTemplates {
		errs = append(errs, validateRecurring(fmt.Sprintf("blockedTemplates[%d]", i), r)...)
	}
	for i, r := range f.BlockedRanges {
		errs = append(errs, validateRange(fmt.Sprintf("blockedRanges[%d]", i), r)...)
	}

	return errs
}

func validateWeek(f *RequestFile) []error {
	var errs []error

	var start time.Time
	if f.WeekStart == "" {
		errs = append(errs, fmt.Errorf("weekStart is required"))
	} else {
		var err error
		if start, err = time.Parse(time.RFC3339, f.WeekStart); err != nil {
			errs = append(errs, fmt.Errorf("weekStart: invalid timestamp %q (expected RFC3339)", f.WeekStart))
		}
	}
	if f.WeekEnd != "" {
		end, err := time.Parse(time.RFC3339, f.WeekEnd)
		if err != nil {
			errs = append(errs, fmt.Errorf("weekEnd: invalid timestamp %q (expected RFC3339)", f.WeekEnd))
		} else if !start.IsZero() && !end.After(start) {
			errs = append(errs, fmt.Errorf("weekEnd %q must be after weekStart %q", f.WeekEnd, f.WeekStart))
		}
	}
	if f.Now != "" {
		if _, err := time.Parse(time.RFC3339, f.Now); err != nil {
			errs = append(errs, fmt.Errorf("now: invalid timestamp %q (expected RFC3339)", f.Now))
		}
	}

	startHour, endHour := gridHours(f)
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		errs = append(errs, fmt.Errorf("startHour %d and endHour %d must satisfy 0 <= startHour < endHour <= 24", startHour, endHour))
	}

	return errs
}

func validateTasks(tasks []TaskInput) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		}
		seen[t.ID] = true

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.EstimatedMinutes < 0 {
			errs = append(errs, fmt.Errorf("%s.estimatedMinutes: %w", prefix, domain.ErrNegativeEstimate))
		}
		if t.Deadline == "" {
			errs = append(errs, fmt.Errorf("%s.deadline is required", prefix))
		} else if _, err := time.Parse(time.RFC3339, t.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid timestamp %q (expected RFC3339)", prefix, t.Deadline))
		}
		if t.Importance != nil && (*t.Importance < 1 || *t.Importance > 5) {
			errs = append(errs, fmt.Errorf("%s.importance: %w", prefix, domain.ErrInvalidImportance))
		}
		if t.Priority != "" && !validPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.PreferredTime != "" && !domain.ValidPreferredTimes[t.PreferredTime] {
			errs = append(errs, fmt.Errorf("%s.preferredTime: invalid value %q", prefix, t.PreferredTime))
		}
		if t.FocusNeed != "" && !domain.ValidFocusNeeds[t.FocusNeed] {
			errs = append(errs, fmt.Errorf("%s.focusNeed: invalid value %q", prefix, t.FocusNeed))
		}
	}

	return errs
}

func validateBlock(prefix string, b BlockInput) []error {
	var errs []error
	start, startErr := time.Parse(time.RFC3339, b.Start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start: invalid timestamp %q (expected RFC3339)", prefix, b.Start))
	}
	end, endErr := time.Parse(time.RFC3339, b.End)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end: invalid timestamp %q (expected RFC3339)", prefix, b.End))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s: end %q is before start %q", prefix, b.End, b.Start))
	}
	return errs
}

func validateRecurring(prefix string, r RecurringInput) []error {
	var errs []error
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			errs = append(errs, fmt.Errorf("%s.days: %d: %w", prefix, d, domain.ErrInvalidWeekday))
		}
	}
	start, startErr := domain.ParseTimeOfDay(r.Start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start: %w", prefix, startErr))
	}
	end, endErr := domain.ParseTimeOfDay(r.End)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end: %w", prefix, endErr))
	}
	if startErr == nil && endErr == nil && start == end {
		errs = append(errs, fmt.Errorf("%s: start and end are both %q: %w", prefix, r.Start, domain.ErrInvalidRange))
	}
	return errs
}

func validateRange(prefix string, r RangeInput) []error {
	var errs []error
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Date))
	}
	if r.StartMinute < 0 || r.EndMinute > domain.MinutesPerDay || r.EndMinute < r.StartMinute {
		errs = append(errs, fmt.Errorf("%s: minutes %d-%d must satisfy 0 <= start <= end <= 1440", prefix, r.StartMinute, r.EndMinute))
	}
	return errs
}

// gridHours applies the engine defaults to missing hour bounds.
func gridHours(f *RequestFile) (int, int) {
	start, end := scheduler.DefaultStartHour, scheduler.DefaultEndHour
	if f.StartHour != nil {
		start = *f.StartHour
	}
	if f.EndHour != nil {
		end = *f.EndHour
	}
	return start, end
}

package importer

import (
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/scheduler"
)

// Convert transforms a validated RequestFile into an engine request.
// Call ValidateRequestFile first; Convert stops at the first bad field.
func Convert(f *RequestFile) (scheduler.Request, error) {
	var req scheduler.Request

	weekStart, err := time.Parse(time.RFC3339, f.WeekStart)
	if err != nil {
		return req, fmt.Errorf("parsing weekStart: %w", err)
	}
	weekEnd := weekStart.AddDate(0, 0, scheduler.DaysPerWeek)
	if f.WeekEnd != "" {
		if weekEnd, err = time.Parse(time.RFC3339, f.WeekEnd); err != nil {
			return req, fmt.Errorf("parsing weekEnd: %w", err)
		}
	}
	req.WeekStart = weekStart
	req.WeekEnd = weekEnd
	req.StartHour, req.EndHour = gridHours(f)
	req.ExcludePast = f.ExcludePast
	if f.Now != "" {
		if req.Now, err = time.Parse(time.RFC3339, f.Now); err != nil {
			return req, fmt.Errorf("parsing now: %w", err)
		}
	}

	req.Tasks = make([]scheduler.Task, 0, len(f.Tasks))
	for i, t := range f.Tasks {
		task, err := convertTask(t)
		if err != nil {
			return req, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		req.Tasks = append(req.Tasks, task)
	}

	for i, b := range f.ExistingBlocks {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return req, fmt.Errorf("existingBlocks[%d].start: %w", i, err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return req, fmt.Errorf("existingBlocks[%d].end: %w", i, err)
		}
		req.ExistingBlocks = append(req.ExistingBlocks, scheduler.TimeRange{Start: start, End: end})
	}

	if req.FixedSchedules, err = convertRecurring("fixedSchedules", f.FixedSchedules); err != nil {
		return req, err
	}
	if req.BlockedTemplates, err = convertRecurring("blockedTemplates", f.BlockedTemplates); err != nil {
		return req, err
	}

	for i, r := range f.BlockedRanges {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return req, fmt.Errorf("blockedRanges[%d].date: %w", i, err)
		}
		req.BlockedRanges = append(req.BlockedRanges, scheduler.BlockedRange{
			Date:        date,
			StartMinute: r.StartMinute,
			EndMinute:   r.EndMinute,
		})
	}

	return req, nil
}

func convertTask(t TaskInput) (scheduler.Task, error) {
	deadline, err := time.Parse(time.RFC3339, t.Deadline)
	if err != nil {
		return scheduler.Task{}, fmt.Errorf("parsing deadline: %w", err)
	}

	importance := 3
	switch {
	case t.Importance != nil:
		importance = *t.Importance
	case t.Priority != "":
		if importance, err = domain.ImportanceFromPriority(domain.Priority(t.Priority)); err != nil {
			return scheduler.Task{}, err
		}
	}

	focus, err := domain.ParseFocusNeed(t.FocusNeed)
	if err != nil {
		return scheduler.Task{}, err
	}
	preferred, err := domain.ParsePreferredTime(t.PreferredTime)
	if err != nil {
		return scheduler.Task{}, err
	}

	splittable := true
	if t.Splittable != nil {
		splittable = *t.Splittable
	}

	return scheduler.Task{
		ID:               t.ID,
		Title:            t.Title,
		EstimatedMinutes: t.EstimatedMinutes,
		Deadline:         deadline,
		Importance:       importance,
		Splittable:       splittable,
		PreferredTime:    preferred,
		FocusNeed:        focus,
	}, nil
}

func convertRecurring(field string, in []RecurringInput) ([]scheduler.Recurring, error) {
	out := make([]scheduler.Recurring, 0, len(in))
	for i, r := range in {
		start, err := domain.ParseTimeOfDay(r.Start)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].start: %w", field, i, err)
		}
		end, err := domain.ParseTimeOfDay(r.End)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].end: %w", field, i, err)
		}
		out = append(out, scheduler.Recurring{Days: r.Days, Start: start, End: end})
	}
	return out, nil
}

package formatter

import (
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

// FormatRoutineList renders fixed schedules or blocked templates. Day indices
// are shown as weekday names for a week starting on weekStart.
func FormatRoutineList(routines []*domain.Routine, weekStart time.Weekday) string {
	if len(routines) == 0 {
		return Dim("No entries.") + "\n"
	}

	headers := []string{"ID", "TITLE", "DAYS", "TIME"}
	rows := make([][]string, 0, len(routines))
	for _, r := range routines {
		span := fmt.Sprintf("%s-%s", r.Start, r.End)
		if r.End < r.Start {
			span += Dim(" (+1d)")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			r.Title,
			FormatDays(r.Days, weekStart),
			span,
		})
	}
	return RenderTable(headers, rows)
}

// FormatBlockList renders concrete schedule blocks.
func FormatBlockList(blocks []*domain.ScheduleBlock) string {
	if len(blocks) == 0 {
		return Dim("No blocks.") + "\n"
	}

	headers := []string{"ID", "WHEN", "LENGTH", "TITLE", "NOTE"}
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		title := b.Title
		if b.TaskID != nil {
			title = StyleBlue.Render(title)
		}
		rows = append(rows, []string{
			TruncID(b.ID),
			FormatSpan(b.Start, b.End),
			FormatMinutes(b.Minutes()),
			title,
			Dim(b.Note),
		})
	}
	return RenderTable(headers, rows)
}

// FormatBlockedRangeList renders one-off unavailable ranges.
func FormatBlockedRangeList(ranges []*domain.BlockedRange) string {
	if len(ranges) == 0 {
		return Dim("No unavailable ranges.") + "\n"
	}

	headers := []string{"ID", "DATE", "TIME", "REASON"}
	rows := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		rows = append(rows, []string{
			TruncID(r.ID),
			r.Date.Format("Mon 2006-01-02"),
			fmt.Sprintf("%s-%s", domain.TimeOfDay(r.StartMinute), domain.TimeOfDay(r.EndMinute)),
			r.Reason,
		})
	}
	return RenderTable(headers, rows)
}

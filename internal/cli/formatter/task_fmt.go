package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

// FormatTaskList renders tasks as a table ordered the way the caller passes them.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	headers := []string{"ID", "TITLE", "EST", "DEADLINE", "IMP", "FOCUS", "PREFER", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if !t.Splittable {
			title += Dim(" (whole)")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			title,
			FormatMinutes(t.EstimatedMinutes),
			DeadlineStyled(t.Deadline, now),
			ImportancePill(t.Importance),
			FocusBadge(t.FocusNeed),
			string(t.PreferredTime),
			StatusPill(t.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskDetail renders a single task in a bordered box.
func FormatTaskDetail(t *domain.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(t.Title), StatusPill(t.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("id:        "), t.ID)
	fmt.Fprintf(&b, "%s %s\n", Dim("estimate:  "), FormatMinutes(t.EstimatedMinutes))
	fmt.Fprintf(&b, "%s %s (%s)\n", Dim("deadline:  "), t.Deadline.Format("Mon 2006-01-02 15:04"), DeadlineStyled(t.Deadline, now))
	fmt.Fprintf(&b, "%s %s\n", Dim("importance:"), ImportancePill(t.Importance))
	fmt.Fprintf(&b, "%s %s\n", Dim("focus:     "), FocusBadge(t.FocusNeed))
	fmt.Fprintf(&b, "%s %s\n", Dim("prefer:    "), t.PreferredTime)
	fmt.Fprintf(&b, "%s %t", Dim("splittable:"), t.Splittable)
	return RenderBox("Task", b.String())
}

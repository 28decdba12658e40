package formatter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/leten02/TimeGrid/internal/scheduler"
)

// FormatPlan renders a scheduling result: placements grouped by day followed
// by any unscheduled remainders and shortfalls. titles maps task IDs to
// display names for tasks that got no placement.
func FormatPlan(res *scheduler.Result, titles map[string]string) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Week of %s", res.WeekStart.Format("Mon Jan 2"))))
	b.WriteString("\n\n")

	if len(res.Proposed) == 0 {
		b.WriteString(Dim("Nothing to place."))
		b.WriteString("\n")
	} else {
		b.WriteString(formatPlacements(res.Proposed))
	}

	names := make(map[string]string, len(titles)+len(res.Proposed))
	for id, t := range titles {
		names[id] = t
	}
	for _, p := range res.Proposed {
		names[p.TaskID] = p.Title
	}
	nameOf := func(id string) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return TruncID(id)
	}

	if n := res.UnscheduledTasks(); n > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(UnscheduledSummary(n)))
		b.WriteString("\n")
		for _, u := range res.Unscheduled {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleRed.Render("✗"), nameOf(u.TaskID),
				Dim(fmt.Sprintf("(%d chunks left, %s)", u.RemainingChunks, u.Reason)))
		}
	}

	if len(res.Shortfalls) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Placed short:"))
		b.WriteString("\n")
		for _, s := range res.Shortfalls {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render("!"), nameOf(s.TaskID),
				Dim(fmt.Sprintf("(%s short)", FormatMinutes(s.Minutes))))
		}
	}

	return b.String()
}

// UnscheduledSummary is the one-line count shown under a plan.
func UnscheduledSummary(n int) string {
	if n == 1 {
		return "1 task could not be scheduled"
	}
	return fmt.Sprintf("%d tasks could not be scheduled", n)
}

func formatPlacements(placements []scheduler.Placement) string {
	sorted := slices.Clone(placements)
	slices.SortStableFunc(sorted, func(a, b scheduler.Placement) int {
		return a.Start.Compare(b.Start)
	})

	headers := []string{"DAY", "TIME", "LENGTH", "TASK"}
	rows := make([][]string, 0, len(sorted))
	var lastDay time.Time
	for _, p := range sorted {
		day := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, p.Start.Location())
		label := ""
		if !day.Equal(lastDay) {
			label = Bold(p.Start.Format("Mon 01/02"))
			lastDay = day
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%s-%s", p.Start.Format("15:04"), p.End.Format("15:04")),
			FormatMinutes(int(p.End.Sub(p.Start) / time.Minute)),
			p.Title,
		})
	}
	return RenderTable(headers, rows)
}

// FormatNotifications renders reschedule notices as a bulleted list.
func FormatNotifications(notes []string) string {
	if len(notes) == 0 {
		return Dim("No overdue work to reschedule.") + "\n"
	}
	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("↻"), n)
	}
	return b.String()
}

package formatter

import (
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatRoutineList(t *testing.T) {
	routines := []*domain.Routine{
		{ID: "r1234567890", Title: "Lecture", Days: []int{1, 3}, Start: domain.MustParseTimeOfDay("09:00"), End: domain.MustParseTimeOfDay("10:30")},
		{ID: "r2", Title: "Sleep", Days: []int{0, 1, 2, 3, 4, 5, 6}, Start: domain.MustParseTimeOfDay("23:00"), End: domain.MustParseTimeOfDay("07:00")},
	}
	out := stripANSI(FormatRoutineList(routines, time.Sunday))
	assert.Contains(t, out, "r1234567")
	assert.NotContains(t, out, "r1234567890")
	assert.Contains(t, out, "Mon Wed")
	assert.Contains(t, out, "09:00-10:30")
	assert.Contains(t, out, "every day")
	assert.Contains(t, out, "23:00-07:00 (+1d)")

	assert.Contains(t, stripANSI(FormatRoutineList(nil, time.Sunday)), "No entries.")
}

func TestFormatBlockList(t *testing.T) {
	start := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	taskID := "t1"
	blocks := []*domain.ScheduleBlock{
		{ID: "b1", TaskID: &taskID, Title: "Essay", Start: start, End: start.Add(90 * time.Minute), Note: "auto-scheduled"},
	}
	out := stripANSI(FormatBlockList(blocks))
	assert.Contains(t, out, "Mon 06/16 09:00-10:30")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "auto-scheduled")
}

func TestFormatBlockedRangeList(t *testing.T) {
	ranges := []*domain.BlockedRange{
		{ID: "x1", Date: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), StartMinute: 13 * 60, EndMinute: 24 * 60, Reason: "dentist"},
	}
	out := stripANSI(FormatBlockedRangeList(ranges))
	assert.Contains(t, out, "Wed 2025-06-18")
	assert.Contains(t, out, "13:00-24:00")
	assert.Contains(t, out, "dentist")
}

func TestFormatTaskList(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{{
		ID: "task-0001-abcd", Title: "Essay", EstimatedMinutes: 150, Deadline: now.AddDate(0, 0, 1),
		Importance: 4, FocusNeed: domain.FocusHigh, PreferredTime: domain.PreferMorning, Status: domain.TaskPending,
	}}
	out := stripANSI(FormatTaskList(tasks, now))
	assert.Contains(t, out, "Essay (whole)")
	assert.Contains(t, out, "2h 30m")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "●●●●○")
	assert.Contains(t, out, "deep")
	assert.Contains(t, out, "morning")

	assert.Contains(t, stripANSI(FormatTaskList(nil, now)), "No tasks.")
}

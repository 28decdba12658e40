package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_AppliesDefaults(t *testing.T) {
	req, err := Convert(validMinimalFile())
	require.NoError(t, err)

	weekStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, req.WeekStart.Equal(weekStart))
	assert.True(t, req.WeekEnd.Equal(weekStart.AddDate(0, 0, 7)))
	assert.Equal(t, scheduler.DefaultStartHour, req.StartHour)
	assert.Equal(t, scheduler.DefaultEndHour, req.EndHour)
	assert.True(t, req.Now.IsZero())
	assert.False(t, req.ExcludePast)

	require.Len(t, req.Tasks, 1)
	task := req.Tasks[0]
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, 3, task.Importance)
	assert.True(t, task.Splittable)
	assert.Equal(t, domain.PreferAny, task.PreferredTime)
	assert.Equal(t, domain.FocusMedium, task.FocusNeed)
}

func TestConvert_ImportanceAndPriority(t *testing.T) {
	f := validMinimalFile()
	f.Tasks = []TaskInput{
		{ID: "a", Title: "A", Deadline: "2025-06-18T00:00:00Z", Priority: "high"},
		{ID: "b", Title: "B", Deadline: "2025-06-18T00:00:00Z", Priority: "low", Importance: ptrInt(4)},
		{ID: "c", Title: "C", Deadline: "2025-06-18T00:00:00Z", Splittable: ptrBool(false)},
	}

	req, err := Convert(f)
	require.NoError(t, err)
	assert.Equal(t, 5, req.Tasks[0].Importance)
	assert.Equal(t, 4, req.Tasks[1].Importance)
	assert.False(t, req.Tasks[2].Splittable)
}

func TestConvert_Commitments(t *testing.T) {
	f := validMinimalFile()
	f.StartHour = ptrInt(8)
	f.EndHour = ptrInt(20)
	f.Now = "2025-06-16T12:00:00Z"
	f.ExcludePast = true
	f.ExistingBlocks = []BlockInput{{Start: "2025-06-16T09:00:00Z", End: "2025-06-16T10:30:00Z"}}
	f.FixedSchedules = []RecurringInput{{Days: []int{1, 3}, Start: "10:00", End: "12:00"}}
	f.BlockedTemplates = []RecurringInput{{Days: []int{0}, Start: "23:00", End: "07:00"}}
	f.BlockedRanges = []RangeInput{{Date: "2025-06-17", StartMinute: 60, EndMinute: 120}}

	req, err := Convert(f)
	require.NoError(t, err)
	assert.Equal(t, 8, req.StartHour)
	assert.Equal(t, 20, req.EndHour)
	assert.True(t, req.ExcludePast)
	assert.True(t, req.Now.Equal(time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)))

	require.Len(t, req.ExistingBlocks, 1)
	assert.Equal(t, 90*time.Minute, req.ExistingBlocks[0].End.Sub(req.ExistingBlocks[0].Start))
	require.Len(t, req.FixedSchedules, 1)
	assert.Equal(t, []int{1, 3}, req.FixedSchedules[0].Days)
	assert.Equal(t, domain.MustParseTimeOfDay("10:00"), req.FixedSchedules[0].Start)
	require.Len(t, req.BlockedTemplates, 1)
	assert.Equal(t, domain.MustParseTimeOfDay("07:00"), req.BlockedTemplates[0].End)
	require.Len(t, req.BlockedRanges, 1)
	assert.Equal(t, 2025, req.BlockedRanges[0].Date.Year())
	assert.Equal(t, 17, req.BlockedRanges[0].Date.Day())
}

func TestConvert_RejectsBadTime(t *testing.T) {
	f := validMinimalFile()
	f.FixedSchedules = []RecurringInput{{Days: []int{1}, Start: "25:00", End: "26:00"}}
	_, err := Convert(f)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)
}

func TestLoadRequestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	content := `{
  "weekStart": "2025-06-15T00:00:00Z",
  "tasks": [
    {"id": "t1", "title": "Essay", "estimatedMinutes": 90, "deadline": "2025-06-16T18:00:00Z",
     "importance": 5, "focusNeed": "high", "preferredTime": "morning"}
  ],
  "fixedSchedules": [{"days": [1], "start": "09:00", "end": "10:00"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := LoadRequestFile(path)
	require.NoError(t, err)
	require.Empty(t, ValidateRequestFile(f))

	req, err := Convert(f)
	require.NoError(t, err)

	engine := scheduler.NewEngine(scheduler.DefaultConfig())
	result, err := engine.Schedule(req)
	require.NoError(t, err)

	// 90 minutes of high focus is one chunk, placed in Sunday's morning window.
	require.Len(t, result.Proposed, 1)
	assert.Equal(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), result.Proposed[0].Start.UTC())
	assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), result.Proposed[0].End.UTC())
}

func TestLoadRequestFile_Errors(t *testing.T) {
	_, err := LoadRequestFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadRequestFile(path)
	assert.ErrorContains(t, err, "parsing request file")
}

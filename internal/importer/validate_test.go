package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int    { return &i }
func ptrBool(b bool) *bool { return &b }

func validMinimalFile() *RequestFile {
	return &RequestFile{
		WeekStart: "2025-06-15T00:00:00Z",
		Tasks: []TaskInput{
			{ID: "t1", Title: "Essay", EstimatedMinutes: 120, Deadline: "2025-06-18T23:59:00Z"},
		},
	}
}

func containsError(errs []error, msg string) bool {
	for _, e := range errs {
		if strings.Contains(e.Error(), msg) {
			return true
		}
	}
	return false
}

func TestValidateRequestFile_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateRequestFile(validMinimalFile()))
}

func TestValidateRequestFile_ValidFull(t *testing.T) {
	f := &RequestFile{
		WeekStart: "2025-06-15T00:00:00+09:00",
		WeekEnd:   "2025-06-22T00:00:00+09:00",
		StartHour: ptrInt(7),
		EndHour:   ptrInt(23),
		Now:       "2025-06-15T10:00:00+09:00",
		Tasks: []TaskInput{
			{ID: "t1", Title: "Essay", EstimatedMinutes: 120, Deadline: "2025-06-18T23:59:00+09:00",
				Importance: ptrInt(5), Splittable: ptrBool(false), PreferredTime: "evening", FocusNeed: "high"},
			{ID: "t2", Title: "Reading", EstimatedMinutes: 45, Deadline: "2025-06-20T12:00:00+09:00", Priority: "low"},
		},
		ExistingBlocks:   []BlockInput{{Start: "2025-06-16T09:00:00+09:00", End: "2025-06-16T10:00:00+09:00"}},
		FixedSchedules:   []RecurringInput{{Days: []int{1, 3}, Start: "10:00", End: "12:00"}},
		BlockedTemplates: []RecurringInput{{Days: []int{0, 1, 2, 3, 4, 5, 6}, Start: "23:00", End: "07:00"}},
		BlockedRanges:    []RangeInput{{Date: "2025-06-17", StartMinute: 0, EndMinute: 1440}},
	}
	assert.Empty(t, ValidateRequestFile(f))
}

func TestValidateRequestFile_Problems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *RequestFile)
		wantMsg string
	}{
		{"missing weekStart", func(f *RequestFile) { f.WeekStart = "" }, "weekStart is required"},
		{"bad weekStart", func(f *RequestFile) { f.WeekStart = "2025-06-15" }, "weekStart: invalid timestamp"},
		{"weekEnd before start", func(f *RequestFile) { f.WeekEnd = "2025-06-14T00:00:00Z" }, "must be after weekStart"},
		{"bad now", func(f *RequestFile) { f.Now = "noon" }, "now: invalid timestamp"},
		{"inverted grid", func(f *RequestFile) { f.StartHour = ptrInt(20); f.EndHour = ptrInt(8) }, "startHour 20 and endHour 8"},
		{"missing id", func(f *RequestFile) { f.Tasks[0].ID = "" }, "tasks[0].id is required"},
		{"missing title", func(f *RequestFile) { f.Tasks[0].Title = "" }, "tasks[0].title is required"},
		{"negative minutes", func(f *RequestFile) { f.Tasks[0].EstimatedMinutes = -30 }, "tasks[0].estimatedMinutes"},
		{"missing deadline", func(f *RequestFile) { f.Tasks[0].Deadline = "" }, "tasks[0].deadline is required"},
		{"bad importance", func(f *RequestFile) { f.Tasks[0].Importance = ptrInt(9) }, "tasks[0].importance"},
		{"bad priority", func(f *RequestFile) { f.Tasks[0].Priority = "urgent" }, "tasks[0].priority"},
		{"bad preferred", func(f *RequestFile) { f.Tasks[0].PreferredTime = "night" }, "tasks[0].preferredTime"},
		{"bad focus", func(f *RequestFile) { f.Tasks[0].FocusNeed = "extreme" }, "tasks[0].focusNeed"},
		{"inverted block", func(f *RequestFile) {
			f.ExistingBlocks = []BlockInput{{Start: "2025-06-16T10:00:00Z", End: "2025-06-16T09:00:00Z"}}
		}, "existingBlocks[0]: end"},
		{"bad recurring time", func(f *RequestFile) {
			f.FixedSchedules = []RecurringInput{{Days: []int{1}, Start: "9am", End: "10:00"}}
		}, "fixedSchedules[0].start"},
		{"empty recurring window", func(f *RequestFile) {
			f.BlockedTemplates = []RecurringInput{{Days: []int{0}, Start: "09:00", End: "09:00"}}
		}, "blockedTemplates[0]: start and end are both"},
		{"bad weekday", func(f *RequestFile) {
			f.BlockedTemplates = []RecurringInput{{Days: []int{7}, Start: "09:00", End: "10:00"}}
		}, "blockedTemplates[0].days"},
		{"range out of day", func(f *RequestFile) {
			f.BlockedRanges = []RangeInput{{Date: "2025-06-17", StartMinute: 0, EndMinute: 1500}}
		}, "blockedRanges[0]: minutes"},
		{"bad range date", func(f *RequestFile) {
			f.BlockedRanges = []RangeInput{{Date: "17/06/2025", StartMinute: 0, EndMinute: 60}}
		}, "blockedRanges[0].date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := validMinimalFile()
			tc.mutate(f)
			errs := ValidateRequestFile(f)
			assert.True(t, containsError(errs, tc.wantMsg), "expected error containing %q, got %v", tc.wantMsg, errs)
		})
	}
}

func TestValidateRequestFile_DuplicateTaskID(t *testing.T) {
	f := validMinimalFile()
	f.Tasks = append(f.Tasks, TaskInput{ID: "t1", Title: "Dup", Deadline: "2025-06-18T00:00:00Z"})
	errs := ValidateRequestFile(f)
	assert.True(t, containsError(errs, "duplicate id"))
}

func TestValidateRequestFile_CollectsEveryProblem(t *testing.T) {
	f := validMinimalFile()
	f.WeekStart = ""
	f.Tasks[0].Title = ""
	f.Tasks[0].FocusNeed = "extreme"
	f.BlockedRanges = []RangeInput{{Date: "bad", StartMinute: -1, EndMinute: 10}}

	assert.Len(t, ValidateRequestFile(f), 5)
}

package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// RequestFile is the JSON form of one scheduling run.
type RequestFile struct {
	Tasks            []TaskInput      `json:"tasks"`
	ExistingBlocks   []BlockInput     `json:"existingBlocks,omitempty"`
	FixedSchedules   []RecurringInput `json:"fixedSchedules,omitempty"`
	BlockedTemplates []RecurringInput `json:"blockedTemplates,omitempty"`
	BlockedRanges    []RangeInput     `json:"blockedRanges,omitempty"`
	WeekStart        string           `json:"weekStart"`
	WeekEnd          string           `json:"weekEnd,omitempty"`
	StartHour        *int             `json:"startHour,omitempty"`
	EndHour          *int             `json:"endHour,omitempty"`
	Now              string           `json:"now,omitempty"`
	ExcludePast      bool             `json:"excludePast,omitempty"`
}

// TaskInput is a task in the request file. Importance wins over Priority
// when both are set.
type TaskInput struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Deadline         string `json:"deadline"`
	Importance       *int   `json:"importance,omitempty"`
	Priority         string `json:"priority,omitempty"`
	Splittable       *bool  `json:"splittable,omitempty"`
	PreferredTime    string `json:"preferredTime,omitempty"`
	FocusNeed        string `json:"focusNeed,omitempty"`
}

type BlockInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RecurringInput struct {
	Days  []int  `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type RangeInput struct {
	Date        string `json:"date"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
}

// LoadRequestFile reads and parses a request JSON file.
func LoadRequestFile(path string) (*RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f RequestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	return &f, nil
}

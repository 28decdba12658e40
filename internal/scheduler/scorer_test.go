package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

func TestDeadlineScore(t *testing.T) {
	cases := []struct {
		name     string
		deadline time.Time
		want     float64
	}{
		{"overdue saturates", testNow.Add(-48 * time.Hour), 1},
		{"due now saturates", testNow, 1},
		{"seven days is half", testNow.AddDate(0, 0, 7), 0.5},
		{"partial days round up", testNow.Add(36 * time.Hour), 1 - 2.0/14},
		{"beyond horizon is zero", testNow.AddDate(0, 0, 30), 0},
		{"exactly horizon is zero", testNow.AddDate(0, 0, 14), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DeadlineScore(tc.deadline, testNow, 14), 1e-9)
		})
	}
}

func TestImportanceScore(t *testing.T) {
	assert.Equal(t, 0.0, ImportanceScore(1))
	assert.Equal(t, 0.5, ImportanceScore(3))
	assert.Equal(t, 1.0, ImportanceScore(5))
	assert.Equal(t, 0.0, ImportanceScore(0), "below scale clamps")
	assert.Equal(t, 1.0, ImportanceScore(9), "above scale clamps")
}

func TestScoreTask_DeadlineDominatesImportance(t *testing.T) {
	cfg := DefaultConfig()
	urgent := ScoreTask(Task{ID: "u", Deadline: testNow, Importance: 1}, testNow, cfg)
	important := ScoreTask(Task{ID: "i", Deadline: testNow.AddDate(0, 0, 14), Importance: 5}, testNow, cfg)

	assert.InDelta(t, 1.3, urgent.Score, 1e-9)
	assert.InDelta(t, 1.0, important.Score, 1e-9)
	assert.Greater(t, urgent.Score, important.Score)
}

func TestPrioritize_Order(t *testing.T) {
	cfg := DefaultConfig()
	due := testNow.AddDate(0, 0, 3)
	tasks := []Task{
		{ID: "low", Deadline: testNow.AddDate(0, 0, 10), Importance: 1, EstimatedMinutes: 30},
		{ID: "small", Deadline: due, Importance: 3, EstimatedMinutes: 30},
		{ID: "big", Deadline: due, Importance: 3, EstimatedMinutes: 120},
		{ID: "hot", Deadline: testNow.AddDate(0, 0, 1), Importance: 5, EstimatedMinutes: 15},
	}

	got := Prioritize(tasks, testNow, cfg)
	require.Len(t, got, 4)
	ids := []string{got[0].Task.ID, got[1].Task.ID, got[2].Task.ID, got[3].Task.ID}
	assert.Equal(t, []string{"hot", "big", "small", "low"}, ids)

	assert.Equal(t, "low", tasks[0].ID, "input order is not modified")
}

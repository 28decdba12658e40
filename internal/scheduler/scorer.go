package scheduler

import (
	"math"
	"time"
)

// ScoredTask pairs a task with the urgency components used to order it.
type ScoredTask struct {
	Task       Task
	Deadline   float64
	Importance float64
	Score      float64
}

// DeadlineScore grows linearly from 0 to 1 as the deadline comes within
// horizonDays of now. Overdue and due-today tasks saturate at 1.
func DeadlineScore(deadline, now time.Time, horizonDays int) float64 {
	daysLeft := math.Ceil(deadline.Sub(now).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}
	return clampFloat(1-daysLeft/float64(horizonDays), 0, 1)
}

// ImportanceScore normalises a 1-5 importance onto [0, 1].
func ImportanceScore(importance int) float64 {
	return clampFloat(float64(importance-1)/4, 0, 1)
}

// ScoreTask computes DeadlineWeight*deadline + importance for t at now.
func ScoreTask(t Task, now time.Time, cfg Config) ScoredTask {
	d := DeadlineScore(t.Deadline, now, cfg.HorizonDays)
	i := ImportanceScore(t.Importance)
	return ScoredTask{
		Task:       t,
		Deadline:   d,
		Importance: i,
		Score:      cfg.DeadlineWeight*d + i,
	}
}

// Prioritize scores a copy of tasks and returns them in placement order.
// The input slice is left untouched.
func Prioritize(tasks []Task, now time.Time, cfg Config) []ScoredTask {
	scored := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = ScoreTask(t, now, cfg)
	}
	CanonicalSort(scored)
	return scored
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

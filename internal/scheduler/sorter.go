package scheduler

import "sort"

// CanonicalSort orders scored tasks by the deterministic placement rules:
// 1. Score: higher first
// 2. Deadline: earliest first
// 3. Estimated minutes: larger first
// Remaining ties keep their input order.
func CanonicalSort(tasks []ScoredTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		// 1. Score (higher first)
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		// 2. Deadline (earliest first)
		if !a.Task.Deadline.Equal(b.Task.Deadline) {
			return a.Task.Deadline.Before(b.Task.Deadline)
		}

		// 3. Estimated minutes (larger first)
		return a.Task.EstimatedMinutes > b.Task.EstimatedMinutes
	})
}

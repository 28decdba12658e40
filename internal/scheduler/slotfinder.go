package scheduler

import "github.com/leten02/TimeGrid/internal/domain"

// Slot is a grid coordinate.
type Slot struct {
	Day   int
	Index int
}

// preferredDays returns the day search order: days up to and including the
// deadline day first, then the days after it, each ascending.
func preferredDays(deadlineDay int) []int {
	deadlineDay = clamp(deadlineDay, 0, DaysPerWeek-1)
	days := make([]int, 0, DaysPerWeek)
	for d := 0; d <= deadlineDay; d++ {
		days = append(days, d)
	}
	for d := deadlineDay + 1; d < DaysPerWeek; d++ {
		days = append(days, d)
	}
	return days
}

type slotFinder struct {
	grid    *Grid
	windows map[domain.PreferredTime]Window
}

// search scans days in order for the first free run of n slots inside
// [from, to).
func (f *slotFinder) search(days []int, from, to, n int) (Slot, bool) {
	for _, d := range days {
		if s := f.grid.FreeRun(d, from, to, n); s >= 0 {
			return Slot{Day: d, Index: s}, true
		}
	}
	return Slot{}, false
}

// find tries the preferred window across all days, then the full grid.
func (f *slotFinder) find(days []int, n int, pref domain.PreferredTime) (Slot, bool) {
	if w, ok := f.windows[pref]; ok {
		from, to := f.grid.WindowSlots(w)
		if s, ok := f.search(days, from, to, n); ok {
			return s, true
		}
	}
	return f.search(days, 0, f.grid.SlotsPerDay(), n)
}

// place finds room for a chunk of n slots, degrading to a single slot when
// the full chunk does not fit anywhere. It returns the slot and the width
// actually available there.
func (f *slotFinder) place(days []int, n int, pref domain.PreferredTime) (Slot, int, bool) {
	if s, ok := f.find(days, n, pref); ok {
		return s, n, true
	}
	if n > 1 {
		if s, ok := f.find(days, 1, pref); ok {
			return s, 1, true
		}
	}
	return Slot{}, 0, false
}

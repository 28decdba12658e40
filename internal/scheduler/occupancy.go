package scheduler

import (
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

// TimeRange is a concrete calendar entry that occupies the grid once.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Recurring is a weekly window repeated on each listed day index. A window
// whose End is before its Start runs past midnight into the next day.
type Recurring struct {
	Days  []int
	Start domain.TimeOfDay
	End   domain.TimeOfDay
}

// BlockedRange is a one-off unavailable interval on a single date.
type BlockedRange struct {
	Date        time.Time
	StartMinute int
	EndMinute   int
}

// Commitments are the opaque obstacles unioned into the occupancy grid.
type Commitments struct {
	ExistingBlocks   []TimeRange
	FixedSchedules   []Recurring
	BlockedTemplates []Recurring
	BlockedRanges    []BlockedRange
}

// Validate rejects malformed commitments before any grid is touched.
func (c Commitments) Validate() error {
	for i, b := range c.ExistingBlocks {
		if b.End.Before(b.Start) {
			return fmt.Errorf("existing block %d: %w", i, ErrInvalidRange)
		}
	}
	for i, r := range c.FixedSchedules {
		if err := validateRecurring(r); err != nil {
			return fmt.Errorf("fixed schedule %d: %w", i, err)
		}
	}
	for i, r := range c.BlockedTemplates {
		if err := validateRecurring(r); err != nil {
			return fmt.Errorf("blocked template %d: %w", i, err)
		}
	}
	for i, b := range c.BlockedRanges {
		if b.StartMinute < 0 || b.EndMinute > domain.MinutesPerDay || b.EndMinute < b.StartMinute {
			return fmt.Errorf("blocked range %d (%d-%d): %w", i, b.StartMinute, b.EndMinute, ErrInvalidRange)
		}
	}
	return nil
}

func validateRecurring(r Recurring) error {
	if !r.Start.Valid() {
		return fmt.Errorf("start %d: %w", int(r.Start), domain.ErrInvalidTimeFormat)
	}
	if !r.End.Valid() {
		return fmt.Errorf("end %d: %w", int(r.End), domain.ErrInvalidTimeFormat)
	}
	if r.Start == r.End {
		return fmt.Errorf("%s-%s is empty: %w", r.Start, r.End, ErrInvalidRange)
	}
	return nil
}

// BuildOccupancy marks every commitment source on g: existing blocks, fixed
// schedules, blocked templates, then manual blocked ranges.
func BuildOccupancy(g *Grid, c Commitments) {
	for _, b := range c.ExistingBlocks {
		markTimeRange(g, b)
	}
	for _, r := range c.FixedSchedules {
		markRecurring(g, r)
	}
	for _, r := range c.BlockedTemplates {
		markRecurring(g, r)
	}
	for _, b := range c.BlockedRanges {
		g.MarkRange(g.DateIndexOf(b.Date), b.StartMinute, b.EndMinute)
	}
}

// markTimeRange occupies a block, spilling across midnight when it ends on a
// later day than it starts.
func markTimeRange(g *Grid, b TimeRange) {
	first, last := g.DayIndexOf(b.Start), g.DayIndexOf(b.End)
	endMinute := g.MinuteOfDay(b.End)
	if b.End.Second() > 0 || b.End.Nanosecond() > 0 {
		endMinute++
	}
	if first == last {
		g.MarkRange(first, g.MinuteOfDay(b.Start), endMinute)
		return
	}
	for d := max(first, -1); d <= last && d <= DaysPerWeek; d++ {
		from, to := 0, domain.MinutesPerDay
		if d == first {
			from = g.MinuteOfDay(b.Start)
		}
		if d == last {
			to = endMinute
		}
		g.MarkRange(d, from, to)
	}
}

func markRecurring(g *Grid, r Recurring) {
	start, end := r.Start.Minutes(), r.End.Minutes()
	for _, d := range r.Days {
		if end > start {
			g.MarkRange(d, start, end)
			continue
		}
		g.MarkRange(d, start, domain.MinutesPerDay)
		g.MarkRange(d+1, 0, end)
	}
}

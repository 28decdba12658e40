package scheduler

import "time"

// DaysPerWeek is the number of rows in a Grid.
const DaysPerWeek = 7

// Grid is the occupancy map of one week: DaysPerWeek rows of fixed-size
// slots starting at the grid's start hour. It is owned by a single
// scheduling run and must not be shared.
type Grid struct {
	weekStart   time.Time
	startMinute int
	slotMinutes int
	slotsPerDay int
	occupied    []bool
}

// NewGrid builds an empty grid for the week beginning at weekStart's midnight.
func NewGrid(weekStart time.Time, startHour, endHour, slotMinutes int) *Grid {
	spd := (endHour - startHour) * 60 / slotMinutes
	if spd < 1 {
		spd = 1
	}
	return &Grid{
		weekStart:   midnight(weekStart),
		startMinute: startHour * 60,
		slotMinutes: slotMinutes,
		slotsPerDay: spd,
		occupied:    make([]bool, DaysPerWeek*spd),
	}
}

func (g *Grid) SlotsPerDay() int { return g.slotsPerDay }

func (g *Grid) SlotMinutes() int { return g.slotMinutes }

// DayIndexOf returns the calendar-day offset of t from the week start. Dates
// outside the week yield indices outside [0, DaysPerWeek).
func (g *Grid) DayIndexOf(t time.Time) int {
	t = t.In(g.weekStart.Location())
	a := time.Date(g.weekStart.Year(), g.weekStart.Month(), g.weekStart.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// DateIndexOf is DayIndexOf for calendar dates: only the year, month and day
// of date are used, whatever its location.
func (g *Grid) DateIndexOf(date time.Time) int {
	a := time.Date(g.weekStart.Year(), g.weekStart.Month(), g.weekStart.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// MinuteOfDay returns the wall-clock minute of t in the grid's location,
// dropping seconds.
func (g *Grid) MinuteOfDay(t time.Time) int {
	t = t.In(g.weekStart.Location())
	return t.Hour()*60 + t.Minute()
}

// slotFloor maps a minute of day to the slot containing it.
func (g *Grid) slotFloor(minute int) int {
	return clamp(floorDiv(minute-g.startMinute, g.slotMinutes), 0, g.slotsPerDay)
}

// slotCeil maps a minute of day to the first slot boundary at or after it.
func (g *Grid) slotCeil(minute int) int {
	return clamp(ceilDiv(minute-g.startMinute, g.slotMinutes), 0, g.slotsPerDay)
}

// MarkRange occupies every slot of day that intersects [startMinute, endMinute).
// Writes to days outside the week are ignored.
func (g *Grid) MarkRange(day, startMinute, endMinute int) {
	if day < 0 || day >= DaysPerWeek {
		return
	}
	from, to := g.slotFloor(startMinute), g.slotCeil(endMinute)
	row := g.row(day)
	for i := from; i < to; i++ {
		row[i] = true
	}
}

// MarkSlots occupies n slots of day starting at slot.
func (g *Grid) MarkSlots(day, slot, n int) {
	if day < 0 || day >= DaysPerWeek {
		return
	}
	row := g.row(day)
	for i := max(slot, 0); i < slot+n && i < g.slotsPerDay; i++ {
		row[i] = true
	}
}

// MarkBefore occupies every slot that starts before now: whole days before
// now's day and, on now's day, every slot up to the next slot boundary.
func (g *Grid) MarkBefore(now time.Time) {
	today := g.DayIndexOf(now)
	for d := 0; d < DaysPerWeek && d < today; d++ {
		g.MarkSlots(d, 0, g.slotsPerDay)
	}
	if today >= 0 && today < DaysPerWeek {
		m := g.MinuteOfDay(now)
		if now.Second() > 0 || now.Nanosecond() > 0 {
			m++
		}
		g.MarkRange(today, g.startMinute, m)
	}
}

func (g *Grid) IsFree(day, slot int) bool {
	if day < 0 || day >= DaysPerWeek || slot < 0 || slot >= g.slotsPerDay {
		return false
	}
	return !g.occupied[day*g.slotsPerDay+slot]
}

// FreeRun returns the first slot s in [from, to-n] such that slots s..s+n-1
// of day are all free, or -1.
func (g *Grid) FreeRun(day, from, to, n int) int {
	row := g.row(day)
	for s := from; s <= to-n; s++ {
		ok := true
		for j := 0; j < n; j++ {
			if row[s+j] {
				ok = false
				break
			}
		}
		if ok {
			return s
		}
	}
	return -1
}

// WindowSlots converts an hour window into slot bounds, flooring the start and
// ceiling the end, clamped to the grid.
func (g *Grid) WindowSlots(w Window) (int, int) {
	from := g.slotFloor(w.StartHour * 60)
	to := g.slotCeil(w.EndHour * 60)
	return from, max(from, to)
}

// SlotTime returns the wall-clock start of slot on day.
func (g *Grid) SlotTime(day, slot int) time.Time {
	ws := g.weekStart
	return time.Date(ws.Year(), ws.Month(), ws.Day()+day, 0, g.startMinute+slot*g.slotMinutes, 0, 0, ws.Location())
}

// FreeSlots counts unoccupied slots across the whole week.
func (g *Grid) FreeSlots() int {
	n := 0
	for _, occ := range g.occupied {
		if !occ {
			n++
		}
	}
	return n
}

func (g *Grid) row(day int) []bool {
	return g.occupied[day*g.slotsPerDay : (day+1)*g.slotsPerDay]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

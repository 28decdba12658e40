package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
)

const (
	DefaultStartHour = 6
	DefaultEndHour   = 24
)

// ReasonNoFreeSlot marks chunks for which no free run existed anywhere in the week.
const ReasonNoFreeSlot = "no_free_slot"

var (
	ErrNegativeDuration = errors.New("estimated minutes must not be negative")
	ErrInvalidRange     = errors.New("invalid time range")
	ErrMissingWeekStart = errors.New("week start is required")
	ErrInvalidConfig    = errors.New("invalid engine config")
)

// Task is the engine's view of a unit of work.
type Task struct {
	ID               string
	Title            string
	EstimatedMinutes int
	Deadline         time.Time
	Importance       int
	Splittable       bool
	PreferredTime    domain.PreferredTime
	FocusNeed        domain.FocusNeed
}

// Request is one scheduling run. When StartHour and EndHour are both zero
// the grid spans DefaultStartHour to DefaultEndHour. A zero Now falls back to
// the engine clock. ExcludePast occupies every slot before Now.
type Request struct {
	Commitments

	Tasks       []Task
	WeekStart   time.Time
	WeekEnd     time.Time
	StartHour   int
	EndHour     int
	Now         time.Time
	ExcludePast bool
}

// Placement is one placed chunk.
type Placement struct {
	TaskID string    `json:"taskId"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// Unscheduled counts the whole chunks of a task that found no room.
type Unscheduled struct {
	TaskID          string `json:"taskId"`
	RemainingChunks int    `json:"remainingChunks"`
	Reason          string `json:"reason"`
}

// Shortfall records minutes lost when a chunk could only be placed as a
// single slot.
type Shortfall struct {
	TaskID  string `json:"taskId"`
	Minutes int    `json:"minutes"`
}

type Result struct {
	Proposed    []Placement   `json:"proposed"`
	Unscheduled []Unscheduled `json:"unscheduled"`
	Shortfalls  []Shortfall   `json:"shortfalls"`
	WeekStart   time.Time     `json:"weekStart"`
	WeekEnd     time.Time     `json:"weekEnd"`
}

// UnscheduledTasks is the number of tasks with at least one unplaced chunk.
func (r *Result) UnscheduledTasks() int {
	return len(r.Unscheduled)
}

// Engine places tasks greedily into the free time of one week.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	cfg Config
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used when a request carries no Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// Schedule runs one placement pass. Malformed input fails the whole call
// with a nil result; running out of room is reported in the result.
func (e *Engine) Schedule(req Request) (*Result, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	startHour, endHour := req.StartHour, req.EndHour
	if startHour == 0 && endHour == 0 {
		startHour, endHour = DefaultStartHour, DefaultEndHour
	}
	now := req.Now
	if now.IsZero() {
		now = e.now()
	}

	grid := NewGrid(req.WeekStart, startHour, endHour, e.cfg.SlotMinutes)
	BuildOccupancy(grid, req.Commitments)
	if req.ExcludePast {
		grid.MarkBefore(now)
	}

	finder := &slotFinder{grid: grid, windows: e.cfg.PreferredWindows}
	result := &Result{
		Proposed:    []Placement{},
		Unscheduled: []Unscheduled{},
		Shortfalls:  []Shortfall{},
		WeekStart:   req.WeekStart,
		WeekEnd:     req.WeekEnd,
	}

	for _, st := range Prioritize(req.Tasks, now, e.cfg) {
		t := st.Task
		days := preferredDays(grid.DayIndexOf(t.Deadline))
		failed, lostSlots := 0, 0

		for _, n := range Chunk(t, e.cfg) {
			slot, width, ok := finder.place(days, n, t.PreferredTime)
			if !ok {
				failed++
				continue
			}
			grid.MarkSlots(slot.Day, slot.Index, width)
			lostSlots += n - width
			result.Proposed = append(result.Proposed, Placement{
				TaskID: t.ID,
				Title:  t.Title,
				Start:  grid.SlotTime(slot.Day, slot.Index),
				End:    grid.SlotTime(slot.Day, slot.Index+width),
			})
		}

		if failed > 0 {
			result.Unscheduled = append(result.Unscheduled, Unscheduled{
				TaskID:          t.ID,
				RemainingChunks: failed,
				Reason:          ReasonNoFreeSlot,
			})
		}
		if lostSlots > 0 {
			result.Shortfalls = append(result.Shortfalls, Shortfall{
				TaskID:  t.ID,
				Minutes: lostSlots * e.cfg.SlotMinutes,
			})
		}
	}
	return result, nil
}

func (e *Engine) validate(req Request) error {
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if req.WeekStart.IsZero() {
		return ErrMissingWeekStart
	}
	for _, t := range req.Tasks {
		if t.EstimatedMinutes < 0 {
			return fmt.Errorf("task %s (%d minutes): %w", t.ID, t.EstimatedMinutes, ErrNegativeDuration)
		}
	}
	return req.Commitments.Validate()
}

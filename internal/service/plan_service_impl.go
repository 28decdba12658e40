package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
	"github.com/leten02/TimeGrid/internal/scheduler"
)

const (
	NoteAutoScheduled = "auto-scheduled"
	NoteRescheduled   = "rescheduled"
)

// PlanRequest asks for a placement of pending tasks into one week.
type PlanRequest struct {
	// WeekOf is any instant inside the target week. Zero means Now. Its
	// location decides where the week's midnights fall.
	WeekOf time.Time
	// Now is the planning instant. Zero means the service clock.
	Now time.Time
	// TaskIDs restricts planning to these tasks. Empty means every pending task.
	TaskIDs []string
	// Apply persists every placement as a calendar block.
	Apply bool
}

type PlanResponse struct {
	Result  *scheduler.Result
	Applied int
}

// RescheduleRequest re-places pending tasks that have no upcoming block.
type RescheduleRequest struct {
	WeekOf time.Time
	Now    time.Time
}

type RescheduleResponse struct {
	Result        *scheduler.Result
	Notifications []string
}

type planService struct {
	tasks    repository.TaskRepo
	blocks   repository.BlockRepo
	routines repository.RoutineRepo
	ranges   repository.BlockedRangeRepo
	settings SettingsService
	engine   *scheduler.Engine
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewPlanService(
	tasks repository.TaskRepo,
	blocks repository.BlockRepo,
	routines repository.RoutineRepo,
	ranges repository.BlockedRangeRepo,
	settings SettingsService,
	engine *scheduler.Engine,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		tasks:    tasks,
		blocks:   blocks,
		routines: routines,
		ranges:   ranges,
		settings: settings,
		engine:   engine,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// weekPlan is everything loaded for one week before tasks are chosen.
type weekPlan struct {
	weekStart time.Time
	weekEnd   time.Time
	blocks    []*domain.ScheduleBlock
	request   scheduler.Request
}

func (s *planService) Plan(ctx context.Context, req PlanRequest) (resp *PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"apply": req.Apply}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-week",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.resolveNow(req.Now)
	var week *weekPlan
	week, err = s.loadWeek(ctx, req.WeekOf, now)
	if err != nil {
		return nil, err
	}
	fields["week_start"] = week.weekStart.Format("2006-01-02")

	var tasks []*domain.Task
	tasks, err = s.selectTasks(ctx, req.TaskIDs)
	if err != nil {
		return nil, err
	}
	fields["tasks"] = len(tasks)

	week.request.Tasks = make([]scheduler.Task, 0, len(tasks))
	for _, t := range tasks {
		week.request.Tasks = append(week.request.Tasks, toEngineTask(t, t.EstimatedMinutes))
	}

	var result *scheduler.Result
	result, err = s.engine.Schedule(week.request)
	if err != nil {
		return nil, &PlanError{Code: PlanErrInvalidInput, Message: err.Error(), Err: err}
	}
	fields["proposed"] = len(result.Proposed)
	fields["unscheduled"] = result.UnscheduledTasks()
	fields["shortfalls"] = len(result.Shortfalls)

	resp = &PlanResponse{Result: result}
	if req.Apply {
		if err = s.persist(ctx, result.Proposed, NoteAutoScheduled); err != nil {
			return nil, err
		}
		resp.Applied = len(result.Proposed)
	}
	return resp, nil
}

// Reschedule finds pending tasks whose blocks in the week all ended before
// Now, schedules their remaining minutes from Now onward and persists the
// placements.
func (s *planService) Reschedule(ctx context.Context, req RescheduleRequest) (resp *RescheduleResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reschedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.resolveNow(req.Now)
	var week *weekPlan
	week, err = s.loadWeek(ctx, req.WeekOf, now)
	if err != nil {
		return nil, err
	}
	fields["week_start"] = week.weekStart.Format("2006-01-02")

	var tasks []*domain.Task
	tasks, err = s.selectTasks(ctx, nil)
	if err != nil {
		return nil, err
	}

	byTask := make(map[string][]*domain.ScheduleBlock)
	for _, b := range week.blocks {
		if b.TaskID != nil {
			byTask[*b.TaskID] = append(byTask[*b.TaskID], b)
		}
	}

	week.request.Tasks = nil
	for _, t := range tasks {
		remaining, overdue := remainingMinutes(t, byTask[t.ID], now)
		if !overdue || remaining <= 0 {
			continue
		}
		week.request.Tasks = append(week.request.Tasks, toEngineTask(t, remaining))
	}
	fields["tasks"] = len(week.request.Tasks)

	resp = &RescheduleResponse{
		Result: &scheduler.Result{
			Proposed:    []scheduler.Placement{},
			Unscheduled: []scheduler.Unscheduled{},
			Shortfalls:  []scheduler.Shortfall{},
			WeekStart:   week.weekStart,
			WeekEnd:     week.weekEnd,
		},
		Notifications: []string{},
	}
	if len(week.request.Tasks) == 0 {
		return resp, nil
	}

	var result *scheduler.Result
	result, err = s.engine.Schedule(week.request)
	if err != nil {
		return nil, &PlanError{Code: PlanErrInvalidInput, Message: err.Error(), Err: err}
	}
	fields["proposed"] = len(result.Proposed)
	fields["unscheduled"] = result.UnscheduledTasks()

	if err = s.persist(ctx, result.Proposed, NoteRescheduled); err != nil {
		return nil, err
	}
	resp.Result = result
	for _, p := range result.Proposed {
		resp.Notifications = append(resp.Notifications,
			fmt.Sprintf("%q was rescheduled to %s", p.Title, p.Start.Format("Mon 15:04")))
	}
	return resp, nil
}

// remainingMinutes reports whether t has no block ending at or after now,
// and how many estimated minutes its past blocks leave uncovered.
func remainingMinutes(t *domain.Task, blocks []*domain.ScheduleBlock, now time.Time) (int, bool) {
	spent := 0
	for _, b := range blocks {
		if !b.End.Before(now) {
			return 0, false
		}
		if m := b.Minutes(); m > 0 {
			spent += m
		}
	}
	return max(0, t.EstimatedMinutes-spent), true
}

func (s *planService) resolveNow(now time.Time) time.Time {
	if now.IsZero() {
		return s.now()
	}
	return now
}

func (s *planService) loadWeek(ctx context.Context, weekOf, now time.Time) (*weekPlan, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, &PlanError{Code: PlanErrNoSettings, Message: "loading settings", Err: err}
	}
	if weekOf.IsZero() {
		weekOf = now
	}
	weekStart, weekEnd := domain.WeekBounds(weekOf, settings.WeekStartDay)

	blocks, err := s.blocks.ListBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, internalError("loading calendar blocks", err)
	}
	fixed, err := s.routines.List(ctx, domain.RoutineFixed)
	if err != nil {
		return nil, internalError("loading fixed schedules", err)
	}
	blocked, err := s.routines.List(ctx, domain.RoutineBlocked)
	if err != nil {
		return nil, internalError("loading blocked templates", err)
	}
	ranges, err := s.ranges.ListBetween(ctx, weekStart, weekEnd.AddDate(0, 0, -1))
	if err != nil {
		return nil, internalError("loading blocked ranges", err)
	}

	req := scheduler.Request{
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		StartHour:   settings.GridStartHour,
		EndHour:     settings.GridEndHour,
		Now:         now,
		ExcludePast: true,
	}
	for _, b := range blocks {
		req.ExistingBlocks = append(req.ExistingBlocks, scheduler.TimeRange{Start: b.Start, End: b.End})
	}
	req.FixedSchedules = toRecurring(fixed)
	req.BlockedTemplates = toRecurring(blocked)
	for _, r := range ranges {
		req.BlockedRanges = append(req.BlockedRanges, scheduler.BlockedRange{
			Date:        r.Date,
			StartMinute: r.StartMinute,
			EndMinute:   r.EndMinute,
		})
	}

	return &weekPlan{
		weekStart: weekStart,
		weekEnd:   weekEnd,
		blocks:    blocks,
		request:   req,
	}, nil
}

func (s *planService) selectTasks(ctx context.Context, ids []string) ([]*domain.Task, error) {
	pending := domain.TaskPending
	tasks, err := s.tasks.List(ctx, &pending)
	if err != nil {
		return nil, internalError("loading tasks", err)
	}
	if len(ids) == 0 {
		return tasks, nil
	}

	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	selected := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, &PlanError{
				Code:    PlanErrInvalidInput,
				Message: fmt.Sprintf("task %s is not pending", id),
			}
		}
		selected = append(selected, t)
	}
	return selected, nil
}

func (s *planService) persist(ctx context.Context, placements []scheduler.Placement, note string) error {
	if len(placements) == 0 {
		return nil
	}
	now := time.Now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLBlockRepo(tx)
		for i := range placements {
			p := placements[i]
			taskID := p.TaskID
			b := &domain.ScheduleBlock{
				ID:        uuid.New().String(),
				TaskID:    &taskID,
				Title:     p.Title,
				Start:     p.Start,
				End:       p.End,
				Note:      note,
				CreatedAt: now,
			}
			if err := txBlocks.Create(ctx, b); err != nil {
				return fmt.Errorf("saving block for task %s: %w", p.TaskID, err)
			}
		}
		return nil
	})
	if err != nil {
		return internalError("applying plan", err)
	}
	return nil
}

func toEngineTask(t *domain.Task, minutes int) scheduler.Task {
	return scheduler.Task{
		ID:               t.ID,
		Title:            t.Title,
		EstimatedMinutes: minutes,
		Deadline:         t.Deadline,
		Importance:       t.Importance,
		Splittable:       t.Splittable,
		PreferredTime:    t.PreferredTime,
		FocusNeed:        t.FocusNeed,
	}
}

func toRecurring(routines []*domain.Routine) []scheduler.Recurring {
	out := make([]scheduler.Recurring, 0, len(routines))
	for _, r := range routines {
		out = append(out, scheduler.Recurring{Days: r.Days, Start: r.Start, End: r.End})
	}
	return out
}

func internalError(msg string, err error) *PlanError {
	return &PlanError{Code: PlanErrInternal, Message: msg + ": " + err.Error(), Err: err}
}

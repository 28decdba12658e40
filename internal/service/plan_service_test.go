package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourOn(day, hour int) time.Time {
	return time.Date(2025, 6, 15+day, hour, 0, 0, 0, time.UTC)
}

func TestPlan_PlacesAfterNowWithoutPersisting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task := testutil.NewTestTask("Problem set")
	require.NoError(t, env.tasks.Create(ctx, task))

	resp, err := env.planService(nil).Plan(ctx, PlanRequest{Now: testNow})
	require.NoError(t, err)

	require.Len(t, resp.Result.Proposed, 1)
	p := resp.Result.Proposed[0]
	assert.Equal(t, task.ID, p.TaskID)
	assert.Equal(t, hourOn(0, 8), p.Start)
	assert.Equal(t, hourOn(0, 9), p.End)
	assert.Equal(t, hourOn(0, 0), resp.Result.WeekStart)
	assert.Equal(t, hourOn(7, 0), resp.Result.WeekEnd)
	assert.Zero(t, resp.Applied)

	stored, err := env.blocks.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlan_ApplyPersistsBlocks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task := testutil.NewTestTask("Lab report", testutil.WithEstimate(120))
	require.NoError(t, env.tasks.Create(ctx, task))
	svc := env.planService(nil)

	resp, err := svc.Plan(ctx, PlanRequest{Now: testNow, Apply: true})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Applied)

	stored, err := env.blocks.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, b := range stored {
		assert.Equal(t, NoteAutoScheduled, b.Note)
		assert.Equal(t, "Lab report", b.Title)
	}

	// Applied blocks occupy the grid for the next run.
	again, err := svc.Plan(ctx, PlanRequest{Now: testNow})
	require.NoError(t, err)
	require.NotEmpty(t, again.Result.Proposed)
	assert.Equal(t, hourOn(0, 10), again.Result.Proposed[0].Start)
}

func TestPlan_RespectsRoutinesAndBlockedRanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task := testutil.NewTestTask("Essay")
	require.NoError(t, env.tasks.Create(ctx, task))

	require.NoError(t, env.routines.Create(ctx,
		testutil.NewTestRoutine(domain.RoutineFixed, "Lecture", []int{0}, "08:00", "10:00")))
	require.NoError(t, env.ranges.Create(ctx,
		testutil.NewTestBlockedRange(hourOn(0, 0), 10*60, 12*60)))
	require.NoError(t, env.routines.Create(ctx,
		testutil.NewTestRoutine(domain.RoutineBlocked, "Lunch", []int{0}, "12:00", "13:00")))

	resp, err := env.planService(nil).Plan(ctx, PlanRequest{Now: testNow})
	require.NoError(t, err)
	require.Len(t, resp.Result.Proposed, 1)
	assert.Equal(t, hourOn(0, 13), resp.Result.Proposed[0].Start)
}

func TestPlan_UsesStoredSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.settings.Update(ctx, &domain.Settings{
		WeekStartDay:  time.Monday,
		GridStartHour: 9,
		GridEndHour:   18,
	}))
	task := testutil.NewTestTask("Review")
	require.NoError(t, env.tasks.Create(ctx, task))

	resp, err := env.planService(nil).Plan(ctx, PlanRequest{Now: testNow, WeekOf: hourOn(1, 12)})
	require.NoError(t, err)
	assert.Equal(t, hourOn(1, 0), resp.Result.WeekStart)
	require.Len(t, resp.Result.Proposed, 1)
	assert.Equal(t, hourOn(1, 9), resp.Result.Proposed[0].Start)
}

func TestPlan_TaskFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := testutil.NewTestTask("A")
	b := testutil.NewTestTask("B")
	require.NoError(t, env.tasks.Create(ctx, a))
	require.NoError(t, env.tasks.Create(ctx, b))
	svc := env.planService(nil)

	resp, err := svc.Plan(ctx, PlanRequest{Now: testNow, TaskIDs: []string{b.ID}})
	require.NoError(t, err)
	require.Len(t, resp.Result.Proposed, 1)
	assert.Equal(t, b.ID, resp.Result.Proposed[0].TaskID)

	_, err = svc.Plan(ctx, PlanRequest{Now: testNow, TaskIDs: []string{"missing"}})
	var planErr *PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, PlanErrInvalidInput, planErr.Code)
}

func TestPlan_ReportsUnscheduledRemainder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.settings.Update(ctx, &domain.Settings{
		WeekStartDay:  time.Sunday,
		GridStartHour: 6,
		GridEndHour:   7,
	}))
	// Seven free hours in the week, twelve requested.
	task := testutil.NewTestTask("Thesis", testutil.WithEstimate(12*60))
	require.NoError(t, env.tasks.Create(ctx, task))

	resp, err := env.planService(nil).Plan(ctx, PlanRequest{Now: hourOn(0, 0)})
	require.NoError(t, err)
	assert.Len(t, resp.Result.Proposed, 7)
	require.Len(t, resp.Result.Unscheduled, 1)
	assert.Equal(t, 5, resp.Result.Unscheduled[0].RemainingChunks)
	assert.Equal(t, 1, resp.Result.UnscheduledTasks())
}

func TestPlan_ApplyRollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task := testutil.NewTestTask("Slides", testutil.WithEstimate(180))
	require.NoError(t, env.tasks.Create(ctx, task))

	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: errors.New("disk full")}
	_, err := env.planService(uow).Plan(ctx, PlanRequest{Now: testNow, Apply: true})

	var planErr *PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, PlanErrInternal, planErr.Code)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 2, uow.Execs, "apply stops at the failing insert")

	stored, err := env.blocks.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlan_ObservesUseCase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Observed")))

	_, err := env.planService(nil).Plan(ctx, PlanRequest{Now: testNow})
	require.NoError(t, err)

	require.Len(t, env.observer.events, 1)
	ev := env.observer.events[0]
	assert.Equal(t, "plan-week", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 1, ev.Fields["tasks"])
	assert.Equal(t, 1, ev.Fields["proposed"])
	assert.Equal(t, "2025-06-15", ev.Fields["week_start"])
}

func TestReschedule_MovesOverdueRemainder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := hourOn(0, 10)

	// Worked 30 of 90 minutes before now; nothing upcoming.
	overdue := testutil.NewTestTask("Overdue", testutil.WithEstimate(90), testutil.WithImportance(5))
	// Has an upcoming block; left alone.
	booked := testutil.NewTestTask("Booked", testutil.WithImportance(5))
	// Fully covered by past work.
	finished := testutil.NewTestTask("Finished", testutil.WithEstimate(30), testutil.WithImportance(5))
	for _, task := range []*domain.Task{overdue, booked, finished} {
		require.NoError(t, env.tasks.Create(ctx, task))
	}
	require.NoError(t, env.blocks.Create(ctx, testutil.NewTestBlock("Overdue", hourOn(0, 6), 30*time.Minute, testutil.ForTask(overdue.ID))))
	require.NoError(t, env.blocks.Create(ctx, testutil.NewTestBlock("Booked", hourOn(1, 9), time.Hour, testutil.ForTask(booked.ID))))
	require.NoError(t, env.blocks.Create(ctx, testutil.NewTestBlock("Finished", hourOn(0, 7), time.Hour, testutil.ForTask(finished.ID))))

	resp, err := env.planService(nil).Reschedule(ctx, RescheduleRequest{Now: now})
	require.NoError(t, err)

	require.Len(t, resp.Result.Proposed, 1)
	p := resp.Result.Proposed[0]
	assert.Equal(t, overdue.ID, p.TaskID)
	assert.Equal(t, now, p.Start)
	assert.Equal(t, 60*time.Minute, p.End.Sub(p.Start))
	require.Len(t, resp.Notifications, 1)
	assert.Contains(t, resp.Notifications[0], "Overdue")

	stored, err := env.blocks.ListByTask(ctx, overdue.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, NoteRescheduled, stored[1].Note)
}

func TestReschedule_NothingOverdue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task := testutil.NewTestTask("Upcoming")
	require.NoError(t, env.tasks.Create(ctx, task))
	require.NoError(t, env.blocks.Create(ctx, testutil.NewTestBlock("Upcoming", hourOn(2, 9), time.Hour, testutil.ForTask(task.ID))))

	resp, err := env.planService(nil).Reschedule(ctx, RescheduleRequest{Now: testNow})
	require.NoError(t, err)
	assert.Empty(t, resp.Result.Proposed)
	assert.Empty(t, resp.Notifications)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommitmentService(env *testEnv) CommitmentService {
	return NewCommitmentService(env.routines, env.blocks, env.ranges)
}

func TestCommitmentService_Routines(t *testing.T) {
	svc := newCommitmentService(newTestEnv(t))
	ctx := context.Background()

	class := &domain.Routine{
		Kind:  domain.RoutineFixed,
		Title: "Calculus",
		Days:  []int{1, 3},
		Start: domain.MustParseTimeOfDay("09:00"),
		End:   domain.MustParseTimeOfDay("10:30"),
	}
	require.NoError(t, svc.AddRoutine(ctx, class))
	assert.NotEmpty(t, class.ID)

	bad := &domain.Routine{
		Kind:  domain.RoutineBlocked,
		Title: "Sleep",
		Days:  []int{7},
		Start: domain.MustParseTimeOfDay("23:00"),
		End:   domain.MustParseTimeOfDay("07:00"),
	}
	assert.ErrorIs(t, svc.AddRoutine(ctx, bad), domain.ErrInvalidWeekday)

	fixed, err := svc.ListRoutines(ctx, domain.RoutineFixed)
	require.NoError(t, err)
	require.Len(t, fixed, 1)
	assert.Equal(t, "Calculus", fixed[0].Title)

	require.NoError(t, svc.RemoveRoutine(ctx, class.ID))
	assert.ErrorIs(t, svc.RemoveRoutine(ctx, class.ID), repository.ErrNotFound)
}

func TestCommitmentService_Blocks(t *testing.T) {
	svc := newCommitmentService(newTestEnv(t))
	ctx := context.Background()

	b := &domain.ScheduleBlock{Title: "Dentist", Start: testNow.Add(2 * time.Hour), End: testNow.Add(3 * time.Hour)}
	require.NoError(t, svc.AddBlock(ctx, b))

	inverted := &domain.ScheduleBlock{Title: "Oops", Start: testNow, End: testNow.Add(-time.Hour)}
	assert.ErrorIs(t, svc.AddBlock(ctx, inverted), domain.ErrInvalidRange)

	got, err := svc.ListBlocks(ctx, testNow, testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 60, got[0].Minutes())

	require.NoError(t, svc.RemoveBlock(ctx, b.ID))
}

func TestCommitmentService_BlockedRanges(t *testing.T) {
	svc := newCommitmentService(newTestEnv(t))
	ctx := context.Background()
	date := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	br := &domain.BlockedRange{Date: date, StartMinute: 600, EndMinute: 720, Reason: "exam"}
	require.NoError(t, svc.AddBlockedRange(ctx, br))

	assert.ErrorIs(t, svc.AddBlockedRange(ctx, &domain.BlockedRange{Date: date, StartMinute: 700, EndMinute: 600}), domain.ErrInvalidRange)

	got, err := svc.ListBlockedRanges(ctx, date, date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "exam", got[0].Reason)

	require.NoError(t, svc.RemoveBlockedRange(ctx, br.ID))
}

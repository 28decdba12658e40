package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/leten02/TimeGrid/internal/testutil"
)

// Sunday 2025-06-15 08:00 UTC; the default week starts at its midnight.
var testNow = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *sql.DB
	tasks    *repository.SQLTaskRepo
	blocks   *repository.SQLBlockRepo
	routines *repository.SQLRoutineRepo
	ranges   *repository.SQLBlockedRangeRepo
	settings SettingsService
	observer *recordingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		tasks:    repository.NewSQLTaskRepo(database),
		blocks:   repository.NewSQLBlockRepo(database),
		routines: repository.NewSQLRoutineRepo(database),
		ranges:   repository.NewSQLBlockedRangeRepo(database),
		settings: NewSettingsService(repository.NewSQLSettingsRepo(database), domain.DefaultSettings()),
		observer: &recordingObserver{},
	}
}

func (e *testEnv) planService(uow db.UnitOfWork) PlanService {
	if uow == nil {
		uow = testutil.NewTestUoW(e.db)
	}
	engine := scheduler.NewEngine(scheduler.DefaultConfig(), scheduler.WithClock(func() time.Time { return testNow }))
	return NewPlanService(e.tasks, e.blocks, e.routines, e.ranges, e.settings, engine, uow, e.observer)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
}

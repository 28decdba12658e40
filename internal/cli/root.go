package cli

import (
	"time"

	"github.com/leten02/TimeGrid/internal/config"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/leten02/TimeGrid/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks       service.TaskService
	Commitments service.CommitmentService
	Settings    service.SettingsService
	Plan        service.PlanService
	Engine      *scheduler.Engine

	Config     *config.Config
	ConfigPath string

	// Now and Location default to time.Now and time.Local.
	Now      func() time.Time
	Location *time.Location

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().In(a.location())
	}
	return time.Now().In(a.location())
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timegrid" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timegrid",
		Short:         "Weekly planner that fits tasks into your free time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTaskCmd(app),
		newRoutineCmd(app, domain.RoutineFixed),
		newRoutineCmd(app, domain.RoutineBlocked),
		newBlockCmd(app),
		newUnavailableCmd(app),
		newPlanCmd(app),
		newRescheduleCmd(app),
		newSolveCmd(app),
		newSettingsCmd(app),
		newConfigCmd(app),
		newDBCmd(app),
	)

	return root
}

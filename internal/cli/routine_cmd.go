package cli

import (
	"context"
	"fmt"

	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/spf13/cobra"
)

var routineShort = map[domain.RoutineKind]string{
	domain.RoutineFixed:   "Manage weekly fixed schedules such as classes or shifts",
	domain.RoutineBlocked: "Manage weekly unavailable windows such as sleep or commute",
}

// newRoutineCmd builds the "fixed" and "blocked" command groups, which
// differ only in the routine kind they manage.
func newRoutineCmd(app *App, kind domain.RoutineKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: routineShort[kind],
	}

	cmd.AddCommand(
		newRoutineAddCmd(app, kind),
		newRoutineListCmd(app, kind),
		newRoutineRemoveCmd(app, kind),
	)

	return cmd
}

// loadSettings reads the stored settings so day names resolve the same way
// planning will interpret them.
func loadSettings(ctx context.Context, app *App) (domain.Settings, error) {
	s, err := app.Settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return *s, nil
}

func newRoutineAddCmd(app *App, kind domain.RoutineKind) *cobra.Command {
	var title, days, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s weekly window", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd.Context(), app)
			if err != nil {
				return err
			}
			dayIdx, err := parseDays(days, settings.WeekStartDay)
			if err != nil {
				return err
			}
			startTime, err := domain.ParseTimeOfDay(start)
			if err != nil {
				return err
			}
			endTime, err := domain.ParseTimeOfDay(end)
			if err != nil {
				return err
			}

			r := &domain.Routine{
				Kind:  kind,
				Title: title,
				Days:  dayIdx,
				Start: startTime,
				End:   endTime,
			}
			if err := app.Commitments.AddRoutine(cmd.Context(), r); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s %s %s-%s\n", kind, formatter.TruncID(r.ID), r.Title,
				formatter.FormatDays(r.Days, settings.WeekStartDay), r.Start, r.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Label, e.g. Lecture or Sleep")
	cmd.Flags().StringVar(&days, "days", "", "Days as indices from the week start (0,2,4), names (mon,wed) or all")
	cmd.Flags().StringVar(&start, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time HH:MM; earlier than start wraps past midnight")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newRoutineListCmd(app *App, kind domain.RoutineKind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s windows", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd.Context(), app)
			if err != nil {
				return err
			}
			routines, err := app.Commitments.ListRoutines(cmd.Context(), kind)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineList(routines, settings.WeekStartDay))
			return nil
		},
	}
}

func newRoutineRemoveCmd(app *App, kind domain.RoutineKind) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   fmt.Sprintf("Remove a %s window", kind),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := app.Commitments.ListRoutines(cmd.Context(), kind)
			if err != nil {
				return err
			}
			ids := make([]string, len(routines))
			for i, r := range routines {
				ids[i] = r.ID
			}
			id, err := resolveID(string(kind)+" window", args[0], ids)
			if err != nil {
				return err
			}
			if err := app.Commitments.RemoveRoutine(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", kind, formatter.TruncID(id))
			return nil
		},
	}
}

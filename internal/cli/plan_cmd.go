package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/importer"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/leten02/TimeGrid/internal/service"
	"github.com/spf13/cobra"
)

// planJSON is the --json shape of plan output.
type planJSON struct {
	*scheduler.Result
	Applied       int      `json:"applied"`
	Notifications []string `json:"notifications,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newPlanCmd(app *App) *cobra.Command {
	var week, now string
	var taskArgs []string
	var apply, asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Propose a placement of pending tasks into the week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req := service.PlanRequest{Apply: apply}
			var err error
			if req.WeekOf, err = weekOf(week, app); err != nil {
				return err
			}
			if req.Now, err = nowFlag(now, app); err != nil {
				return err
			}
			for _, a := range taskArgs {
				id, err := resolveTaskID(ctx, app, a)
				if err != nil {
					return err
				}
				req.TaskIDs = append(req.TaskIDs, id)
			}

			resp, err := app.Plan.Plan(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, planJSON{Result: resp.Result, Applied: resp.Applied})
			}

			titles, err := taskTitles(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatPlan(resp.Result, titles))
			fmt.Fprintln(out)
			switch {
			case apply:
				fmt.Fprintf(out, "Saved %d blocks to the calendar.\n", resp.Applied)
			case len(resp.Result.Proposed) > 0:
				fmt.Fprintln(out, formatter.Dim("Run again with --apply to save these blocks."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date in the week to plan (YYYY-MM-DD); defaults to this week")
	cmd.Flags().StringVar(&now, "now", "", "Plan as if it were this instant (RFC3339 or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringSliceVar(&taskArgs, "task", nil, "Only plan these task IDs (repeatable)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Save the proposed placements as calendar blocks")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func newRescheduleCmd(app *App) *cobra.Command {
	var week, now string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reschedule",
		Short: "Move the unfinished part of overdue tasks into free time from now on",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.RescheduleRequest{}
			var err error
			if req.WeekOf, err = weekOf(week, app); err != nil {
				return err
			}
			if req.Now, err = nowFlag(now, app); err != nil {
				return err
			}

			resp, err := app.Plan.Reschedule(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, planJSON{
					Result:        resp.Result,
					Applied:       len(resp.Result.Proposed),
					Notifications: resp.Notifications,
				})
			}
			fmt.Fprint(out, formatter.FormatNotifications(resp.Notifications))
			if n := resp.Result.UnscheduledTasks(); n > 0 {
				fmt.Fprintln(out, formatter.StyleRed.Render(formatter.UnscheduledSummary(n)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date in the week (YYYY-MM-DD); defaults to this week")
	cmd.Flags().StringVar(&now, "now", "", "Reschedule as if it were this instant (RFC3339 or YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func newSolveCmd(app *App) *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Schedule a self-contained JSON request without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.LoadRequestFile(input)
			if err != nil {
				return err
			}
			if errs := importer.ValidateRequestFile(f); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s %v\n", formatter.StyleRed.Render("✗"), e)
				}
				return fmt.Errorf("%s: %d validation errors", input, len(errs))
			}
			req, err := importer.Convert(f)
			if err != nil {
				return err
			}

			res, err := app.Engine.Schedule(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}
			titles := make(map[string]string, len(f.Tasks))
			for _, t := range f.Tasks {
				titles[t.ID] = t.Title
			}
			fmt.Fprint(out, formatter.FormatPlan(res, titles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the request JSON file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func taskTitles(cmd *cobra.Command, app *App) (map[string]string, error) {
	tasks, err := app.Tasks.List(cmd.Context(), false)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	return titles, nil
}

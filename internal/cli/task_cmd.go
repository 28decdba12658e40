package cli

import (
	"context"
	"fmt"

	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/spf13/cobra"
)

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID("task", input, ids)
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		title, deadline, priority, focus, prefer, description, category string
		minutes, importance                                             int
		noSplit                                                         bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := app.location()

			var t *domain.Task
			if title == "" {
				if !app.interactive() {
					return fmt.Errorf("--title is required")
				}
				values := defaultTaskFormValues(app.now())
				if err := newTaskForm(&values, loc).Run(); err != nil {
					return err
				}
				var err error
				if t, err = values.toTask(loc); err != nil {
					return err
				}
			} else {
				if deadline == "" {
					return fmt.Errorf("--deadline is required")
				}
				d, err := parseDeadline(deadline, loc)
				if err != nil {
					return err
				}
				t = &domain.Task{
					Title:            title,
					Description:      description,
					Category:         category,
					EstimatedMinutes: minutes,
					Deadline:         d,
					Splittable:       !noSplit,
				}
				if t.FocusNeed, err = domain.ParseFocusNeed(focus); err != nil {
					return err
				}
				if t.PreferredTime, err = domain.ParsePreferredTime(prefer); err != nil {
					return err
				}
				switch {
				case cmd.Flags().Changed("importance"):
					t.Importance = importance
				case priority != "":
					if t.Importance, err = domain.ImportanceFromPriority(domain.Priority(priority)); err != nil {
						return err
					}
				}
			}

			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s %s (%s, due %s)\n",
				formatter.TruncID(t.ID), t.Title, formatter.FormatMinutes(t.EstimatedMinutes),
				t.Deadline.In(loc).Format("Mon 2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (omit to use the interactive form)")
	cmd.Flags().IntVar(&minutes, "minutes", 60, "Estimated minutes")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339)")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance 1-5")
	enumFlag(cmd.Flags(), &priority, "priority", "", "Priority tag instead of importance", "high", "medium", "low")
	enumFlag(cmd.Flags(), &focus, "focus", "medium", "Focus needed", "high", "medium", "low")
	enumFlag(cmd.Flags(), &prefer, "prefer", "any", "Preferred time", "morning", "afternoon", "evening", "any")
	cmd.Flags().BoolVar(&noSplit, "no-split", false, "Schedule the task in one sitting")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.MarkFlagsMutuallyExclusive("importance", "priority")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			loc := app.location()
			for _, t := range tasks {
				t.Deadline = t.Deadline.In(loc)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			t.Deadline = t.Deadline.In(app.location())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(t, app.now()))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkDone(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked done\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a task; its calendar blocks are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

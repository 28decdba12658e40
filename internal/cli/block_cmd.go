package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/spf13/cobra"
)

// farFuture bounds open-ended listings.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// weekWindow returns the configured week containing the --week flag value.
func weekWindow(ctx context.Context, app *App, flag string) (time.Time, time.Time, error) {
	at, err := weekOf(flag, app)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	settings, err := loadSettings(ctx, app)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, end := domain.WeekBounds(at, settings.WeekStartDay)
	return start, end, nil
}

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage concrete calendar blocks",
	}

	cmd.AddCommand(
		newBlockAddCmd(app),
		newBlockListCmd(app),
		newBlockRemoveCmd(app),
	)

	return cmd
}

func newBlockAddCmd(app *App) *cobra.Command {
	var title, start, end, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a one-off calendar block",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := app.location()
			s, err := parseInstant(start, loc)
			if err != nil {
				return err
			}
			e, err := parseInstant(end, loc)
			if err != nil {
				return err
			}

			b := &domain.ScheduleBlock{Title: title, Start: s, End: e, Note: note}
			if err := app.Commitments.AddBlock(cmd.Context(), b); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added block %s %s %s\n",
				formatter.TruncID(b.ID), b.Title, formatter.FormatSpan(s, e))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Block title")
	cmd.Flags().StringVar(&start, "start", "", "Start (RFC3339 or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End (RFC3339 or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBlockListCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blocks in a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := weekWindow(cmd.Context(), app, week)
			if err != nil {
				return err
			}
			blocks, err := app.Commitments.ListBlocks(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			loc := app.location()
			for _, b := range blocks {
				b.Start, b.End = b.Start.In(loc), b.End.In(loc)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBlockList(blocks))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date in the week (YYYY-MM-DD); defaults to this week")

	return cmd
}

func newBlockRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a calendar block",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := app.Commitments.ListBlocks(cmd.Context(), time.Time{}, farFuture)
			if err != nil {
				return err
			}
			ids := make([]string, len(blocks))
			for i, b := range blocks {
				ids[i] = b.ID
			}
			id, err := resolveID("block", args[0], ids)
			if err != nil {
				return err
			}
			if err := app.Commitments.RemoveBlock(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed block %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newUnavailableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unavailable",
		Short: "Manage one-off unavailable time on a date",
	}

	cmd.AddCommand(
		newUnavailableAddCmd(app),
		newUnavailableListCmd(app),
		newUnavailableRemoveCmd(app),
	)

	return cmd
}

func newUnavailableAddCmd(app *App) *cobra.Command {
	var date, start, end, reason string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Mark part of a date as unavailable",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date, app.location())
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

			r := &domain.BlockedRange{
				Date:        d,
				StartMinute: startTime.Minutes(),
				EndMinute:   endTime.Minutes(),
				Reason:      reason,
			}
			if err := app.Commitments.AddBlockedRange(cmd.Context(), r); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s-%s unavailable %s\n",
				d.Format("Mon 2006-01-02"), startTime, endTime, formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "00:00", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "24:00", "End time HH:MM")
	cmd.Flags().StringVar(&reason, "reason", "", "Optional reason")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newUnavailableListCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unavailable ranges from today, or within one week",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			to := farFuture
			if week != "" {
				start, end, err := weekWindow(cmd.Context(), app, week)
				if err != nil {
					return err
				}
				from, to = start, end.AddDate(0, 0, -1)
			}
			ranges, err := app.Commitments.ListBlockedRanges(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBlockedRangeList(ranges))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date in the week (YYYY-MM-DD)")

	return cmd
}

func newUnavailableRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove an unavailable range",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := app.Commitments.ListBlockedRanges(cmd.Context(), time.Time{}, farFuture)
			if err != nil {
				return err
			}
			ids := make([]string, len(ranges))
			for i, r := range ranges {
				ids[i] = r.ID
			}
			id, err := resolveID("unavailable range", args[0], ids)
			if err != nil {
				return err
			}
			if err := app.Commitments.RemoveBlockedRange(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed unavailable range %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

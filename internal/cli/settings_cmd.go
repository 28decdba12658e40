package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/config"
	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/keyring"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planner settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the week start and daily grid",
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := app.Settings.Get(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
				return nil
			},
		},
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var gridStart, gridEnd int
	var weekStart string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; unspecified fields keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("grid-start") {
				s.GridStartHour = gridStart
			}
			if cmd.Flags().Changed("grid-end") {
				s.GridEndHour = gridEnd
			}
			if weekStart != "" {
				if s.WeekStartDay, err = domain.ParseWeekStartDay(weekStart); err != nil {
					return err
				}
			}
			if err := app.Settings.Update(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.Flags().IntVar(&gridStart, "grid-start", 0, "First schedulable hour (0-23)")
	cmd.Flags().IntVar(&gridEnd, "grid-end", 0, "Hour the schedulable day ends (1-24)")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week (sunday or monday)")

	return cmd
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := app.Config.TOML()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("# "+app.ConfigPath))
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		newConfigInitCmd(app),
	)

	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", app.ConfigPath)
			}
			if err := config.Default().SaveTo(app.ConfigPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newDBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the postgres connection string in the OS keyring",
	}

	cmd.AddCommand(newDBSetDSNCmd(app), newDBClearDSNCmd())

	return cmd
}

func newDBSetDSNCmd(app *App) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:   "set-dsn DSN",
		Short: "Store a postgres connection string in the OS keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := keyring.SetDSN(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stored connection string in the OS keyring.")

			if !use {
				return nil
			}
			app.Config.Storage.Driver = db.DriverPostgres
			app.Config.Storage.UseKeyring = true
			if err := app.Config.SaveTo(app.ConfigPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched storage to postgres in %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&use, "use", false, "Also switch the config to postgres with keyring lookup")

	return cmd
}

func newDBClearDSNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-dsn",
		Short: "Remove the stored connection string",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := keyring.DeleteDSN()
			if errors.Is(err, keyring.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No connection string stored.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed connection string from the OS keyring.")
			return nil
		},
	}
}

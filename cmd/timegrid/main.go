package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leten02/TimeGrid/internal/cli"
	"github.com/leten02/TimeGrid/internal/config"
	"github.com/leten02/TimeGrid/internal/db"
	"github.com/leten02/TimeGrid/internal/keyring"
	"github.com/leten02/TimeGrid/internal/logger"
	"github.com/leten02/TimeGrid/internal/repository"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/leten02/TimeGrid/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("TIMEGRID_CONFIG")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	log, err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir, Stderr: os.Stderr})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	target, err := storageTarget(cfg)
	if err != nil {
		return err
	}
	handle, err := db.Open(cfg.Storage.Driver, target)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer handle.Close()
	logger.Debug("database opened", "driver", cfg.Storage.Driver)

	// Wire repositories
	conn := handle.Conn()
	taskRepo := repository.NewSQLTaskRepo(conn)
	blockRepo := repository.NewSQLBlockRepo(conn)
	routineRepo := repository.NewSQLRoutineRepo(conn)
	rangeRepo := repository.NewSQLBlockedRangeRepo(conn)
	settingsRepo := repository.NewSQLSettingsRepo(conn)

	// Wire services
	observer := service.NewLogUseCaseObserver(log)
	engine := scheduler.NewEngine(cfg.EngineConfig())
	settingsSvc := service.NewSettingsService(settingsRepo, cfg.DefaultSettings())

	app := &cli.App{
		Tasks:       service.NewTaskService(taskRepo),
		Commitments: service.NewCommitmentService(routineRepo, blockRepo, rangeRepo),
		Settings:    settingsSvc,
		Plan: service.NewPlanService(taskRepo, blockRepo, routineRepo, rangeRepo, settingsSvc, engine,
			handle.UnitOfWork(), observer),
		Engine:     engine,
		Config:     cfg,
		ConfigPath: configPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// storageTarget returns the sqlite path or postgres connection string.
func storageTarget(cfg *config.Config) (string, error) {
	if cfg.Storage.Driver != db.DriverPostgres {
		return cfg.Storage.DBPath, nil
	}
	if cfg.Storage.DSN != "" {
		return cfg.Storage.DSN, nil
	}
	dsn, err := keyring.GetDSN()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("no postgres connection string stored; run 'timegrid db set-dsn DSN'")
	}
	return dsn, err
}

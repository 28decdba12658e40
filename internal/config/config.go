// Package config loads TimeGrid settings from a TOML file, defaults and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/scheduler"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Engine  EngineConfig  `toml:"engine"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// GridConfig holds the planning grid defaults used until settings are saved.
type GridConfig struct {
	StartHour    int    `toml:"start_hour"`
	EndHour      int    `toml:"end_hour"`
	SlotMinutes  int    `toml:"slot_minutes"`
	WeekStartDay string `toml:"week_start_day"` // "sunday" or "monday"
}

// EngineConfig holds the scoring and chunking constants.
type EngineConfig struct {
	HorizonDays         int                     `toml:"horizon_days"`
	DeadlineWeight      float64                 `toml:"deadline_weight"`
	DefaultChunkMinutes int                     `toml:"default_chunk_minutes"`
	FocusChunks         FocusChunks             `toml:"focus_chunks"`
	Windows             map[string]WindowConfig `toml:"windows"`
}

// FocusChunks maps focus levels to sitting lengths in minutes.
type FocusChunks struct {
	High   int `toml:"high"`
	Medium int `toml:"medium"`
	Low    int `toml:"low"`
}

// WindowConfig is a preferred-time window in whole hours.
type WindowConfig struct {
	StartHour int `toml:"start_hour"`
	EndHour   int `toml:"end_hour"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	Driver     string `toml:"driver"` // "sqlite" or "postgres"
	DBPath     string `toml:"db_path"`
	DSN        string `toml:"dsn,omitempty"`
	UseKeyring bool   `toml:"use_keyring"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Dir   string `toml:"dir"`
	Debug bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			StartHour:    scheduler.DefaultStartHour,
			EndHour:      scheduler.DefaultEndHour,
			SlotMinutes:  15,
			WeekStartDay: "sunday",
		},
		Engine: EngineConfig{
			HorizonDays:         14,
			DeadlineWeight:      1.3,
			DefaultChunkMinutes: 60,
			FocusChunks:         FocusChunks{High: 90, Medium: 60, Low: 30},
			Windows: map[string]WindowConfig{
				"morning":   {StartHour: 9, EndHour: 12},
				"afternoon": {StartHour: 13, EndHour: 17},
				"evening":   {StartHour: 18, EndHour: 21},
			},
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DBPath: filepath.Join(dataDir(), "timegrid.db"),
		},
		Log: LogConfig{
			Dir: filepath.Join(dataDir(), "logs"),
		},
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timegrid"
	}
	return filepath.Join(home, ".timegrid")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timegrid", "config.toml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom starts with defaults, overlays the file at path if it exists,
// then applies environment overrides and validates the result.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies TIMEGRID_* variables; they take precedence over
// the file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TIMEGRID_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TIMEGRID_DB_DRIVER"); v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("TIMEGRID_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("TIMEGRID_GRID_START"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMEGRID_GRID_START: %w", err)
		}
		cfg.Grid.StartHour = n
	}
	if v := os.Getenv("TIMEGRID_GRID_END"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMEGRID_GRID_END: %w", err)
		}
		cfg.Grid.EndHour = n
	}
	if v := os.Getenv("TIMEGRID_WEEK_START"); v != "" {
		cfg.Grid.WeekStartDay = v
	}
	if v := os.Getenv("TIMEGRID_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("TIMEGRID_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TIMEGRID_DEBUG: %w", err)
		}
		cfg.Log.Debug = b
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Grid.StartHour < 0 || c.Grid.EndHour > 24 || c.Grid.StartHour >= c.Grid.EndHour {
		return fmt.Errorf("grid hours must satisfy 0 <= start_hour < end_hour <= 24, got %d-%d",
			c.Grid.StartHour, c.Grid.EndHour)
	}
	if c.Grid.SlotMinutes <= 0 || 60%c.Grid.SlotMinutes != 0 {
		return fmt.Errorf("slot_minutes must divide 60, got %d", c.Grid.SlotMinutes)
	}
	if _, err := domain.ParseWeekStartDay(c.Grid.WeekStartDay); err != nil {
		return err
	}

	if c.Engine.HorizonDays <= 0 {
		return errors.New("horizon_days must be positive")
	}
	if c.Engine.DeadlineWeight < 0 {
		return errors.New("deadline_weight must not be negative")
	}
	if c.Engine.DefaultChunkMinutes <= 0 {
		return errors.New("default_chunk_minutes must be positive")
	}
	fc := c.Engine.FocusChunks
	if fc.High <= 0 || fc.Medium <= 0 || fc.Low <= 0 {
		return errors.New("focus_chunks must all be positive")
	}
	for name, w := range c.Engine.Windows {
		if !domain.ValidPreferredTimes[name] || name == string(domain.PreferAny) {
			return fmt.Errorf("unknown preferred window %q", name)
		}
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return fmt.Errorf("window %q must satisfy 0 <= start_hour < end_hour <= 24", name)
		}
	}

	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return errors.New("db_path must be set")
		}
	case "postgres":
		if c.Storage.DSN == "" && !c.Storage.UseKeyring {
			return errors.New("postgres driver requires dsn or use_keyring")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// WeekStart returns the configured first day of the week.
func (c *Config) WeekStart() time.Weekday {
	d, err := domain.ParseWeekStartDay(c.Grid.WeekStartDay)
	if err != nil {
		return time.Sunday
	}
	return d
}

// DefaultSettings returns the planner settings used before any are saved.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		WeekStartDay:  c.WeekStart(),
		GridStartHour: c.Grid.StartHour,
		GridEndHour:   c.Grid.EndHour,
	}
}

// EngineConfig converts the file settings into engine constants.
func (c *Config) EngineConfig() scheduler.Config {
	cfg := scheduler.DefaultConfig()
	cfg.SlotMinutes = c.Grid.SlotMinutes
	cfg.HorizonDays = c.Engine.HorizonDays
	cfg.DeadlineWeight = c.Engine.DeadlineWeight
	cfg.DefaultChunkMinutes = c.Engine.DefaultChunkMinutes
	cfg.FocusChunkMinutes = map[domain.FocusNeed]int{
		domain.FocusHigh:   c.Engine.FocusChunks.High,
		domain.FocusMedium: c.Engine.FocusChunks.Medium,
		domain.FocusLow:    c.Engine.FocusChunks.Low,
	}
	for name, w := range c.Engine.Windows {
		cfg.PreferredWindows[domain.PreferredTime(name)] = scheduler.Window{StartHour: w.StartHour, EndHour: w.EndHour}
	}
	return cfg
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := c.TOML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// TOML encodes the configuration in the on-disk format.
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

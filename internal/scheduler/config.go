package scheduler

import (
	"errors"
	"fmt"

	"github.com/leten02/TimeGrid/internal/domain"
)

// Window is a half-open range of whole hours, [StartHour, EndHour).
type Window struct {
	StartHour int
	EndHour   int
}

// Config holds the tunable constants of the placement engine.
type Config struct {
	SlotMinutes         int
	DefaultChunkMinutes int
	FocusChunkMinutes   map[domain.FocusNeed]int
	PreferredWindows    map[domain.PreferredTime]Window
	HorizonDays         int
	DeadlineWeight      float64
}

func DefaultConfig() Config {
	return Config{
		SlotMinutes:         15,
		DefaultChunkMinutes: 60,
		FocusChunkMinutes: map[domain.FocusNeed]int{
			domain.FocusHigh:   90,
			domain.FocusMedium: 60,
			domain.FocusLow:    30,
		},
		PreferredWindows: map[domain.PreferredTime]Window{
			domain.PreferMorning:   {StartHour: 9, EndHour: 12},
			domain.PreferAfternoon: {StartHour: 13, EndHour: 17},
			domain.PreferEvening:   {StartHour: 18, EndHour: 21},
		},
		HorizonDays:    14,
		DeadlineWeight: 1.3,
	}
}

func (c Config) Validate() error {
	if c.SlotMinutes <= 0 {
		return errors.New("slot minutes must be positive")
	}
	if c.DefaultChunkMinutes <= 0 {
		return errors.New("default chunk minutes must be positive")
	}
	if c.HorizonDays <= 0 {
		return errors.New("horizon days must be positive")
	}
	for f, m := range c.FocusChunkMinutes {
		if m <= 0 {
			return fmt.Errorf("chunk minutes for focus %q must be positive", f)
		}
	}
	for p, w := range c.PreferredWindows {
		if w.EndHour <= w.StartHour {
			return fmt.Errorf("preferred window %q: end hour must be after start hour", p)
		}
	}
	return nil
}

// ChunkMinutes returns the sitting length for a focus need, falling back to
// DefaultChunkMinutes for unknown values.
func (c Config) ChunkMinutes(f domain.FocusNeed) int {
	if m, ok := c.FocusChunkMinutes[f]; ok {
		return m
	}
	return c.DefaultChunkMinutes
}

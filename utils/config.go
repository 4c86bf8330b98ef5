package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	TickInterval   time.Duration `json:"tick_interval"`
	StartRunning   bool          `json:"start_running"`
	MaxGenerations int           `json:"max_generations"`
	GridVisible    bool          `json:"grid_visible"`
	CellScale      int           `json:"cell_scale"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          6,
		Height:         6,
		TickInterval:   time.Second,
		StartRunning:   false,
		MaxGenerations: 0, // 0 runs until stopped
		GridVisible:    true,
		CellScale:      48,
		ClearScreen:    true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the engine or hosts cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 1:
		return errors.Wrapf(ErrInvalidConfig, "width must be positive, got %d", c.Width)
	case c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "height must be positive, got %d", c.Height)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be positive, got %v", c.TickInterval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.CellScale < 1:
		return errors.Wrapf(ErrInvalidConfig, "cell_scale must be positive, got %d", c.CellScale)
	}
	return nil
}

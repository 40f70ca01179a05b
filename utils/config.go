package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Rows              int           `json:"rows"`
	Cols              int           `json:"cols"`
	Generations       int           `json:"generations"`
	FrameRate         time.Duration `json:"frame_rate"`
	Seed              uint64        `json:"seed"` // 0 picks a time-based seed
	Interactive       bool          `json:"interactive"`
	StagnationHistory int           `json:"stagnation_history"`
	LogLevel          string        `json:"log_level"`
	LogFormat         string        `json:"log_format"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:              18,
		Cols:              80,
		Generations:       10,
		FrameRate:         200 * time.Millisecond,
		Interactive:       true,
		StagnationHistory: 5,
		LogLevel:          "info",
		LogFormat:         "text",
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

// Validate checks the values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] rows must be positive, got %d", c.Rows)
	case c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cols must be positive, got %d", c.Cols)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative, got %d", c.Generations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}

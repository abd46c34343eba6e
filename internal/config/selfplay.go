package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for the random self-play harness.
type SelfPlayConfig struct {
	Games    int   `yaml:"games"`
	Workers  int   `yaml:"workers"`
	MaxPlies int   `yaml:"max_plies"` // 0 = play to the end
	Seed     int64 `yaml:"seed"`
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:    100,
		Workers:  runtime.NumCPU(),
		MaxPlies: 500,
		Seed:     1,
	}
}

// Validate checks that counts are in range.
func (c *SelfPlayConfig) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d: %w", c.Games, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("max plies must not be negative, got %d: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

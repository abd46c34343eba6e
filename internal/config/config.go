// Package config provides configuration for the chessrules tools.
package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// 0=errors only, 1=info, 2=debug, 3=trace
	Verbosity int `yaml:"verbosity"`

	Rules    RulesConfig    `yaml:"rules"`
	Display  DisplayConfig  `yaml:"display"`
	SelfPlay SelfPlayConfig `yaml:"selfplay"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Rules:     *NewRulesConfig(),
		Display:   *NewDisplayConfig(),
		SelfPlay:  *NewSelfPlayConfig(),
	}
}

// Validate checks every section. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 3 {
		return fmt.Errorf("verbosity %d not in 0..3: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return errors.Wrap(err, "rules")
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return errors.Wrap(err, "selfplay")
	}
	return nil
}

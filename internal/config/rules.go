package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// RulesConfig holds settings that change how games are adjudicated.
type RulesConfig struct {
	// DefaultPromotion is the piece letter (q, r, b or n) used when a
	// move typed without a promotion piece reaches the last rank.
	DefaultPromotion string `yaml:"default_promotion"`

	// Draw rules applied after every move.
	InsufficientMaterial bool `yaml:"insufficient_material"`
	FiftyMove            bool `yaml:"fifty_move"`
	Threefold            bool `yaml:"threefold"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		DefaultPromotion:     "q",
		InsufficientMaterial: true,
		FiftyMove:            true,
		Threefold:            true,
	}
}

// Validate checks the promotion letter.
func (c *RulesConfig) Validate() error {
	if len(c.DefaultPromotion) != 1 || !chess.IsPromotionKind(c.PromotionKind()) {
		return fmt.Errorf("default promotion %q is not one of q, r, b, n: %w", c.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}

// PromotionKind returns the default promotion as a piece kind, or NoKind
// if the letter is not valid.
func (c *RulesConfig) PromotionKind() chess.Kind {
	if len(c.DefaultPromotion) != 1 {
		return chess.NoKind
	}
	return chess.KindFromLetter(c.DefaultPromotion[0])
}

// DrawRules converts the toggles into game options.
func (c *RulesConfig) DrawRules() game.DrawRules {
	return game.DrawRules{
		InsufficientMaterial: c.InsufficientMaterial,
		FiftyMove:            c.FiftyMove,
		Threefold:            c.Threefold,
	}
}

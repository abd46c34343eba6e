package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DrawRules selects which automatic draw rules end a game. Checkmate and
// stalemate always apply.
type DrawRules struct {
	InsufficientMaterial bool
	FiftyMove            bool
	Threefold            bool
}

// AllDrawRules enables every draw rule.
var AllDrawRules = DrawRules{InsufficientMaterial: true, FiftyMove: true, Threefold: true}

type options struct {
	fen    string
	rules  DrawRules
	logger *logrus.Entry
}

func defaultOptions() options {
	return options{
		fen:    engine.InitialFEN,
		rules:  AllDrawRules,
		logger: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Option configures a Game.
type Option func(*options)

// WithFEN starts the game from the given position instead of the standard
// one. New fails if the FEN is invalid.
func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
	}
}

// WithDrawRules replaces the enabled draw rules.
func WithDrawRules(rules DrawRules) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// WithLogger sets the entry used for move logging.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that was rejected by the rules engine.
	ErrInvalidMove = errors.New("invalid move")

	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown session identifier.
	ErrSessionNotFound = errors.New("session not found")
)

// Reason explains why a move was rejected.
type Reason int

const (
	ReasonUnknown Reason = iota
	NoPieceAtSource
	NotYourTurn
	IllegalDestination
	BlockedPath
	LeavesKingInCheck
	CastlingNotAllowed
	CastlingThroughCheck
	MissingPromotion
	IllegalPromotion
	GameOver
)

// String returns a short human readable explanation of the reason.
func (r Reason) String() string {
	switch r {
	case NoPieceAtSource:
		return "no piece on source square"
	case NotYourTurn:
		return "not your turn"
	case IllegalDestination:
		return "piece cannot move there"
	case BlockedPath:
		return "blocked path"
	case LeavesKingInCheck:
		return "leaves king in check"
	case CastlingNotAllowed:
		return "castling not allowed"
	case CastlingThroughCheck:
		return "king passes through or lands on an attacked square"
	case MissingPromotion:
		return "promotion piece required"
	case IllegalPromotion:
		return "illegal promotion piece"
	case GameOver:
		return "game is over"
	default:
		return "unknown reason"
	}
}

// MoveError wraps a rejected move with the reason and ply context. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error, normally ErrInvalidMove
	Reason Reason // Why the move was rejected
	Move   string // The move text as submitted (if known)
	Ply    int    // Ply at which the move was submitted (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	parts = append(parts, e.Reason.String())

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError creates an ErrInvalidMove with the given reason.
func NewMoveError(reason Reason, move string) *MoveError {
	return &MoveError{Err: ErrInvalidMove, Reason: reason, Move: move}
}

// ReasonOf extracts the rejection reason from err, or ReasonUnknown.
func ReasonOf(err error) Reason {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason
	}
	return ReasonUnknown
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

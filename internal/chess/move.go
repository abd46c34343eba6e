package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	Normal MoveClass = iota
	Capture
	EnPassant
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	names := []string{"Normal", "Capture", "EnPassant", "KingsideCastle", "QueensideCastle", "Promotion"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move represents a single chess move.
//
// A Move built by a caller is a proposal: only From, To and Promotion are
// significant. The engine resolves proposals against the legal move set and
// fills in Class, Piece and Captured; resolved moves are what history holds.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Class of move (normal, capture, castle, etc.).
	Class MoveClass

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the passed pawn, which does not stand on To.
	Captured Piece
}

// NewMove creates a move proposal.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promotion proposal.
func NewPromotion(from, to Square, kind Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.Class == Capture || m.Class == EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion || m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// SameAs reports whether m and other name the same from/to/promotion triple.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// String returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
// Castling is written as the king's two-square move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// ParseMove parses UCI long algebraic text ("e2e4", "e7e8q") into a
// proposal.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: expected 4 or 5 characters: %w", s, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	m := NewMove(from, to)
	if len(s) == 5 {
		kind := KindFromLetter(s[4])
		if !IsPromotionKind(kind) {
			return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Reason: errors.IllegalPromotion, Move: s}
		}
		m.Promotion = kind
	}
	return m, nil
}

package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square addresses one of the 64 board squares as rank*8 + file, so a1 is 0
// and h8 is 63. A Square value is always in range: constructors validate
// their input.
type Square int8

// Named corner and castling squares.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare returns the square at file (0-7) and rank (0-7). Out-of-range
// coordinates are a programming error and panic with ErrOutOfBounds.
func NewSquare(file, rank int) Square {
	if !inBounds(file, rank) {
		panic(fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrOutOfBounds))
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare converts algebraic text such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	if !inBounds(file, rank) {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	return Square(rank*BoardSize + file), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file index 0-7 (a-h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index 0-7 (1-8).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s addresses a board square.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// Offset returns the square df files and dr ranks away, and false when that
// would leave the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	file, rank := s.File()+df, s.Rank()+dr
	if !inBounds(file, rank) {
		return 0, false
	}
	return Square(rank*BoardSize + file), true
}

// IsLight reports whether s is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Square(%d)", int8(s))
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// mustValid enforces the Square contract on accessor input.
func (s Square) mustValid() {
	if !s.Valid() {
		panic(fmt.Errorf("square %d: %w", int8(s), errors.ErrOutOfBounds))
	}
}

func inBounds(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

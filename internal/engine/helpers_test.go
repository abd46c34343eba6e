package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN parses fen or fails the test.
func mustFEN(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return pos
}

// play applies UCI moves to pos, failing the test on the first rejection.
func play(t testing.TB, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if _, err := ApplyMove(pos, m); err != nil {
			t.Fatalf("ApplyMove(%s) in %s: %v", text, PositionToFEN(pos), err)
		}
	}
}

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

func move(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

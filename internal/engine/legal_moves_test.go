package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		from  string
		want  []string
	}{
		{
			name: "opponent piece has no moves",
			fen:  testutil.StartFEN,
			from: "e7",
			want: []string{},
		},
		{
			name: "empty square",
			fen:  testutil.StartFEN,
			from: "e4",
			want: []string{},
		},
		{
			name: "pinned knight cannot move",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"},
		},
		{
			name: "king cannot step into check",
			fen:  "4k3/8/8/8/8/8/8/r3K2R w K - 0 1",
			from: "e1",
			want: []string{"e1d2", "e1e2", "e1f2"},
		},
		{
			name: "en passant capture available immediately",
			fen:  testutil.EnPassantFEN,
			from: "e5",
			want: []string{"e5d6", "e5e6"},
		},
		{
			name:  "en passant expires after one half-move",
			fen:   testutil.StartFEN,
			moves: []string{"e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "g8f6"},
			from:  "e5",
			want:  []string{"e5e6", "e5f6"},
		},
		{
			name: "en passant exposing the king on the rank",
			fen:  "8/8/8/K2pP2r/8/8/8/7k w - d6 0 2",
			from: "e5",
			want: []string{"e5e6"},
		},
		{
			name: "kingside castling through an attacked square",
			fen:  "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			from: "e1",
			want: []string{"e1c1", "e1d1", "e1f2"},
		},
		{
			name: "castling into check",
			fen:  "4k3/8/8/8/8/8/7b/R3K2R w KQ - 0 1",
			from: "e1",
			want: []string{"e1c1", "e1d1", "e1d2", "e1e2", "e1f1", "e1f2"},
		},
		{
			name: "no castling out of check",
			fen:  "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: []string{"e1d1", "e1d2", "e1f1", "e1f2"},
		},
		{
			name: "queenside castling ignores attacks on b1",
			fen:  "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			from: "e1",
			want: []string{"e1c1", "e1d1", "e1d2", "e1e2", "e1f1", "e1f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			play(t, &pos, tt.moves...)
			got := LegalMoves(&pos, sq(tt.from))
			testutil.AssertSameElements(t, testutil.UCI(got), tt.want)
		})
	}
}

func TestLegalMovesNeverNil(t *testing.T) {
	pos := chess.NewInitialPosition()
	if got := LegalMoves(&pos, sq("e8")); got == nil {
		t.Error("LegalMoves for an opponent square returned nil; want empty slice")
	}
}

func TestCastlingRightsLostAfterRookReturns(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, &pos, "h1h2", "a8a7", "h2h1", "a7a8")

	got := strings.Join(testutil.UCI(LegalMoves(&pos, sq("e1"))), " ")
	testutil.AssertNotContains(t, got, "e1g1", "kingside right should be gone")
	testutil.AssertContains(t, got, "e1c1", "queenside right should remain")
}

func TestCastlingRightsLostAfterKingReturns(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, &pos, "e1f1", "e8f8", "f1e1", "f8e8")

	if pos.Castling != chess.NoCastling {
		t.Errorf("Castling = %b; want none", pos.Castling)
	}
	for _, m := range LegalMoves(&pos, sq("e1")) {
		if m.IsCastle() {
			t.Errorf("castling move %v offered after king moved", m)
		}
	}
}

func TestAllLegalMovesInCheck(t *testing.T) {
	// Only blocking the back-rank check is legal.
	pos := mustFEN(t, "R5k1/5ppp/8/8/8/8/2r5/6K1 b - - 0 1")
	testutil.AssertEqual(t, testutil.UCI(AllLegalMoves(&pos)), []string{"c2c8"})
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", testutil.StartFEN, chess.White, true},
		{"initial black not to move", testutil.StartFEN, chess.Black, true},
		{"stalemated side", testutil.StalemateFEN, chess.Black, false},
		{"stalemating side", testutil.StalemateFEN, chess.White, true},
		{"checkmated side", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			if got := HasLegalMoves(&pos, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves(%s) = %v; want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsLegal(t *testing.T) {
	pos := chess.NewInitialPosition()
	if !IsLegal(&pos, move(t, "e2e4")) {
		t.Error("IsLegal(e2e4) = false")
	}
	if IsLegal(&pos, move(t, "e2e5")) {
		t.Error("IsLegal(e2e5) = true")
	}
}

func TestLegalMovesDoNotChangePosition(t *testing.T) {
	pos := mustFEN(t, testutil.KiwipeteFEN)
	before := pos
	AllLegalMoves(&pos)
	if pos != before {
		t.Error("AllLegalMoves modified the position")
	}
}

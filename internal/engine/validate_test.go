package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestValidateMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
		want errors.Reason
	}{
		{"empty source", testutil.StartFEN, chess.NewMove(sq("e3"), sq("e4")), errors.NoPieceAtSource},
		{"opponent piece", testutil.StartFEN, chess.NewMove(sq("e7"), sq("e5")), errors.NotYourTurn},
		{"pawn three squares", testutil.StartFEN, chess.NewMove(sq("e2"), sq("e5")), errors.IllegalDestination},
		{"knight onto own pawn", testutil.StartFEN, chess.NewMove(sq("b1"), sq("d2")), errors.IllegalDestination},
		{"rook through pawn", testutil.StartFEN, chess.NewMove(sq("a1"), sq("a3")), errors.BlockedPath},
		{"bishop through pawn", testutil.StartFEN, chess.NewMove(sq("f1"), sq("c4")), errors.BlockedPath},
		{"castling through pieces", testutil.StartFEN, chess.NewMove(sq("e1"), sq("g1")), errors.BlockedPath},
		{"promotion on a quiet move", testutil.StartFEN, chess.NewPromotion(sq("e2"), sq("e4"), chess.Queen), errors.IllegalPromotion},
		{"double step blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", chess.NewMove(sq("e2"), sq("e4")), errors.BlockedPath},
		{"single step blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", chess.NewMove(sq("e2"), sq("e3")), errors.IllegalDestination},
		{"promotion without choice", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", chess.NewMove(sq("a7"), sq("a8")), errors.MissingPromotion},
		{"promotion to king", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", chess.NewPromotion(sq("a7"), sq("a8"), chess.King), errors.IllegalPromotion},
		{"promotion to pawn", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", chess.NewPromotion(sq("a7"), sq("b8"), chess.Pawn), errors.IllegalPromotion},
		{"pinned knight", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", chess.NewMove(sq("e2"), sq("c3")), errors.LeavesKingInCheck},
		{"ignoring check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", chess.NewMove(sq("h1"), sq("h2")), errors.LeavesKingInCheck},
		{"king into check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", chess.NewMove(sq("e1"), sq("d1")), errors.LeavesKingInCheck},
		{"castling without rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", chess.NewMove(sq("e1"), sq("g1")), errors.CastlingNotAllowed},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", chess.NewMove(sq("e1"), sq("c1")), errors.CastlingNotAllowed},
		{"castling out of check", "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1", chess.NewMove(sq("e1"), sq("g1")), errors.CastlingNotAllowed},
		{"castling through check", "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", chess.NewMove(sq("e1"), sq("g1")), errors.CastlingThroughCheck},
		{"castling into check", "4k3/8/8/8/8/8/7b/R3K2R w KQ - 0 1", chess.NewMove(sq("e1"), sq("g1")), errors.LeavesKingInCheck},
		{"exposing en passant", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 2", chess.NewMove(sq("e5"), sq("d6")), errors.LeavesKingInCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			before := pos

			_, err := ValidateMove(&pos, tt.move)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
			if got := errors.ReasonOf(err); got != tt.want {
				t.Errorf("ReasonOf(ValidateMove(%v)) = %v; want %v", tt.move, got, tt.want)
			}

			if _, err := ApplyMove(&pos, tt.move); err == nil {
				t.Fatalf("ApplyMove(%v) succeeded", tt.move)
			}
			if pos != before {
				t.Error("rejected move changed the position")
			}
		})
	}
}

func TestValidateMoveOutOfBounds(t *testing.T) {
	pos := chess.NewInitialPosition()
	_, err := ValidateMove(&pos, chess.Move{From: sq("e2"), To: chess.Square(70)})
	testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds)
}

func TestValidateMoveResolves(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     chess.Move
		class    chess.MoveClass
		piece    chess.Piece
		captured chess.Piece
	}{
		{"quiet pawn", testutil.StartFEN, chess.NewMove(sq("e2"), sq("e4")), chess.Normal, chess.W(chess.Pawn), chess.NoPiece},
		{"knight", testutil.StartFEN, chess.NewMove(sq("g1"), sq("f3")), chess.Normal, chess.W(chess.Knight), chess.NoPiece},
		{"en passant", testutil.EnPassantFEN, chess.NewMove(sq("e5"), sq("d6")), chess.EnPassant, chess.W(chess.Pawn), chess.B(chess.Pawn)},
		{"capture promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", chess.NewPromotion(sq("a7"), sq("b8"), chess.Knight), chess.Promotion, chess.W(chess.Pawn), chess.B(chess.Knight)},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.NewMove(sq("e1"), sq("g1")), chess.KingsideCastle, chess.W(chess.King), chess.NoPiece},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.NewMove(sq("e8"), sq("c8")), chess.QueensideCastle, chess.B(chess.King), chess.NoPiece},
		{"rook capture", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.NewMove(sq("a1"), sq("a8")), chess.Capture, chess.W(chess.Rook), chess.B(chess.Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			got, err := ValidateMove(&pos, tt.move)
			testutil.AssertNoError(t, err)
			want := tt.move
			want.Class = tt.class
			want.Piece = tt.piece
			want.Captured = tt.captured
			testutil.AssertEqual(t, got, want)
		})
	}
}

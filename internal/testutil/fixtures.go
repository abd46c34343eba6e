package testutil

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FEN fixtures shared by the engine and game tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete exercises castling, pins, en passant and promotions.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN is perft position 3: rook and pawn play with discovered checks.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionFEN is perft position 4: promotions with and without capture.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// EnPassantFEN has a black pawn just pushed past a white pawn on e5.
	EnPassantFEN = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"

	// StalemateFEN is Black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// UCI returns the UCI text of each move.
func UCI(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SortedUCI returns the UCI text of the moves in lexical order.
func SortedUCI(moves []chess.Move) []string {
	out := UCI(moves)
	sort.Strings(out)
	return out
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of pos to the given
// depth. It is the standard way to verify a move generator.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *pos
		applyResolved(&child, m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// Divide runs Perft below each root move and returns the counts keyed by
// the move's UCI text.
func Divide(pos *chess.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, m := range AllLegalMoves(pos) {
		child := *pos
		applyResolved(&child, m)
		counts[m.String()] = Perft(&child, depth-1)
	}
	return counts
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// Classify computes the status of pos from the side to move's point of
// view. Draw rules other than stalemate are left to the caller, since they
// depend on game history.
func Classify(pos *chess.Position) chess.Status {
	colour := pos.ToMove
	inCheck := IsInCheck(&pos.Board, colour)
	hasMoves := HasLegalMoves(pos, colour)

	switch {
	case inCheck && hasMoves:
		return chess.CheckStatus(colour)
	case inCheck:
		return chess.CheckmateStatus(colour.Opposite())
	case !hasMoves:
		return chess.StalemateStatus()
	default:
		return chess.StatusInProgress
	}
}

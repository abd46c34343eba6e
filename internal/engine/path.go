package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPieceMove checks whether the shape of from->to matches how the piece
// moves, ignoring every other piece on the board.
func canPieceMove(piece chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		dir := chess.ColourOffset(piece.Colour)
		dr := to.Rank() - from.Rank()
		if colDiff == 0 {
			return dr == dir || (dr == 2*dir && from.Rank() == chess.PawnRank(piece.Colour))
		}
		return colDiff == 1 && dr == dir

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return colDiff == rankDiff

	case chess.Rook:
		return colDiff == 0 || rankDiff == 0

	case chess.Queen:
		return colDiff == rankDiff || colDiff == 0 || rankDiff == 0

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathBlocked reports whether a move of the right shape fails only
// because a piece stands between from and to.
func isPathBlocked(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	switch piece.Kind {
	case chess.Bishop, chess.Rook, chess.Queen, chess.Pawn:
		return !board.PathClear(from, to)
	default:
		return false
	}
}

// isCastlingAttempt reports whether a king move looks like castling: two
// files sideways from its home square.
func isCastlingAttempt(piece chess.Piece, from, to chess.Square) bool {
	if piece.Kind != chess.King || from != chess.KingHomeSquare(piece.Colour) {
		return false
	}
	return to.Rank() == from.Rank() && abs(to.File()-from.File()) == 2
}

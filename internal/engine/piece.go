package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(pos *chess.Position, m chess.Move) {
	colour := m.Piece.Colour
	captured := pos.Board.PieceAt(m.To)

	pos.Board.MovePiece(m.From, m.To)

	updateCastlingRights(pos, m.From)
	updateCastlingRights(pos, m.To)

	pos.ClearEnPassant()
	finishMove(pos, colour, !captured.IsEmpty())
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyPawnMove applies a pawn move.
func applyPawnMove(pos *chess.Position, m chess.Move) {
	colour := m.Piece.Colour
	board := &pos.Board

	// Handle en passant capture: the passed pawn stands beside the mover.
	if m.Class == chess.EnPassant {
		board.Clear(chess.NewSquare(m.To.File(), m.From.Rank()))
	}

	board.Clear(m.From)
	if m.Promotion != chess.NoKind {
		board.Set(m.To, chess.MakePiece(colour, m.Promotion))
	} else {
		board.Set(m.To, m.Piece)
	}

	// A promotion may capture a rook on its home square.
	updateCastlingRights(pos, m.To)

	// Set en passant square if double pawn push
	pos.ClearEnPassant()
	if abs(m.To.Rank()-m.From.Rank()) == 2 {
		pos.SetEnPassant(chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2))
	}

	finishMove(pos, colour, true)
}

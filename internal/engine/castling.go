package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyCastle applies a castling move: king two squares toward the rook,
// rook to the square the king crossed.
func applyCastle(pos *chess.Position, m chess.Move) {
	colour := m.Piece.Colour
	side := castlingSide(m)

	pos.Board.MovePiece(m.From, m.To)
	pos.Board.MovePiece(chess.CastlingRookSquare(colour, side), chess.CastlingRookTarget(colour, side))

	pos.Castling.ClearColour(colour)
	pos.ClearEnPassant()
	finishMove(pos, colour, false)
}

// updateCastlingRights removes rights tied to sq. It is called with both
// squares of every move: a king leaving its home square loses both rights,
// and a rook leaving or being captured on its home square loses one.
func updateCastlingRights(pos *chess.Position, sq chess.Square) {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if sq == chess.KingHomeSquare(colour) {
			pos.Castling.ClearColour(colour)
			continue
		}
		for _, side := range [2]chess.CastlingSide{chess.Kingside, chess.Queenside} {
			if sq == chess.CastlingRookSquare(colour, side) {
				pos.Castling.Clear(colour, side)
			}
		}
	}
}

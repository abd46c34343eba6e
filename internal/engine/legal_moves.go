package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the legal moves of the piece on from. The result is
// empty unless that piece belongs to the side to move. Order follows
// generation order and carries no meaning.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.PieceAt(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return []chess.Move{}
	}

	candidates := PseudoLegalMoves(pos, from)
	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		if tryMove(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of the side to move, by ascending
// source square.
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for _, from := range pos.Board.Occupied(pos.ToMove) {
		moves = append(moves, LegalMoves(pos, from)...)
	}
	return moves
}

// IsLegal reports whether the proposal m is a legal move in pos.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	_, err := ValidateMove(pos, m)
	return err == nil
}

// HasLegalMoves returns true if the given colour has at least one legal
// move. When colour is not the side to move the question is asked of the
// same placement with colour to move and no en passant target.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	probe := pos
	if colour != pos.ToMove {
		scratch := *pos
		scratch.ToMove = colour
		scratch.ClearEnPassant()
		probe = &scratch
	}

	for _, from := range probe.Board.Occupied(colour) {
		for _, m := range PseudoLegalMoves(probe, from) {
			if tryMove(probe, m) {
				return true
			}
		}
	}
	return false
}

// tryMove plays m on a scratch copy of pos and reports whether the mover's
// king is safe afterwards. Castling must also clear the attack-map test.
func tryMove(pos *chess.Position, m chess.Move) bool {
	if m.IsCastle() && castlingObstruction(pos, m) != castlingSafe {
		return false
	}

	scratch := *pos
	applyResolved(&scratch, m)
	return !IsInCheck(&scratch.Board, m.Piece.Colour)
}

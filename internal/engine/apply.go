package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ApplyMove validates the proposal m against pos and plays it. On success
// pos holds the new position and the resolved move is returned; on failure
// pos is untouched.
func ApplyMove(pos *chess.Position, m chess.Move) (chess.Move, error) {
	resolved, err := ValidateMove(pos, m)
	if err != nil {
		return chess.Move{}, err
	}
	applyResolved(pos, resolved)
	return resolved, nil
}

// applyResolved plays a move produced by the generator, including every
// compound effect: rook relocation, en passant removal, promotion, castling
// rights, en passant target, clocks and side to move.
func applyResolved(pos *chess.Position, m chess.Move) {
	switch {
	case m.IsCastle():
		applyCastle(pos, m)
	case m.Piece.Kind == chess.Pawn:
		applyPawnMove(pos, m)
	default:
		applyPieceMove(pos, m)
	}
}

// finishMove advances the clocks and passes the turn.
func finishMove(pos *chess.Position, colour chess.Colour, resetClock bool) {
	if resetClock {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()
}

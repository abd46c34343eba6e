package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSquare, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSquare, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq. The
// scan works outward from sq looking for an attacker of each kind, so the
// occupant of sq itself does not matter.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one rank behind sq
	// from its own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, pawnDir); ok && board.PieceAt(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, offset := range knightOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.PieceAt(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(byColour, chess.King)
	for _, offset := range kingOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.PieceAt(from) == king {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.MakePiece(byColour, chess.Queen)
	if rayAttacked(board, sq, diagonalDirs[:], chess.MakePiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightDirs[:], chess.MakePiece(byColour, chess.Rook), queen)
}

// rayAttacked reports whether the first piece met along any of dirs is
// one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.PieceAt(from)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}

// castlingObstruction runs the attack-map part of the castling rules. The
// square the king crosses is the rook's destination square.
func castlingObstruction(pos *chess.Position, m chess.Move) castlingVerdict {
	colour := m.Piece.Colour
	enemy := colour.Opposite()
	board := &pos.Board

	if IsSquareAttacked(board, m.From, enemy) {
		return castlingFromCheck
	}
	side := castlingSide(m)
	if IsSquareAttacked(board, chess.CastlingRookTarget(colour, side), enemy) {
		return castlingThroughCheck
	}
	if IsSquareAttacked(board, m.To, enemy) {
		return castlingIntoCheck
	}
	return castlingSafe
}

// castlingVerdict classifies the attack-map check for castling.
type castlingVerdict int

const (
	castlingSafe castlingVerdict = iota
	castlingFromCheck
	castlingThroughCheck
	castlingIntoCheck
)

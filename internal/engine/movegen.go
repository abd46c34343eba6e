// Package engine implements the rules of chess: move generation, move
// validation, move application, check detection and position classification.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Piece movement offsets as {file, rank} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves returns the moves the piece on from could make judged by
// geometry and occupancy alone. King safety is not considered. An empty
// square yields no moves. Moves come back in a fixed generation order.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.PieceAt(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	switch piece.Kind {
	case chess.Pawn:
		moves = pawnMoves(pos, from, piece, moves)
	case chess.Knight:
		moves = stepMoves(&pos.Board, from, piece, knightOffsets[:], moves)
	case chess.Bishop:
		moves = slideMoves(&pos.Board, from, piece, diagonalDirs[:], moves)
	case chess.Rook:
		moves = slideMoves(&pos.Board, from, piece, straightDirs[:], moves)
	case chess.Queen:
		moves = slideMoves(&pos.Board, from, piece, diagonalDirs[:], moves)
		moves = slideMoves(&pos.Board, from, piece, straightDirs[:], moves)
	case chess.King:
		moves = stepMoves(&pos.Board, from, piece, kingOffsets[:], moves)
		moves = castlingMoves(pos, from, piece, moves)
	}
	return moves
}

// pawnMoves generates pushes, captures, en passant and promotions.
func pawnMoves(pos *chess.Position, from chess.Square, pawn chess.Piece, moves []chess.Move) []chess.Move {
	board := &pos.Board
	colour := pawn.Colour
	dir := chess.ColourOffset(colour)

	// Forward move
	if to, ok := from.Offset(0, dir); ok && board.IsEmpty(to) {
		moves = addPawnMove(moves, from, to, pawn, chess.NoPiece)

		// Double push from starting rank
		if from.Rank() == chess.PawnRank(colour) {
			if to2, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(to2) {
				moves = append(moves, chess.Move{From: from, To: to2, Class: chess.Normal, Piece: pawn})
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		if !target.IsEmpty() {
			if target.Colour != colour {
				moves = addPawnMove(moves, from, to, pawn, target)
			}
			continue
		}
		if ep, ok := pos.EnPassantTarget(); ok && to == ep {
			passed := chess.NewSquare(to.File(), from.Rank())
			victim := board.PieceAt(passed)
			if victim.Is(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{
					From:     from,
					To:       to,
					Class:    chess.EnPassant,
					Piece:    pawn,
					Captured: victim,
				})
			}
		}
	}
	return moves
}

// addPawnMove appends a pawn move, expanding it into the four promotion
// choices when it reaches the far rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, pawn, captured chess.Piece) []chess.Move {
	if to.Rank() == chess.PromotionRank(pawn.Colour) {
		for _, kind := range chess.PromotionKinds {
			moves = append(moves, chess.Move{
				From:      from,
				To:        to,
				Promotion: kind,
				Class:     chess.Promotion,
				Piece:     pawn,
				Captured:  captured,
			})
		}
		return moves
	}

	class := chess.Normal
	if !captured.IsEmpty() {
		class = chess.Capture
	}
	return append(moves, chess.Move{From: from, To: to, Class: class, Piece: pawn, Captured: captured})
}

// stepMoves generates single-step moves for knights and kings.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		switch {
		case target.IsEmpty():
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal, Piece: piece})
		case target.Colour != piece.Colour:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture, Piece: piece, Captured: target})
		}
	}
	return moves
}

// slideMoves generates ray moves for bishops, rooks and queens.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.PieceAt(to)
			if !target.IsEmpty() {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture, Piece: piece, Captured: target})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal, Piece: piece})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castlingMoves adds castling candidates: the right is held, king and rook
// stand on their home squares and nothing stands between them. Attacked
// squares are checked by the validator, not here.
func castlingMoves(pos *chess.Position, from chess.Square, king chess.Piece, moves []chess.Move) []chess.Move {
	colour := king.Colour
	if from != chess.KingHomeSquare(colour) {
		return moves
	}
	rook := chess.MakePiece(colour, chess.Rook)

	for _, side := range [2]chess.CastlingSide{chess.Kingside, chess.Queenside} {
		if !pos.Castling.Has(colour, side) {
			continue
		}
		rookSquare := chess.CastlingRookSquare(colour, side)
		if pos.Board.PieceAt(rookSquare) != rook || !pos.Board.PathClear(from, rookSquare) {
			continue
		}
		class := chess.KingsideCastle
		if side == chess.Queenside {
			class = chess.QueensideCastle
		}
		moves = append(moves, chess.Move{
			From:  from,
			To:    chess.CastlingKingTarget(colour, side),
			Class: class,
			Piece: king,
		})
	}
	return moves
}

// castlingSide returns the side a castling move is played on.
func castlingSide(m chess.Move) chess.CastlingSide {
	if m.Class == chess.QueensideCastle {
		return chess.Queenside
	}
	return chess.Kingside
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which the fifty-move rule
// applies.
const FiftyMoveLimit = 100

// IsFiftyMoveDraw reports whether fifty full moves have passed without a
// pawn move or capture.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}

		switch piece.Kind {
		case chess.King:
			// Kings don't count for material
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

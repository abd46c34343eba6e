package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove resolves the proposal m against the legal moves of pos. Only
// From, To and Promotion of m are read. The returned move carries the class,
// moving piece and captured piece. A rejected proposal yields a
// *errors.MoveError wrapping errors.ErrInvalidMove whose Reason says why.
func ValidateMove(pos *chess.Position, m chess.Move) (chess.Move, error) {
	text := m.String()
	if !m.From.Valid() || !m.To.Valid() {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrOutOfBounds, Reason: errors.IllegalDestination, Move: text}
	}

	piece := pos.Board.PieceAt(m.From)
	if piece.IsEmpty() {
		return chess.Move{}, errors.NewMoveError(errors.NoPieceAtSource, text)
	}
	if piece.Colour != pos.ToMove {
		return chess.Move{}, errors.NewMoveError(errors.NotYourTurn, text)
	}
	if m.Promotion != chess.NoKind && !chess.IsPromotionKind(m.Promotion) {
		return chess.Move{}, errors.NewMoveError(errors.IllegalPromotion, text)
	}

	var matches []chess.Move
	for _, candidate := range PseudoLegalMoves(pos, m.From) {
		if candidate.To == m.To {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 0 {
		return chess.Move{}, errors.NewMoveError(unreachableReason(pos, piece, m), text)
	}

	resolved, reason := pickPromotion(matches, m.Promotion)
	if reason != errors.ReasonUnknown {
		return chess.Move{}, errors.NewMoveError(reason, text)
	}

	if resolved.IsCastle() {
		switch castlingObstruction(pos, resolved) {
		case castlingFromCheck:
			return chess.Move{}, errors.NewMoveError(errors.CastlingNotAllowed, text)
		case castlingThroughCheck:
			return chess.Move{}, errors.NewMoveError(errors.CastlingThroughCheck, text)
		case castlingIntoCheck:
			return chess.Move{}, errors.NewMoveError(errors.LeavesKingInCheck, text)
		}
	}
	if !tryMove(pos, resolved) {
		return chess.Move{}, errors.NewMoveError(errors.LeavesKingInCheck, text)
	}
	return resolved, nil
}

// pickPromotion selects the candidate matching the requested promotion.
// Candidates all share From and To, so either every one is a promotion or
// there is exactly one.
func pickPromotion(matches []chess.Move, promotion chess.Kind) (chess.Move, errors.Reason) {
	if !matches[0].IsPromotion() {
		if promotion != chess.NoKind {
			return chess.Move{}, errors.IllegalPromotion
		}
		return matches[0], errors.ReasonUnknown
	}

	if promotion == chess.NoKind {
		return chess.Move{}, errors.MissingPromotion
	}
	for _, candidate := range matches {
		if candidate.Promotion == promotion {
			return candidate, errors.ReasonUnknown
		}
	}
	return chess.Move{}, errors.IllegalPromotion
}

// unreachableReason explains why the generator offered no move to m.To.
func unreachableReason(pos *chess.Position, piece chess.Piece, m chess.Move) errors.Reason {
	if isCastlingAttempt(piece, m.From, m.To) {
		side := chess.Kingside
		if m.To.File() < m.From.File() {
			side = chess.Queenside
		}
		rookSquare := chess.CastlingRookSquare(piece.Colour, side)
		if pos.Castling.Has(piece.Colour, side) && pos.Board.PieceAt(rookSquare) == chess.MakePiece(piece.Colour, chess.Rook) {
			return errors.BlockedPath
		}
		return errors.CastlingNotAllowed
	}

	if canPieceMove(piece, m.From, m.To) && isPathBlocked(&pos.Board, piece, m.From, m.To) {
		return errors.BlockedPath
	}
	return errors.IllegalDestination
}

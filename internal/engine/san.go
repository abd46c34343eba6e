package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SAN renders the resolved move m, played from pos, in Standard Algebraic
// Notation, e.g. "Nbd7", "exd6", "e8=Q+", "O-O-O" or "Qxf7#".
func SAN(pos *chess.Position, m chess.Move) string {
	var sb strings.Builder

	switch {
	case m.Class == chess.KingsideCastle:
		sb.WriteString("O-O")
	case m.Class == chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case m.Piece.Kind == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(byte(chess.FileBase + m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoKind {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Kind.Letter())
		sb.WriteString(disambiguation(pos, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	after := *pos
	applyResolved(&after, m)
	switch Classify(&after).Kind {
	case chess.Checkmate:
		sb.WriteByte('#')
	case chess.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart
// from other legal moves of the same kind to the same square.
func disambiguation(pos *chess.Position, m chess.Move) string {
	var sameFile, sameRank, ambiguous bool
	for _, from := range pos.Board.Occupied(m.Piece.Colour) {
		if from == m.From || pos.Board.PieceAt(from) != m.Piece {
			continue
		}
		for _, other := range LegalMoves(pos, from) {
			if other.To != m.To {
				continue
			}
			ambiguous = true
			if from.File() == m.From.File() {
				sameFile = true
			}
			if from.Rank() == m.From.Rank() {
				sameRank = true
			}
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(rune(chess.FileBase + m.From.File()))
	case !sameRank:
		return string(rune(chess.RankBase + m.From.Rank()))
	default:
		return m.From.String()
	}
}

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Only the piece
// placement field is required; missing trailing fields default to White to
// move, no castling, no en passant and clocks "0 1". The position must hold
// exactly one king per colour and the side not to move must not be in
// check. Castling rights whose king or rook is off its home square are
// dropped.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return chess.Position{}, fmt.Errorf("too many FEN fields: %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	pos := chess.Position{ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := validatePosition(&pos); err != nil {
		return chess.Position{}, err
	}
	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c >= utf8.RuneSelf:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.MakePiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	pos.Castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var side chess.CastlingSide
		switch c {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}

		king := pos.Board.PieceAt(chess.KingHomeSquare(colour))
		rook := pos.Board.PieceAt(chess.CastlingRookSquare(colour, side))
		if king.Is(colour, chess.King) && rook.Is(colour, chess.Rook) {
			pos.Castling.Set(colour, side)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	pos.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The target lies behind a pawn of the side that just moved.
	mover := pos.ToMove.Opposite()
	wantRank := chess.PawnRank(mover) + chess.ColourOffset(mover)
	if sq.Rank() != wantRank {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	pos.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition rejects placements that cannot arise in play.
func validatePosition(pos *chess.Position) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if n := pos.Board.CountPiece(chess.MakePiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
		for file := 0; file < chess.BoardSize; file++ {
			for _, rank := range [2]int{0, chess.BoardSize - 1} {
				if pos.Board.PieceAt(chess.NewSquare(file, rank)).Is(colour, chess.Pawn) {
					return fmt.Errorf("%s pawn on back rank: %w", colour, errors.ErrInvalidFEN)
				}
			}
		}
	}
	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return fmt.Errorf("%s is in check but not to move: %w", pos.ToMove.Opposite(), errors.ErrInvalidFEN)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.NewSquare(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	if pos.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	if pos.Castling.Has(chess.White, chess.Kingside) {
		sb.WriteByte('K')
	}
	if pos.Castling.Has(chess.White, chess.Queenside) {
		sb.WriteByte('Q')
	}
	if pos.Castling.Has(chess.Black, chess.Kingside) {
		sb.WriteByte('k')
	}
	if pos.Castling.Has(chess.Black, chess.Queenside) {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if ep, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
}

package chess

// CastlingSide distinguishes kingside from queenside castling.
type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

// CastlingRights holds the four "still available" castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingFlag returns the flag for one colour and side.
func castlingFlag(colour Colour, side CastlingSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, side CastlingSide) bool {
	return cr&castlingFlag(colour, side) != 0
}

// Set grants one right.
func (cr *CastlingRights) Set(colour Colour, side CastlingSide) {
	*cr |= castlingFlag(colour, side)
}

// Clear removes one right.
func (cr *CastlingRights) Clear(colour Colour, side CastlingSide) {
	*cr &^= castlingFlag(colour, side)
}

// ClearColour removes both rights of a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	cr.Clear(colour, Kingside)
	cr.Clear(colour, Queenside)
}

// CastlingRookSquare returns the home square of the rook used for castling.
func CastlingRookSquare(colour Colour, side CastlingSide) Square {
	file := BoardSize - 1
	if side == Queenside {
		file = 0
	}
	return NewSquare(file, HomeRank(colour))
}

// CastlingKingTarget returns the king's destination when castling.
func CastlingKingTarget(colour Colour, side CastlingSide) Square {
	file := 6
	if side == Queenside {
		file = 2
	}
	return NewSquare(file, HomeRank(colour))
}

// CastlingRookTarget returns the rook's destination when castling.
func CastlingRookTarget(colour Colour, side CastlingSide) Square {
	file := 5
	if side == Queenside {
		file = 3
	}
	return NewSquare(file, HomeRank(colour))
}

// KingHomeSquare returns e1 or e8.
func KingHomeSquare(colour Colour) Square {
	return NewSquare(4, HomeRank(colour))
}

// Position is a board together with all state needed to generate moves.
// It has value semantics; copying a Position yields an independent scratch
// position.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling availability.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return Position{
		Board:      NewInitialBoard(),
		ToMove:     White,
		Castling:   AllCastling,
		MoveNumber: 1,
	}
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// SetEnPassant records the en passant target square.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = 0
}

// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index (0 or 7) of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of the given colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a Kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionKind reports whether a pawn may promote to k.
func IsPromotionKind(k Kind) bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PromotionKinds lists the promotion choices in generation order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// Piece is an immutable coloured piece value. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour && kind != NoKind
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Symbol returns the Unicode chess symbol of the piece.
func (p Piece) Symbol() string {
	if p.IsEmpty() {
		return "·"
	}
	white := []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

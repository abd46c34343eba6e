package chess

import "strings"

// Board is the 8x8 grid of piece occupancy. It holds no rule knowledge and
// has value semantics: assigning a Board copies every square.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[NewSquare(file, 0)] = W(backRank[file])
		b.squares[NewSquare(file, 1)] = W(Pawn)
		b.squares[NewSquare(file, 6)] = B(Pawn)
		b.squares[NewSquare(file, 7)] = B(backRank[file])
	}
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	sq.mustValid()
	return b.squares[sq]
}

// Set places a piece on sq. Setting NoPiece empties the square.
func (b *Board) Set(sq Square, p Piece) {
	sq.mustValid()
	b.squares[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq).IsEmpty()
}

// MovePiece relocates whatever is on from to to, replacing any occupant of
// to. No rule checking is performed.
func (b *Board) MovePiece(from, to Square) {
	p := b.PieceAt(from)
	b.Set(from, NoPiece)
	b.Set(to, p)
}

// PathClear reports whether every square strictly between from and to is
// empty. The two squares must share a rank, file or diagonal; any other
// pair is reported as not clear.
func (b *Board) PathClear(from, to Square) bool {
	from.mustValid()
	to.mustValid()

	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return false
	}

	stepF, stepR := sign(df), sign(dr)
	sq, _ := from.Offset(stepF, stepR)
	for sq != to {
		if !b.squares[sq].IsEmpty() {
			return false
		}
		sq, _ = sq.Offset(stepF, stepR)
	}
	return true
}

// KingSquare returns the square of the given colour's king.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		if b.squares[sq].Is(colour, King) {
			return sq, true
		}
	}
	return 0, false
}

// Occupied returns the squares holding pieces of the given colour in
// ascending square order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		p := b.squares[sq]
		if !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

// CountPiece returns how many copies of p are on the board.
func (b *Board) CountPiece(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// Render draws the board from White's side, rank 8 first, using Unicode
// symbols or FEN letters.
func (b *Board) Render(unicode bool) string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			p := b.squares[NewSquare(file, rank)]
			if unicode {
				sb.WriteString(p.Symbol())
			} else {
				sb.WriteByte(p.Letter())
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

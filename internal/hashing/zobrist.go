// Package hashing provides Zobrist position hashing and repetition counting.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Zobrist keys. They come from a fixed-seed PRNG so hashes are stable
// across runs.
var (
	zobristPiece      [2][chess.NumKinds][chess.NumSquares]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

type prng struct {
	state uint64
}

// next is xorshift64*.
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for _, c := range [2]chess.Colour{chess.Black, chess.White} {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist hash of a position. Two positions hash equal
// when they have the same placement, side to move, castling rights and
// en passant capture possibility, which is the identity used by the
// repetition rule. The clocks are ignored.
func Hash(pos *chess.Position) uint64 {
	h := BoardHash(&pos.Board)
	h ^= zobristCastling[pos.Castling&chess.AllCastling]
	if pos.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	if ep, ok := pos.EnPassantTarget(); ok && epCapturePossible(pos, ep) {
		h ^= zobristEnPassant[ep.File()]
	}
	return h
}

// BoardHash hashes the piece placement only.
func BoardHash(board *chess.Board) uint64 {
	var h uint64
	for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
		if p := board.PieceAt(sq); !p.IsEmpty() {
			h ^= zobristPiece[p.Colour][p.Kind][sq]
		}
	}
	return h
}

// epCapturePossible reports whether the side to move has a legal en
// passant capture. A target nobody can use, including one whose only
// capturer is pinned, does not make the position different.
func epCapturePossible(pos *chess.Position, ep chess.Square) bool {
	behind := -chess.ColourOffset(pos.ToMove)
	for _, df := range [2]int{-1, 1} {
		from, ok := ep.Offset(df, behind)
		if !ok || !pos.Board.PieceAt(from).Is(pos.ToMove, chess.Pawn) {
			continue
		}
		for _, m := range engine.LegalMoves(pos, from) {
			if m.Class == chess.EnPassant {
				return true
			}
		}
	}
	return false
}

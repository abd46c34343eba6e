package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestValidatorMatchesLegalSet checks every from/to pair of positions along
// seeded random games: ValidateMove accepts exactly the legal moves, and
// each accepted move leaves the mover's king safe.
func TestValidatorMatchesLegalSet(t *testing.T) {
	games, plies := 6, 60
	if testing.Short() {
		games, plies = 2, 30
	}
	rng := rand.New(rand.NewSource(7))

	for g := 0; g < games; g++ {
		pos := mustFEN(t, testutil.StartFEN)
		for ply := 0; ply < plies; ply++ {
			legal := AllLegalMoves(&pos)
			checkPositionInvariants(t, &pos, legal)
			if len(legal) == 0 {
				break
			}
			applyResolved(&pos, legal[rng.Intn(len(legal))])
		}
	}
}

func checkPositionInvariants(t *testing.T, pos *chess.Position, legal []chess.Move) {
	t.Helper()
	fen := PositionToFEN(pos)

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := pos.Board.CountPiece(chess.MakePiece(colour, chess.King)); n != 1 {
			t.Fatalf("%s has %d kings in %s", colour, n, fen)
		}
	}
	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		t.Fatalf("side not to move is in check in %s", fen)
	}

	isLegal := make(map[chess.Move]bool, len(legal))
	for _, m := range legal {
		isLegal[chess.NewPromotion(m.From, m.To, m.Promotion)] = true

		scratch := *pos
		applyResolved(&scratch, m)
		if IsInCheck(&scratch.Board, pos.ToMove) {
			t.Fatalf("legal move %s leaves king in check in %s", m, fen)
		}
	}

	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		for to := chess.Square(0); int(to) < chess.NumSquares; to++ {
			proposal := chess.NewMove(from, to)
			if needsPromotion(pos, from, to) {
				proposal.Promotion = chess.Queen
			}
			_, err := ValidateMove(pos, proposal)
			if accepted := err == nil; accepted != isLegal[proposal] {
				t.Fatalf("ValidateMove(%s) accepted=%v, legal=%v in %s (err %v)", proposal, accepted, isLegal[proposal], fen, err)
			}
		}
	}
}

func needsPromotion(pos *chess.Position, from, to chess.Square) bool {
	p := pos.Board.PieceAt(from)
	return p.Kind == chess.Pawn && to.Rank() == chess.PromotionRank(p.Colour)
}

package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestSAN(t *testing.T) {
	cases := []struct {
		fen  string
		uci  string
		want string
	}{
		{fen: testutil.StartFEN, uci: "e2e4", want: "e4"},
		{fen: testutil.StartFEN, uci: "g1f3", want: "Nf3"},
		{fen: "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4", uci: "h5f7", want: "Qxf7#"},
		{fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", uci: "e1g1", want: "O-O"},
		{fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", uci: "e8c8", want: "O-O-O"},
		{fen: "1n5k/P7/8/8/8/8/8/7K w - - 0 1", uci: "a7a8q", want: "a8=Q"},
		{fen: "1n5k/P7/8/8/8/8/8/7K w - - 0 1", uci: "a7b8q", want: "axb8=Q+"},
		{fen: testutil.EnPassantFEN, uci: "e5d6", want: "exd6"},
		{fen: "2k5/8/1Q6/4Q3/8/8/8/K7 w - - 1 2", uci: "e5b8", want: "Qeb8+"},
		{fen: "1Q6/3k4/1Q6/8/8/8/8/K7 w - - 3 3", uci: "b8d8", want: "Q8d8#"},
		{fen: "1Q6/3k4/1Q6/8/8/8/8/K7 w - - 3 3", uci: "b6d6", want: "Q6d6#"},
		{fen: "4k3/8/3Q1Q1Q/3Q4/8/3Q4/8/K7 w - - 5 4", uci: "d6e6", want: "Qd6e6#"},
		{fen: "4k3/8/3Q1Q1Q/3Q4/8/3Q4/8/K7 w - - 5 4", uci: "f6g6", want: "Qfg6#"},
		{fen: "4k3/8/3Q1Q1Q/3Q4/8/3Q4/8/K7 w - - 5 4", uci: "d3e4", want: "Q3e4#"},
		{fen: "4k3/8/8/8/3pPp2/8/8/4K3 b - e3 0 1", uci: "d4e3", want: "dxe3"},
		{fen: "4k3/8/8/8/3pPp2/8/8/4K3 b - e3 0 1", uci: "f4e3", want: "fxe3"},
		{fen: "rnbqk2r/1p3ppp/p2ppb2/8/4P3/2NB1N2/PPP2PPP/R2QK2R b KQkq - 1 9", uci: "e8g8", want: "O-O"},
		{fen: "r1b2rk1/1p1n1ppp/pq1ppb2/8/P3P3/2NB1N2/1PPQ1PPP/R4RK1 w - - 1 13", uci: "a1e1", want: "Rae1"},
		{fen: "r1b1r1k1/1p1q1pp1/3bp2p/8/P7/3N1N2/2PQ1PPP/4RRK1 w - - 0 22", uci: "d3e5", want: "Nde5"},
		{fen: "6k1/1p2bp2/4p2p/Pb4p1/3R3P/1Nr1N1P1/2P2PK1/8 w - g6 0 39", uci: "h4g5", want: "hxg5"},
		{fen: "6k1/1p3p2/4p2p/Pb4b1/3R4/1Nr1NKP1/2P2P2/8 b - - 1 40", uci: "b5c6", want: "Bc6+"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %s", c.fen, c.uci), func(t *testing.T) {
			pos := mustFEN(t, c.fen)
			resolved, err := ValidateMove(&pos, move(t, c.uci))
			if err != nil {
				t.Fatalf("ValidateMove(%s): %v", c.uci, err)
			}
			if got := SAN(&pos, resolved); got != c.want {
				t.Errorf("SAN(%s) = %q; want %q", c.uci, got, c.want)
			}
		})
	}
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// playGame plays UCI moves from fen and returns the final state.
func playGame(t *testing.T, fen string, moves ...string) game.State {
	t.Helper()
	g, err := game.New(game.WithFEN(fen))
	testutil.AssertNoError(t, err)
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		testutil.AssertNoError(t, err)
		_, err = g.ApplyMove(m)
		testutil.AssertNoError(t, err, "move %s", text)
	}
	return g.State()
}

func scholarsMate(t *testing.T) game.State {
	return playGame(t, testutil.StartFEN, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
}

func TestWritePGN(t *testing.T) {
	var buf bytes.Buffer
	tags := Tags{"Event": "Test", "White": "Fischer", "Black": "Spassky", "Annotator": "x"}
	err := WritePGN(&buf, scholarsMate(t), tags, 0)
	testutil.AssertNoError(t, err)

	want := `[Event "Test"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "Fischer"]
[Black "Spassky"]
[Result "1-0"]
[Annotator "x"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0

`
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWritePGNFromSetUpPosition(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 b - - 0 5"
	st := playGame(t, fen, "e8d8", "e2e4")

	var buf bytes.Buffer
	testutil.AssertNoError(t, WritePGN(&buf, st, nil, 0))

	out := buf.String()
	testutil.AssertContains(t, out, `[Result "*"]`+"\n")
	testutil.AssertContains(t, out, `[FEN "`+fen+`"]`+"\n"+`[SetUp "1"]`+"\n")
	testutil.AssertContains(t, out, "\n5... Kd8 6. e4 *\n")
}

func TestWritePGNResultTagFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WritePGN(&buf, scholarsMate(t), Tags{"Result": "0-1"}, 0))
	testutil.AssertContains(t, buf.String(), `[Result "1-0"]`)
	testutil.AssertNotContains(t, buf.String(), `[Result "0-1"]`)
}

func TestMovetext(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"default width", 0, "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7#"},
		{"narrow", 16, "1. e4 e5 2. Bc4\nNc6 3. Qh5 Nf6\n4. Qxf7#"},
	}

	st := scholarsMate(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Movetext(st, tt.width), tt.want)
		})
	}
}

func TestMovetextEmpty(t *testing.T) {
	st := playGame(t, testutil.StartFEN)
	testutil.AssertEqual(t, Movetext(st, 0), "")
}

func TestOutputWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3"} {
		ow.Write(s)
	}
	ow.NewLine()
	testutil.AssertNoError(t, ow.Err())
	testutil.AssertEqual(t, buf.String(), "1. e4 e5\n2. Nf3\n")
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`a\b`, `a\\b`},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, escapeTagValue(tt.in), tt.want)
	}
}

func TestGameToJSON(t *testing.T) {
	st := playGame(t, testutil.StartFEN, "e2e4", "d7d5", "e4d5")
	jg := GameToJSON(st, Tags{"Event": "Test"})

	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.SideToMove, "black")
	testutil.AssertEqual(t, jg.Status, "InProgress")
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.InitialFEN, "")
	testutil.AssertEqual(t, jg.FEN, st.FEN())
	testutil.AssertEqual(t, jg.Captured, map[string][]string{"black": {"pawn"}})
	testutil.AssertTrue(t, len(jg.LegalMoves) > 0, "expected legal moves")

	want := JSONMove{
		Ply: 3, MoveNumber: 2, Color: "white", SAN: "exd5", UCI: "e4d5",
		From: "e4", To: "d5", Piece: "pawn", Captured: "pawn", Class: "Capture", Status: "InProgress",
	}
	testutil.AssertEqual(t, jg.Moves[2], want)
}

func TestGameToJSONFinishedGame(t *testing.T) {
	jg := GameToJSON(scholarsMate(t), nil)
	testutil.AssertEqual(t, jg.Result, "1-0")
	testutil.AssertEqual(t, jg.Status, "Checkmate(White)")
	testutil.AssertEqual(t, len(jg.LegalMoves), 0)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, scholarsMate(t), nil))

	var decoded JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.PlyCount, 7)
	testutil.AssertEqual(t, decoded.Moves[6].SAN, "Qxf7#")
}

func TestGameWriters(t *testing.T) {
	tests := []struct {
		format Format
		check  func(t *testing.T, out string)
	}{
		{PGN, func(t *testing.T, out string) {
			testutil.AssertEqual(t, strings.Count(out, `[Event "`), 2)
			testutil.AssertContains(t, out, `[Round "2"]`)
		}},
		{JSON, func(t *testing.T, out string) {
			var decoded JSONOutput
			testutil.AssertNoError(t, json.Unmarshal([]byte(out), &decoded))
			testutil.AssertEqual(t, len(decoded.Games), 2)
			testutil.AssertEqual(t, decoded.Games[1].Tags["Round"], "2")
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewGameWriter(&buf, tt.format)
			testutil.AssertNoError(t, err)
			st := scholarsMate(t)
			testutil.AssertNoError(t, w.WriteGame(st, Tags{"Round": "1"}))
			testutil.AssertNoError(t, w.WriteGame(st, Tags{"Round": "2"}))
			testutil.AssertNoError(t, w.Close())
			tt.check(t, buf.String())
		})
	}
}

func TestJSONWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewJSONWriter(&buf).Close())
	testutil.AssertEqual(t, strings.TrimSpace(buf.String()), `{
  "games": []
}`)
}

func TestNewGameWriterUnknownFormat(t *testing.T) {
	_, err := NewGameWriter(&bytes.Buffer{}, "xml")
	testutil.AssertError(t, err)
}

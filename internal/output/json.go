package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       Tags                `json:"tags,omitempty"`
	InitialFEN string              `json:"initialFEN,omitempty"`
	FEN        string              `json:"fen"`
	SideToMove string              `json:"sideToMove"`
	Status     string              `json:"status"`
	Result     string              `json:"result"`
	PlyCount   int                 `json:"plyCount"`
	Moves      []JSONMove          `json:"moves,omitempty"`
	Captured   map[string][]string `json:"captured,omitempty"`
	LegalMoves []string            `json:"legalMoves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Class      string `json:"class,omitempty"`
	Status     string `json:"status"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game snapshot to JSON form. LegalMoves lists every
// legal move of the side to move and is empty once the game is over.
func GameToJSON(st game.State, tags Tags) *JSONGame {
	jg := &JSONGame{
		Tags:       tags,
		FEN:        st.FEN(),
		SideToMove: colourName(st.SideToMove()),
		Status:     st.Status.String(),
		Result:     st.Status.Result(),
		PlyCount:   len(st.History),
	}
	if fen := st.StartFEN(); fen != engine.InitialFEN {
		jg.InitialFEN = fen
	}

	for _, h := range st.History {
		jg.Moves = append(jg.Moves, moveToJSON(h))
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, p := range st.Captured[colour] {
			if jg.Captured == nil {
				jg.Captured = make(map[string][]string)
			}
			name := colourName(colour)
			jg.Captured[name] = append(jg.Captured[name], strings.ToLower(p.Kind.String()))
		}
	}

	if !st.Status.IsTerminal() {
		for _, m := range engine.AllLegalMoves(&st.Position) {
			jg.LegalMoves = append(jg.LegalMoves, m.String())
		}
	}
	return jg
}

func moveToJSON(h game.HistoryEntry) JSONMove {
	jm := JSONMove{
		Ply:        h.Ply,
		MoveNumber: h.MoveNumber,
		Color:      colourName(h.Move.Piece.Colour),
		SAN:        h.SAN,
		UCI:        h.Move.String(),
		From:       h.Move.From.String(),
		To:         h.Move.To.String(),
		Piece:      strings.ToLower(h.Move.Piece.Kind.String()),
		Status:     h.Status.String(),
	}
	if h.Move.IsCapture() {
		jm.Captured = strings.ToLower(h.Move.Captured.Kind.String())
	}
	if h.Move.IsPromotion() {
		jm.Promotion = strings.ToLower(h.Move.Promotion.String())
	}
	if h.Move.Class != chess.Normal {
		jm.Class = h.Move.Class.String()
	}
	return jm
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// WriteJSON writes a single game as indented JSON.
func WriteJSON(w io.Writer, st game.State, tags Tags) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(st, tags))
}

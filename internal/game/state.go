package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// HistoryEntry records one applied move.
type HistoryEntry struct {
	Ply        int
	MoveNumber uint // full-move number the move was played in
	Move       chess.Move
	SAN        string
	Status     chess.Status // status after the move
}

// State is a snapshot of a game. It shares no memory with the Game it was
// taken from.
type State struct {
	Start    chess.Position // position the game began from
	Position chess.Position
	History  []HistoryEntry
	Status   chess.Status

	// Captured holds the pieces of each colour that have left the board,
	// indexed by chess.Colour, in capture order.
	Captured [2][]chess.Piece

	// Repetitions is how many times Position has occurred in the game.
	Repetitions int
}

// SideToMove returns the colour whose turn it is.
func (s State) SideToMove() chess.Colour {
	return s.Position.ToMove
}

// FEN returns the position in Forsyth-Edwards Notation.
func (s State) FEN() string {
	return engine.PositionToFEN(&s.Position)
}

// StartFEN returns the starting position in Forsyth-Edwards Notation.
func (s State) StartFEN() string {
	return engine.PositionToFEN(&s.Start)
}

// LastMove returns the most recent history entry, if any.
func (s State) LastMove() (HistoryEntry, bool) {
	if len(s.History) == 0 {
		return HistoryEntry{}, false
	}
	return s.History[len(s.History)-1], true
}

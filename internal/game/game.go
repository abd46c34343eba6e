// Package game owns the state of a single chess game: position, history,
// status and draw bookkeeping. All mutation goes through ApplyMove.
package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game is a chess game in progress. A Game is not safe for concurrent use;
// see the session package for shared access.
type Game struct {
	start    chess.Position
	pos      chess.Position
	history  []HistoryEntry
	status   chess.Status
	captured [2][]chess.Piece
	reps     *hashing.RepetitionTable
	rules    DrawRules
	log      *logrus.Entry
}

// New creates a game from the standard starting position, or from the
// position given by WithFEN.
func New(opts ...Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pos, err := engine.NewPositionFromFEN(o.fen)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	g := &Game{
		start: pos,
		pos:   pos,
		reps:  hashing.NewRepetitionTable(),
		rules: o.rules,
		log:   o.logger,
	}
	g.status = g.classify(g.reps.Add(hashing.Hash(&g.pos)))
	return g, nil
}

// ApplyMove validates the proposal m and, if legal, plays it and returns a
// snapshot of the new state. Rejected moves return a *errors.MoveError
// wrapping errors.ErrInvalidMove and leave the game unchanged.
func (g *Game) ApplyMove(m chess.Move) (State, error) {
	ply := len(g.history) + 1

	if g.status.IsTerminal() {
		err := &errors.MoveError{Err: errors.ErrInvalidMove, Reason: errors.GameOver, Move: m.String(), Ply: ply}
		g.logRejection(ply, m, err)
		return State{}, err
	}

	before := g.pos
	resolved, err := engine.ApplyMove(&g.pos, m)
	if err != nil {
		var me *errors.MoveError
		if errors.As(err, &me) {
			me.Ply = ply
		}
		g.logRejection(ply, m, err)
		return State{}, err
	}

	if !resolved.Captured.IsEmpty() {
		c := resolved.Captured.Colour
		g.captured[c] = append(g.captured[c], resolved.Captured)
	}
	g.status = g.classify(g.reps.Add(hashing.Hash(&g.pos)))
	g.history = append(g.history, HistoryEntry{
		Ply:        ply,
		MoveNumber: before.MoveNumber,
		Move:       resolved,
		SAN:        engine.SAN(&before, resolved),
		Status:     g.status,
	})

	g.log.WithFields(logrus.Fields{
		"ply":    ply,
		"move":   resolved.String(),
		"san":    g.history[len(g.history)-1].SAN,
		"status": g.status.String(),
	}).Debug("move applied")

	return g.State(), nil
}

// classify computes the status of the current position. reps is the number
// of times the position has now occurred.
func (g *Game) classify(reps int) chess.Status {
	status := engine.Classify(&g.pos)
	if status.IsTerminal() {
		return status
	}
	switch {
	case g.rules.InsufficientMaterial && engine.HasInsufficientMaterial(&g.pos.Board):
		return chess.DrawStatus(chess.InsufficientMaterial)
	case g.rules.FiftyMove && engine.IsFiftyMoveDraw(&g.pos):
		return chess.DrawStatus(chess.FiftyMoveRule)
	case g.rules.Threefold && reps >= 3:
		return chess.DrawStatus(chess.ThreefoldRepetition)
	}
	return status
}

func (g *Game) logRejection(ply int, m chess.Move, err error) {
	g.log.WithFields(logrus.Fields{
		"ply":    ply,
		"move":   m.String(),
		"reason": errors.ReasonOf(err).String(),
	}).Trace("move rejected")
}

// LegalMoves returns the legal moves of the piece on sq. The result is empty
// when the square is empty, holds a piece of the side not to move, or the
// game is over.
func (g *Game) LegalMoves(sq chess.Square) []chess.Move {
	if g.status.IsTerminal() {
		return []chess.Move{}
	}
	return engine.LegalMoves(&g.pos, sq)
}

// Destinations returns the distinct target squares of the piece on sq, in
// generation order. Promotions to different pieces share one destination.
func (g *Game) Destinations(sq chess.Square) []chess.Square {
	moves := g.LegalMoves(sq)
	dests := make([]chess.Square, 0, len(moves))
	seen := make(map[chess.Square]bool, len(moves))
	for _, m := range moves {
		if !seen[m.To] {
			seen[m.To] = true
			dests = append(dests, m.To)
		}
	}
	return dests
}

// LegalMovesForSideToMove returns every legal move grouped by source square.
// Squares without moves are omitted.
func (g *Game) LegalMovesForSideToMove() map[chess.Square][]chess.Move {
	bySquare := make(map[chess.Square][]chess.Move)
	if g.status.IsTerminal() {
		return bySquare
	}
	for _, m := range engine.AllLegalMoves(&g.pos) {
		bySquare[m.From] = append(bySquare[m.From], m)
	}
	return bySquare
}

// MovableSquares returns the squares holding a piece with at least one legal
// move, in ascending order.
func (g *Game) MovableSquares() []chess.Square {
	squares := maps.Keys(g.LegalMovesForSideToMove())
	slices.Sort(squares)
	return squares
}

// Status returns the current status.
func (g *Game) Status() chess.Status {
	return g.status
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.pos.Board
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.pos
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.PositionToFEN(&g.pos)
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// History returns a copy of the applied moves.
func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history...)
}

// Captured returns a copy of the pieces of colour that have been captured.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// State returns a snapshot of the whole game.
func (g *Game) State() State {
	return State{
		Start:       g.start,
		Position:    g.pos,
		History:     g.History(),
		Status:      g.status,
		Captured:    [2][]chess.Piece{g.Captured(chess.Black), g.Captured(chess.White)},
		Repetitions: g.Repetitions(),
	}
}

// Repetitions returns how many times the current position has occurred,
// counting the current occurrence.
func (g *Game) Repetitions() int {
	return g.reps.Count(hashing.Hash(&g.pos))
}

// String returns a one-line summary such as "ply 4, White to move, InProgress".
func (g *Game) String() string {
	return fmt.Sprintf("ply %d, %s to move, %s", len(g.history), g.pos.ToMove, g.status)
}

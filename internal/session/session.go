// Package session keeps a registry of games addressed by UUID so that
// several callers can drive independent games concurrently.
package session

import (
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Session is one game in a Registry. Its methods serialize access to the
// game, so a Session may be shared between goroutines.
type Session struct {
	ID      string
	Created time.Time

	mu   sync.Mutex
	game *game.Game
}

// ApplyMove submits a move to the session's game.
func (s *Session) ApplyMove(m chess.Move) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ApplyMove(m)
}

// LegalMoves returns the legal moves of the piece on sq.
func (s *Session) LegalMoves(sq chess.Square) []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves(sq)
}

// State returns a snapshot of the session's game.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Do runs fn with exclusive access to the game. fn must not keep the
// pointer after it returns.
func (s *Session) Do(fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

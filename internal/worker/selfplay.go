package worker

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// SelfPlay returns a ProcessFunc that plays uniformly random legal moves.
// Every position reached is recorded in positions, which may be shared by
// all workers. A result carries an error when the rules contradict
// themselves: a generated move is rejected or a king is left capturable.
func SelfPlay(rules game.DrawRules, positions *hashing.ThreadSafeRepetitionTable) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index}

		fen := item.FEN
		if fen == "" {
			fen = engine.InitialFEN
		}
		g, err := game.New(game.WithFEN(fen), game.WithDrawRules(rules))
		if err != nil {
			result.Error = err
			return result
		}

		rng := rand.New(rand.NewSource(item.Seed))
		seen := hashing.NewRepetitionTable()
		start := g.Position()
		seen.Add(hashing.Hash(&start))

		for !g.Status().IsTerminal() && (item.MaxPlies <= 0 || g.Ply() < item.MaxPlies) {
			squares := g.MovableSquares()
			moves := g.LegalMoves(squares[rng.Intn(len(squares))])
			m := moves[rng.Intn(len(moves))]

			if _, err := g.ApplyMove(m); err != nil {
				result.Error = errors.Wrapf(err, "game %d: generated move %s rejected", item.Index, m)
				break
			}

			pos := g.Position()
			if engine.IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
				result.Error = fmt.Errorf("game %d: %s left %s in check at %s",
					item.Index, m, pos.ToMove.Opposite(), engine.PositionToFEN(&pos))
				break
			}
			seen.Add(hashing.Hash(&pos))
		}

		if positions != nil {
			positions.Merge(seen)
		}
		result.Plies = g.Ply()
		result.Status = g.Status()
		result.FEN = g.FEN()
		result.Game = g.State()
		return result
	}
}

// Summary aggregates self-play results.
type Summary struct {
	Games   int
	Plies   int
	Results map[string]int // keyed by Status.Result(), "*" for unfinished games
	Errors  []error
}

// Collect drains the pool's results into a Summary. It returns once the
// result channel is closed.
func Collect(p *Pool) Summary {
	return CollectFunc(p, nil)
}

// CollectFunc is like Collect but also hands every result to fn, in the
// order results arrive.
func CollectFunc(p *Pool, fn func(ProcessResult)) Summary {
	s := Summary{Results: make(map[string]int)}
	for r := range p.Results() {
		if fn != nil {
			fn(r)
		}
		s.Games++
		s.Plies += r.Plies
		s.Results[r.Status.Result()]++
		if r.Error != nil {
			s.Errors = append(s.Errors, r.Error)
		}
	}
	return s
}

package worker

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// runGames plays n seeded games on a fresh pool and returns the final FEN of
// each game by index.
func runGames(t *testing.T, workers, n int) map[int]string {
	t.Helper()
	pool := NewPool(SelfPlay(game.AllDrawRules, nil), WithWorkers(workers), WithBufferSize(n))
	pool.Start()
	for i := 0; i < n; i++ {
		pool.Submit(WorkItem{Index: i, Seed: int64(100 + i), MaxPlies: 40})
	}
	go pool.Close()

	fens := make(map[int]string)
	summary := CollectFunc(pool, func(r ProcessResult) {
		fens[r.Index] = r.FEN
	})
	testutil.AssertEqual(t, len(summary.Errors), 0, "errors: %v", summary.Errors)
	return fens
}

func TestPoolWorkerCountDoesNotChangeGames(t *testing.T) {
	const n = 8
	single := runGames(t, 1, n)
	parallel := runGames(t, 4, n)

	testutil.AssertEqual(t, len(single), n)
	testutil.AssertEqual(t, parallel, single)
}

func TestPoolStopBeforeStart(t *testing.T) {
	pool := NewPool(SelfPlay(game.AllDrawRules, nil), WithWorkers(2), WithBufferSize(5))
	testutil.AssertFalse(t, pool.IsStopped())

	pool.Stop()
	testutil.AssertTrue(t, pool.IsStopped())

	pool.Start()
	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Index: i, Seed: int64(i)})
	}
	go pool.Close()

	summary := Collect(pool)
	testutil.AssertEqual(t, summary.Games, 0)
}

func TestPoolStopAfterFailure(t *testing.T) {
	const n = 10
	release := make(chan struct{})
	play := SelfPlay(game.AllDrawRules, nil)
	// Every game but the broken one waits until the pool has been stopped.
	held := func(item WorkItem) ProcessResult {
		if item.Index > 0 {
			<-release
		}
		return play(item)
	}

	pool := NewPool(held, WithWorkers(2), WithBufferSize(n))
	pool.Start()
	pool.Submit(WorkItem{Index: 0, FEN: "not a fen"})
	for i := 1; i < n; i++ {
		pool.Submit(WorkItem{Index: i, Seed: int64(i), MaxPlies: 10})
	}
	go pool.Close()

	summary := CollectFunc(pool, func(r ProcessResult) {
		if r.Error != nil && !pool.IsStopped() {
			pool.Stop()
			close(release)
		}
	})

	testutil.AssertEqual(t, len(summary.Errors), 1)
	// The broken game plus at most one held game per worker.
	testutil.AssertTrue(t, summary.Games <= 3, "games = %d", summary.Games)
}

func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers and buffer", []PoolOption{WithWorkers(4), WithBufferSize(32)}, 4, 32},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-1)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(SelfPlay(game.AllDrawRules, nil), tt.opts...)
			testutil.AssertEqual(t, pool.NumWorkers(), tt.wantWorkers)
			testutil.AssertEqual(t, cap(pool.workChan), tt.wantBuffer)
			testutil.AssertEqual(t, cap(pool.resultChan), tt.wantBuffer)
		})
	}
}

package hashing

import "sync"

// ThreadSafeRepetitionTable wraps RepetitionTable with mutex protection for
// concurrent access, e.g. positions gathered by parallel self-play workers.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates a new thread-safe table.
func NewThreadSafeRepetitionTable() *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{table: NewRepetitionTable()}
}

// Len returns the total number of recorded occurrences.
func (t *ThreadSafeRepetitionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// UniqueCount returns the number of distinct hashes recorded.
func (t *ThreadSafeRepetitionTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}

// Merge adds every occurrence held by other. Call it once per finished
// worker-local table.
func (t *ThreadSafeRepetitionTable) Merge(other *RepetitionTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, h := range other.history {
		t.table.Add(h)
	}
}

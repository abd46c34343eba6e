package hashing

// RepetitionTable counts how often each position hash has occurred.
type RepetitionTable struct {
	counts map[uint64]int
	// history keeps every occurrence in insertion order for Merge.
	history []uint64
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of hash and returns its new count.
func (t *RepetitionTable) Add(hash uint64) int {
	t.counts[hash]++
	t.history = append(t.history, hash)
	return t.counts[hash]
}

// Count returns how many times hash has been recorded.
func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

// Len returns the total number of recorded occurrences.
func (t *RepetitionTable) Len() int {
	return len(t.history)
}

// UniqueCount returns the number of distinct hashes recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

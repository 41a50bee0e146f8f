package memorystore

import (
	"sync"

	"cbcollector/internal/marketdata"
)

// MemoryBookStatsStore counts received book changes per symbol. The book
// itself is not materialized; changes are forwarded downstream and only
// tallied here for visibility.
type MemoryBookStatsStore struct {
	mu        sync.Mutex
	snapshots map[string]int
	updates   map[string]int
}

func NewBookStatsStore() *MemoryBookStatsStore {
	return &MemoryBookStatsStore{
		snapshots: make(map[string]int),
		updates:   make(map[string]int),
	}
}

func (s *MemoryBookStatsStore) Record(c *marketdata.BookChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.IsSnapshot {
		s.snapshots[c.Symbol]++
	} else {
		s.updates[c.Symbol]++
	}
}

// Totals returns the overall snapshot and update counts.
func (s *MemoryBookStatsStore) Totals() (snapshots, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.snapshots {
		snapshots += n
	}
	for _, n := range s.updates {
		updates += n
	}
	return snapshots, updates
}

package memorystore

import (
	"sync"

	"cbcollector/internal/marketdata"
)

// MemoryQuoteStore keeps the latest top-of-book quote per symbol.
type MemoryQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]marketdata.BookTicker
}

func NewQuoteStore() *MemoryQuoteStore {
	return &MemoryQuoteStore{
		quotes: make(map[string]marketdata.BookTicker),
	}
}

func (s *MemoryQuoteStore) Set(q marketdata.BookTicker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.Symbol] = q
}

func (s *MemoryQuoteStore) Get(symbol string) (marketdata.BookTicker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[symbol]
	return q, ok
}

func (s *MemoryQuoteStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}

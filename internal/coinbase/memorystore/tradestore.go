package memorystore

import (
	"sync"

	"cbcollector/internal/marketdata"
)

type MemoryTradeStore struct {
	globalMu sync.RWMutex
	data     map[string]*symbolTradeStore
}

type symbolTradeStore struct {
	mu     sync.Mutex
	trades []marketdata.Trade
}

func NewTradeStore() *MemoryTradeStore {
	return &MemoryTradeStore{
		data: make(map[string]*symbolTradeStore),
	}
}

func (s *MemoryTradeStore) Add(t marketdata.Trade) {
	// Fast path: lock per-symbol store only
	s.globalMu.RLock()
	store, ok := s.data[t.Symbol]
	s.globalMu.RUnlock()

	if !ok {
		// Need to initialize new symbol store (exclusive lock)
		s.globalMu.Lock()
		if store, ok = s.data[t.Symbol]; !ok {
			store = &symbolTradeStore{}
			s.data[t.Symbol] = store
		}
		s.globalMu.Unlock()
	}

	// Per-symbol locking
	store.mu.Lock()
	store.trades = append(store.trades, t)
	store.mu.Unlock()
}

func (s *MemoryTradeStore) GetBySymbol(symbol string) []marketdata.Trade {
	s.globalMu.RLock()
	store, ok := s.data[symbol]
	s.globalMu.RUnlock()
	if !ok {
		return nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	cp := make([]marketdata.Trade, len(store.trades))
	copy(cp, store.trades)
	return cp
}

func (s *MemoryTradeStore) GetAll() map[string][]marketdata.Trade {
	s.globalMu.RLock()
	defer s.globalMu.RUnlock()

	result := make(map[string][]marketdata.Trade, len(s.data))
	for sym, store := range s.data {
		store.mu.Lock()
		cp := make([]marketdata.Trade, len(store.trades))
		copy(cp, store.trades)
		store.mu.Unlock()
		result[sym] = cp
	}
	return result
}

// CountAll returns the total number of trades stored across all symbols.
func (s *MemoryTradeStore) CountAll() int {
	s.globalMu.RLock()
	defer s.globalMu.RUnlock()

	total := 0
	for _, store := range s.data {
		store.mu.Lock()
		total += len(store.trades)
		store.mu.Unlock()
	}
	return total
}

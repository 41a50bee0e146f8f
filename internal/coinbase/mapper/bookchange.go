package mapper

import (
	"math"
	"time"

	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/marketdata"
)

// BookChangeMapper converts Coinbase snapshot and l2update messages into
// normalized book changes.
//
// Stateful: it keeps the last valid exchange timestamp per symbol.
// Coinbase occasionally emits an epoch-origin time string on l2update
// messages whose content is still valid; such updates reuse the cached
// timestamp instead of being dropped. Snapshots never touch the cache.
// One instance per feed connection; calls must be externally serialized.
type BookChangeMapper struct {
	exchange      string
	lastValidTime map[string]exchangeTime
}

func NewBookChangeMapper(exchange string) *BookChangeMapper {
	return &BookChangeMapper{
		exchange:      exchange,
		lastValidTime: make(map[string]exchangeTime),
	}
}

func (m *BookChangeMapper) CanHandle(msg *stream.Message) bool {
	return msg.Type == stream.TypeSnapshot || msg.Type == stream.TypeL2Update
}

func (m *BookChangeMapper) GetFilters(symbols []string) []Filter {
	return []Filter{{Channel: ChannelLevel2, Symbols: normalizeSymbols(symbols)}}
}

func (m *BookChangeMapper) Map(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	if msg.Type == stream.TypeSnapshot {
		return m.mapSnapshot(msg, localTimestamp)
	}
	return m.mapUpdate(msg, localTimestamp)
}

func (m *BookChangeMapper) mapSnapshot(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	ts := localTimestamp
	micro := 0
	if msg.Time != "" {
		if et, ok := parseExchangeTime(msg.Time); ok {
			ts = et.ts
			micro = et.micro
		}
	}

	change := &marketdata.BookChange{
		Exchange:       m.exchange,
		Symbol:         msg.ProductID,
		IsSnapshot:     true,
		Bids:           snapshotLevels(msg.Bids),
		Asks:           snapshotLevels(msg.Asks),
		Timestamp:      ts,
		TimestampMicro: micro,
		LocalTimestamp: localTimestamp,
	}
	return []marketdata.Event{change}
}

// mapUpdate normalizes one l2update. A valid exchange timestamp is used
// and stored as the symbol's last known-good time. An invalid timestamp
// reuses the cached one verbatim without updating the cache; if no cached
// entry exists yet the update is suppressed entirely, since assigning
// receipt time would break exchange-time ordering for consumers.
func (m *BookChangeMapper) mapUpdate(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	et, ok := parseExchangeTime(msg.Time)
	if ok {
		m.lastValidTime[msg.ProductID] = et
	} else {
		cached, exists := m.lastValidTime[msg.ProductID]
		if !exists {
			return nil
		}
		et = cached
	}

	var bids, asks []marketdata.BookLevel
	for _, c := range msg.Changes {
		if len(c) < 3 {
			continue
		}
		level := marketdata.BookLevel{Price: toFloat(c[1]), Amount: toFloat(c[2])}
		// The side tag names the resting side being updated; unlike
		// trades it is not inverted. An amount of 0 passes through.
		switch c[0] {
		case "buy":
			bids = append(bids, level)
		case "sell":
			asks = append(asks, level)
		}
	}

	change := &marketdata.BookChange{
		Exchange:       m.exchange,
		Symbol:         msg.ProductID,
		IsSnapshot:     false,
		Bids:           bids,
		Asks:           asks,
		Timestamp:      et.ts,
		TimestampMicro: et.micro,
		LocalTimestamp: localTimestamp,
	}
	return []marketdata.Event{change}
}

// snapshotLevels maps raw [price, amount] pairs to book levels, dropping
// levels whose amount is NaN or negative. Order is preserved.
func snapshotLevels(raw [][]string) []marketdata.BookLevel {
	var levels []marketdata.BookLevel
	for _, l := range raw {
		if len(l) < 2 {
			continue
		}
		amount := toFloat(l[1])
		if math.IsNaN(amount) || amount < 0 {
			continue
		}
		levels = append(levels, marketdata.BookLevel{Price: toFloat(l[0]), Amount: amount})
	}
	return levels
}

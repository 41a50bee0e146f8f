package mapper

import (
	"time"

	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/marketdata"
)

// BookTickerMapper converts Coinbase ticker messages into normalized
// top-of-book quotes. Stateless.
type BookTickerMapper struct {
	exchange string
}

func NewBookTickerMapper(exchange string) *BookTickerMapper {
	return &BookTickerMapper{exchange: exchange}
}

func (m *BookTickerMapper) CanHandle(msg *stream.Message) bool {
	return msg.Type == stream.TypeTicker
}

func (m *BookTickerMapper) GetFilters(symbols []string) []Filter {
	return []Filter{{Channel: ChannelTicker, Symbols: normalizeSymbols(symbols)}}
}

// Map produces exactly one BookTicker per ticker message. When the message
// carries no time field, or the time parses to a negative epoch value, the
// event timestamp falls back to localTimestamp wholesale with no
// microsecond remainder.
func (m *BookTickerMapper) Map(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	ts := localTimestamp
	micro := 0
	if msg.Time != "" {
		if et, ok := parseExchangeTime(msg.Time); ok {
			ts = et.ts
			micro = et.micro
		}
	}

	ticker := &marketdata.BookTicker{
		Exchange:       m.exchange,
		Symbol:         msg.ProductID,
		Timestamp:      ts,
		TimestampMicro: micro,
		LocalTimestamp: localTimestamp,
	}
	if msg.BestBid != "" {
		ticker.BidPrice = floatPtr(msg.BestBid)
	}
	if msg.BestBidSize != "" {
		ticker.BidAmount = floatPtr(msg.BestBidSize)
	}
	if msg.BestAsk != "" {
		ticker.AskPrice = floatPtr(msg.BestAsk)
	}
	if msg.BestAskSize != "" {
		ticker.AskAmount = floatPtr(msg.BestAskSize)
	}
	return []marketdata.Event{ticker}
}

func floatPtr(s string) *float64 {
	v := toFloat(s)
	return &v
}

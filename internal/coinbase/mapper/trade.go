package mapper

import (
	"strconv"
	"time"

	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/marketdata"
)

// mappedTradeFields are dropped from the exchange-specific pass-through bag.
var mappedTradeFields = []string{"type", "trade_id", "product_id", "size", "price", "side"}

// TradeMapper converts Coinbase match messages into normalized trades.
// Stateless.
type TradeMapper struct {
	exchange string
}

func NewTradeMapper(exchange string) *TradeMapper {
	return &TradeMapper{exchange: exchange}
}

func (m *TradeMapper) CanHandle(msg *stream.Message) bool {
	return msg.Type == stream.TypeMatch
}

func (m *TradeMapper) GetFilters(symbols []string) []Filter {
	return []Filter{{Channel: ChannelMatches, Symbols: normalizeSymbols(symbols)}}
}

// Map produces exactly one Trade per match message. Malformed numeric
// strings parse to NaN and pass through; validation happens downstream.
func (m *TradeMapper) Map(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	et, _ := parseExchangeTime(msg.Time)

	trade := &marketdata.Trade{
		Exchange:         m.exchange,
		Symbol:           msg.ProductID,
		ID:               strconv.FormatInt(msg.TradeID, 10),
		Price:            toFloat(msg.Price),
		Amount:           toFloat(msg.Size),
		Side:             takerSide(msg.Side),
		Timestamp:        et.ts,
		TimestampMicro:   et.micro,
		LocalTimestamp:   localTimestamp,
		ExchangeSpecific: exchangeSpecific(msg),
	}
	return []marketdata.Event{trade}
}

// takerSide inverts the side tag of a match message. The exchange reports
// the resting (maker) order's side; consumers expect the aggressor
// direction, which is the opposite.
func takerSide(makerSide string) marketdata.Side {
	if makerSide == "sell" {
		return marketdata.SideBuy
	}
	return marketdata.SideSell
}

// exchangeSpecific builds the pass-through bag: the raw message minus the
// fields already covered by the normalized Trade.
func exchangeSpecific(msg *stream.Message) map[string]any {
	fields := msg.Fields()
	if fields == nil {
		return nil
	}
	for _, k := range mappedTradeFields {
		delete(fields, k)
	}
	return fields
}

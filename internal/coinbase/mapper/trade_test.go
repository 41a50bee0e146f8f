package mapper

import (
	"math"
	"testing"
	"time"

	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/marketdata"
)

func decodeMsg(t *testing.T, payload string) *stream.Message {
	t.Helper()
	msg, err := stream.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	return msg
}

// go test -v --run TestTradeMapperSideInversion
func TestTradeMapperSideInversion(t *testing.T) {
	m := NewTradeMapper("coinbase")
	local := time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)

	cases := []struct {
		makerSide string
		want      marketdata.Side
	}{
		{"sell", marketdata.SideBuy},
		{"buy", marketdata.SideSell},
	}

	for _, c := range cases {
		msg := decodeMsg(t, `{"type":"match","trade_id":42,"product_id":"BTC-USD",
			"time":"2024-01-01T00:00:00.123456Z","price":"50000.00","size":"1.5","side":"`+c.makerSide+`"}`)

		events := m.Map(msg, local)
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		trade, ok := events[0].(*marketdata.Trade)
		if !ok {
			t.Fatalf("expected *marketdata.Trade, got %T", events[0])
		}
		if trade.Side != c.want {
			t.Errorf("maker side %q: expected taker side %q, got %q", c.makerSide, c.want, trade.Side)
		}
	}
}

// go test -v --run TestTradeMapperFields
func TestTradeMapperFields(t *testing.T) {
	m := NewTradeMapper("coinbase")
	local := time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)

	msg := decodeMsg(t, `{"type":"match","trade_id":42,"product_id":"BTC-USD",
		"time":"2024-01-01T00:00:00.123456Z","price":"50000.00","size":"1.5","side":"sell",
		"sequence":12345,"maker_order_id":"abc"}`)

	events := m.Map(msg, local)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	trade := events[0].(*marketdata.Trade)

	if trade.Exchange != "coinbase" {
		t.Errorf("unexpected exchange: %s", trade.Exchange)
	}
	if trade.Symbol != "BTC-USD" {
		t.Errorf("unexpected symbol: %s", trade.Symbol)
	}
	if trade.ID != "42" {
		t.Errorf("expected trade id \"42\", got %q", trade.ID)
	}
	if trade.Price != 50000.0 || trade.Amount != 1.5 {
		t.Errorf("unexpected price/amount: %v/%v", trade.Price, trade.Amount)
	}

	wantTs := time.Date(2024, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
	if !trade.Timestamp.Equal(wantTs) {
		t.Errorf("expected timestamp %v, got %v", wantTs, trade.Timestamp)
	}
	if trade.TimestampMicro != 456 {
		t.Errorf("expected micro remainder 456, got %d", trade.TimestampMicro)
	}
	if !trade.LocalTimestamp.Equal(local) {
		t.Errorf("unexpected local timestamp: %v", trade.LocalTimestamp)
	}
}

// go test -v --run TestTradeMapperExchangeSpecific
func TestTradeMapperExchangeSpecific(t *testing.T) {
	m := NewTradeMapper("coinbase")

	msg := decodeMsg(t, `{"type":"match","trade_id":42,"product_id":"BTC-USD",
		"time":"2024-01-01T00:00:00Z","price":"50000.00","size":"1.5","side":"sell",
		"sequence":12345,"maker_order_id":"abc","taker_order_id":"def"}`)

	trade := m.Map(msg, time.Now().UTC())[0].(*marketdata.Trade)

	// Mapped fields must not appear in the pass-through bag.
	for _, k := range []string{"type", "trade_id", "product_id", "size", "price", "side"} {
		if _, ok := trade.ExchangeSpecific[k]; ok {
			t.Errorf("mapped field %q leaked into exchange-specific bag", k)
		}
	}
	// Unmapped fields (including time) pass through.
	for _, k := range []string{"time", "sequence", "maker_order_id", "taker_order_id"} {
		if _, ok := trade.ExchangeSpecific[k]; !ok {
			t.Errorf("expected field %q in exchange-specific bag", k)
		}
	}
}

// go test -v --run TestTradeMapperMalformedNumerics
func TestTradeMapperMalformedNumerics(t *testing.T) {
	m := NewTradeMapper("coinbase")

	msg := decodeMsg(t, `{"type":"match","trade_id":1,"product_id":"BTC-USD",
		"time":"2024-01-01T00:00:00Z","price":"not-a-price","size":"1.5","side":"buy"}`)

	trade := m.Map(msg, time.Now().UTC())[0].(*marketdata.Trade)
	if !math.IsNaN(trade.Price) {
		t.Errorf("expected NaN price for malformed input, got %v", trade.Price)
	}
	if trade.Amount != 1.5 {
		t.Errorf("expected amount 1.5, got %v", trade.Amount)
	}
}

// go test -v --run TestTradeMapperRecognition
func TestTradeMapperRecognition(t *testing.T) {
	m := NewTradeMapper("coinbase")

	if !m.CanHandle(&stream.Message{Type: stream.TypeMatch}) {
		t.Error("expected match message to be handled")
	}
	for _, typ := range []string{stream.TypeTicker, stream.TypeSnapshot, stream.TypeL2Update, "subscriptions"} {
		if m.CanHandle(&stream.Message{Type: typ}) {
			t.Errorf("did not expect %q message to be handled", typ)
		}
	}
}

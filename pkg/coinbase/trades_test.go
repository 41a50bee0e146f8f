package coinbase

import (
	"testing"
	"time"

	"cbcollector/internal/marketdata"
)

// go test -v --run TestParseTradeList
func TestParseTradeList(t *testing.T) {
	raw := []RESTTrade{
		{Time: "2024-01-01T00:00:00.123456Z", TradeID: 42, Price: "50000.00", Size: "1.5", Side: "sell"},
		{Time: "not-a-time", TradeID: 43, Price: "50001.00", Size: "1.0", Side: "buy"},
		{Time: "2024-01-01T00:00:01Z", TradeID: 44, Price: "garbage", Size: "1.0", Side: "buy"},
		{Time: "2024-01-01T00:00:02Z", TradeID: 45, Price: "50002.00", Size: "0.25", Side: "buy"},
	}

	trades := ParseTradeList("BTC-USD", raw)
	if len(trades) != 2 {
		t.Fatalf("expected 2 valid trades, got %d", len(trades))
	}

	first := trades[0]
	if first.ID != "42" || first.Symbol != "BTC-USD" || first.Exchange != ExchangeName {
		t.Errorf("unexpected identity fields: %+v", first)
	}
	// Maker "sell" means the taker bought.
	if first.Side != marketdata.SideBuy {
		t.Errorf("expected taker side buy, got %s", first.Side)
	}
	wantTs := time.Date(2024, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
	if !first.Timestamp.Equal(wantTs) || first.TimestampMicro != 456 {
		t.Errorf("unexpected timestamp %v (micro %d)", first.Timestamp, first.TimestampMicro)
	}

	if trades[1].Side != marketdata.SideSell {
		t.Errorf("expected taker side sell, got %s", trades[1].Side)
	}
}

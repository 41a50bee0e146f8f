package mapper

import (
	"reflect"
	"testing"
	"time"

	"cbcollector/internal/marketdata"
)

// go test -v --run TestDispatcherRouting
func TestDispatcherRouting(t *testing.T) {
	d := NewDispatcher("coinbase")
	local := time.Now().UTC()

	cases := []struct {
		payload string
		want    marketdata.Kind
	}{
		{`{"type":"match","trade_id":1,"product_id":"BTC-USD","time":"2024-01-01T00:00:00Z","price":"1","size":"1","side":"buy"}`, marketdata.KindTrade},
		{`{"type":"snapshot","product_id":"BTC-USD","bids":[],"asks":[]}`, marketdata.KindBookChange},
		{`{"type":"l2update","product_id":"BTC-USD","time":"2024-01-01T00:00:00Z","changes":[]}`, marketdata.KindBookChange},
		{`{"type":"ticker","product_id":"BTC-USD","time":"2024-01-01T00:00:00Z","best_bid":"1"}`, marketdata.KindBookTicker},
	}

	for _, c := range cases {
		events := d.Dispatch(decodeMsg(t, c.payload), local)
		if len(events) != 1 {
			t.Fatalf("expected 1 event for %s, got %d", c.payload, len(events))
		}
		if events[0].Kind() != c.want {
			t.Errorf("expected kind %q, got %q", c.want, events[0].Kind())
		}
	}
}

// go test -v --run TestDispatcherIgnoresUnknownMessages
func TestDispatcherIgnoresUnknownMessages(t *testing.T) {
	d := NewDispatcher("coinbase")

	for _, payload := range []string{
		`{"type":"subscriptions","channels":[]}`,
		`{"type":"heartbeat","product_id":"BTC-USD"}`,
		`{"type":"error","message":"bad request"}`,
	} {
		if events := d.Dispatch(decodeMsg(t, payload), time.Now().UTC()); events != nil {
			t.Errorf("expected no events for %s, got %v", payload, events)
		}
	}
}

// go test -v --run TestDispatcherFilters
func TestDispatcherFilters(t *testing.T) {
	d := NewDispatcher("coinbase")

	filters := d.Filters([]string{"btc-usd", "eth-usd"})
	want := []Filter{
		{Channel: ChannelMatches, Symbols: []string{"BTC-USD", "ETH-USD"}},
		{Channel: ChannelLevel2, Symbols: []string{"BTC-USD", "ETH-USD"}},
		{Channel: ChannelTicker, Symbols: []string{"BTC-USD", "ETH-USD"}},
	}
	if !reflect.DeepEqual(filters, want) {
		t.Errorf("unexpected filters: %+v", filters)
	}

	// Idempotence: a second call yields identical descriptors.
	again := d.Filters([]string{"btc-usd", "eth-usd"})
	if !reflect.DeepEqual(filters, again) {
		t.Errorf("filters differ across calls: %+v vs %+v", filters, again)
	}

	// Normalization is stable under repeated application.
	renormalized := d.Filters(filters[0].Symbols)
	if !reflect.DeepEqual(filters, renormalized) {
		t.Errorf("normalization not stable: %+v vs %+v", filters, renormalized)
	}
}

// go test -v --run TestDispatcherFiltersNoSymbols
func TestDispatcherFiltersNoSymbols(t *testing.T) {
	d := NewDispatcher("coinbase")

	for _, f := range d.Filters(nil) {
		if f.Symbols != nil {
			t.Errorf("expected nil symbols for channel %s, got %v", f.Channel, f.Symbols)
		}
	}
}

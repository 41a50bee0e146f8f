package coinbase

import (
	"testing"

	"cbcollector/internal/coinbase/mapper"
)

// go test -v --run TestBuildSubscribeRequest
func TestBuildSubscribeRequest(t *testing.T) {
	filters := []mapper.Filter{
		{Channel: "matches", Symbols: []string{"BTC-USD", "ETH-USD"}},
		{Channel: "level2", Symbols: nil},
	}

	req := buildSubscribeRequest(filters)
	if req.Type != "subscribe" {
		t.Errorf("unexpected request type: %s", req.Type)
	}
	if len(req.Channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(req.Channels))
	}
	if req.Channels[0].Name != "matches" || len(req.Channels[0].ProductIDs) != 2 {
		t.Errorf("unexpected first channel: %+v", req.Channels[0])
	}
	// No symbol restriction subscribes the channel for all products.
	if req.Channels[1].ProductIDs != nil {
		t.Errorf("expected nil product ids, got %v", req.Channels[1].ProductIDs)
	}
}

package coinbase

import (
	"context"
	"testing"
	"time"
)

// go test -v --run TestGetUSDProducts
func TestGetUSDProducts(t *testing.T) {
	// Create the REST client with real base URL
	client := NewRESTClient("https://api.exchange.coinbase.com", 10*time.Second)

	// Context with timeout for safety
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := client.GetUSDProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) == 0 {
		t.Fatal("expected non-empty product list, got 0")
	}

	// Optional: print first few products for visual confirmation
	t.Logf("got %d USD products (example: %v)", len(products), products[:min(len(products), 5)])
}

// go test -v --run TestGetRecentTrades
func TestGetRecentTrades(t *testing.T) {
	client := NewRESTClient("https://api.exchange.coinbase.com", 10*time.Second)

	// Context with timeout for safety
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trades, err := client.GetRecentTrades(ctx, "BTC-USD", 100)
	if err != nil {
		t.Fatalf("GetRecentTrades returned error: %v", err)
	}

	if len(trades) == 0 {
		t.Error("expected non-empty trade list")
	}
	t.Logf("received %d trades (example: %+v)", len(trades), trades[0])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cbcollector/internal/marketdata"
)

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// GetUSDProducts fetches tradable USD-quoted products (e.g., "BTC-USD").
func (c *RESTClient) GetUSDProducts(ctx context.Context) ([]string, error) {
	endpoint := c.baseURL + "/products"

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coinbase error: %s", body)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// Collect online USD-quoted products
	seen := map[string]bool{}
	var ids []string
	for _, p := range products {
		if p.QuoteCurrency == "USD" && p.Status == "online" && !p.TradingDisabled && !seen[p.ID] {
			ids = append(ids, p.ID)
			seen[p.ID] = true
		}
	}

	return ids, nil
}

// GetRecentTrades fetches the latest trades for a product and returns them
// normalized. Limit is capped by the exchange at 1000.
func (c *RESTClient) GetRecentTrades(ctx context.Context, productID string, limit int) ([]marketdata.Trade, error) {
	endpoint := fmt.Sprintf("%s/products/%s/trades?limit=%d", c.baseURL, productID, limit)

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coinbase error: %s", body)
	}

	var raw []RESTTrade
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return ParseTradeList(productID, raw), nil
}

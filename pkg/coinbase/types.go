package coinbase

// Product represents one entry of the Coinbase Exchange REST products list.
// The REST API returns a plain JSON array with no response envelope.
type Product struct {
	ID              string `json:"id"`             // e.g., "BTC-USD"
	BaseCurrency    string `json:"base_currency"`  // e.g., "BTC"
	QuoteCurrency   string `json:"quote_currency"` // e.g., "USD"
	Status          string `json:"status"`         // "online" when tradable
	TradingDisabled bool   `json:"trading_disabled"`
}

// RESTTrade represents one entry of GET /products/{id}/trades.
// Side carries the maker (resting) order's side, same as the WebSocket feed.
type RESTTrade struct {
	Time    string `json:"time"`     // ISO-8601 timestamp
	TradeID int64  `json:"trade_id"` // Exchange trade identifier
	Price   string `json:"price"`    // String-encoded price
	Size    string `json:"size"`     // String-encoded size
	Side    string `json:"side"`     // "buy" or "sell" (maker side)
}

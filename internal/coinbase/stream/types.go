package stream

import "encoding/json"

// Message type discriminants used on the Coinbase WebSocket feed.
const (
	TypeMatch    = "match"    // A trade occurred between two orders
	TypeSnapshot = "snapshot" // Full order book state for a product
	TypeL2Update = "l2update" // Incremental order book update
	TypeTicker   = "ticker"   // Top-of-book quote update
)

// Message represents a decoded WebSocket message from the Coinbase feed.
// One struct covers the four payload shapes; fields not present in a given
// message type keep their zero value.
type Message struct {
	Type      string `json:"type"`       // Message discriminant, e.g., "match", "l2update"
	ProductID string `json:"product_id"` // Trading symbol (e.g., "BTC-USD")
	Time      string `json:"time"`       // ISO-8601 timestamp with sub-millisecond precision; may be absent

	// match fields
	TradeID int64  `json:"trade_id"` // Exchange-assigned trade identifier
	Price   string `json:"price"`    // String-encoded trade price
	Size    string `json:"size"`     // String-encoded trade size
	Side    string `json:"side"`     // Maker (resting) order side: "buy" or "sell"

	// snapshot fields: [price, amount] pairs per level
	Bids [][]string `json:"bids"`
	Asks [][]string `json:"asks"`

	// l2update fields: [side, price, amount] triples
	Changes [][]string `json:"changes"`

	// ticker fields; empty string means the exchange omitted the field
	BestBid     string `json:"best_bid"`
	BestBidSize string `json:"best_bid_size"`
	BestAsk     string `json:"best_ask"`
	BestAskSize string `json:"best_ask_size"`

	raw json.RawMessage
}

// Decode parses a raw WebSocket payload into a Message, retaining the raw
// bytes for exchange-specific field pass-through.
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	msg.raw = data
	return &msg, nil
}

// Fields re-decodes the retained raw payload into a generic map so callers
// can extract fields the typed struct does not cover. Returns nil when the
// message was not produced by Decode or the payload cannot be re-decoded.
func (m *Message) Fields() map[string]any {
	if len(m.raw) == 0 {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(m.raw, &fields); err != nil {
		return nil
	}
	return fields
}

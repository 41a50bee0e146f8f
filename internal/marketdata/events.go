package marketdata

import "time"

// Kind identifies the normalized event type carried by an Event.
type Kind string

const (
	KindTrade      Kind = "trade"
	KindBookChange Kind = "book_change"
	KindBookTicker Kind = "book_ticker"
)

// Event is implemented by all normalized market data events.
type Event interface {
	Kind() Kind
}

// Side represents the direction of a trade or book level.
// For trades it is the taker (aggressor) side, not the maker side.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Trade models a single executed trade normalized from an exchange feed.
type Trade struct {
	Exchange string  `json:"exchange"` // Exchange identifier, e.g., "coinbase"
	Symbol   string  `json:"symbol"`   // Trading symbol (e.g., "BTC-USD")
	ID       string  `json:"id"`       // Exchange trade identifier
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
	Side     Side    `json:"side"` // Taker direction ("buy" or "sell")

	// Timestamp is the exchange event time at millisecond resolution.
	// TimestampMicro carries the sub-millisecond remainder (0-999) the
	// exchange encodes in its timestamp string; together they reconstruct
	// full microsecond precision.
	Timestamp      time.Time `json:"timestamp"`
	TimestampMicro int       `json:"timestampMicro"`

	// LocalTimestamp is the receipt time supplied by the transport layer.
	LocalTimestamp time.Time `json:"localTimestamp"`

	// ExchangeSpecific holds raw message fields not covered by the
	// normalized ones, passed through unmodified for advanced consumers.
	ExchangeSpecific map[string]any `json:"exchangeSpecific,omitempty"`
}

func (t *Trade) Kind() Kind { return KindTrade }

// BookLevel holds a price/amount pair for one order book price level.
// In an incremental BookChange an Amount of 0 is forwarded as-is; the
// "remove level" interpretation is left to consumers.
type BookLevel struct {
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// BookChange models an order book snapshot or incremental update.
// For a snapshot the levels represent the full visible book; for an
// incremental update they represent deltas.
type BookChange struct {
	Exchange   string      `json:"exchange"`
	Symbol     string      `json:"symbol"`
	IsSnapshot bool        `json:"isSnapshot"`
	Bids       []BookLevel `json:"bids"`
	Asks       []BookLevel `json:"asks"`

	Timestamp      time.Time `json:"timestamp"`
	TimestampMicro int       `json:"timestampMicro"`
	LocalTimestamp time.Time `json:"localTimestamp"`
}

func (b *BookChange) Kind() Kind { return KindBookChange }

// BookTicker models a top-of-book quote. Any of the price/amount fields
// may be nil when the exchange omitted them; nil means "unknown", never
// "no liquidity".
type BookTicker struct {
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`

	BidPrice  *float64 `json:"bidPrice,omitempty"`
	BidAmount *float64 `json:"bidAmount,omitempty"`
	AskPrice  *float64 `json:"askPrice,omitempty"`
	AskAmount *float64 `json:"askAmount,omitempty"`

	Timestamp      time.Time `json:"timestamp"`
	TimestampMicro int       `json:"timestampMicro"`
	LocalTimestamp time.Time `json:"localTimestamp"`
}

func (b *BookTicker) Kind() Kind { return KindBookTicker }

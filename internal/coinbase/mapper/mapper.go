package mapper

import (
	"strings"
	"time"

	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/marketdata"
)

// Subscription channel names produced by GetFilters. The WebSocket client
// translates these into the exchange subscribe request.
const (
	ChannelMatches = "matches"
	ChannelLevel2  = "level2"
	ChannelTicker  = "ticker"
)

// Filter describes one subscription: a channel and an optional
// case-normalized symbol set. Nil Symbols means no symbol restriction.
type Filter struct {
	Channel string   `json:"channel"`
	Symbols []string `json:"symbols,omitempty"`
}

// Mapper normalizes one exchange message type into zero or more events.
type Mapper interface {
	// CanHandle reports whether this mapper recognizes the message.
	// It must be side-effect free; the dispatcher tries mappers per message.
	CanHandle(msg *stream.Message) bool

	// GetFilters builds the subscription filters for the given symbols.
	// Pure function of its argument.
	GetFilters(symbols []string) []Filter

	// Map converts one message into normalized events. All mappers here
	// produce zero or one event per message. Calls into one mapper
	// instance must be externally serialized; mappers do no locking.
	Map(msg *stream.Message, localTimestamp time.Time) []marketdata.Event
}

// Dispatcher owns one instance of each mapper and routes each message to
// the first mapper whose predicate matches. Construct one dispatcher per
// feed connection; the book-change mapper's per-symbol state lives for the
// lifetime of the dispatcher.
type Dispatcher struct {
	mappers []Mapper
}

// NewDispatcher creates a dispatcher with the three Coinbase mappers.
func NewDispatcher(exchange string) *Dispatcher {
	return &Dispatcher{
		mappers: []Mapper{
			NewTradeMapper(exchange),
			NewBookChangeMapper(exchange),
			NewBookTickerMapper(exchange),
		},
	}
}

// Dispatch hands the message to the matching mapper and returns its
// events. Unrecognized messages (subscription acks, heartbeats) yield nil.
func (d *Dispatcher) Dispatch(msg *stream.Message, localTimestamp time.Time) []marketdata.Event {
	for _, m := range d.mappers {
		if m.CanHandle(msg) {
			return m.Map(msg, localTimestamp)
		}
	}
	return nil
}

// Filters collects the subscription filters of all mappers for the given
// symbol list.
func (d *Dispatcher) Filters(symbols []string) []Filter {
	var filters []Filter
	for _, m := range d.mappers {
		filters = append(filters, m.GetFilters(symbols)...)
	}
	return filters
}

// normalizeSymbols uppercases a symbol list for subscription filters.
// Nil input stays nil (no symbol restriction). Stable under repeated
// application.
func normalizeSymbols(symbols []string) []string {
	if symbols == nil {
		return nil
	}
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = strings.ToUpper(s)
	}
	return out
}

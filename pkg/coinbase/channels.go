package coinbase

import "fmt"

// Channel is a WebSocket subscription channel name used in subscribe requests.
type Channel string

// ChannelMeta holds the wire name and a short description for a Channel.
type ChannelMeta struct {
	WireName    string
	Description string
}

const (
	ChannelMatches   Channel = "matches"
	ChannelLevel2    Channel = "level2"
	ChannelTicker    Channel = "ticker"
	ChannelHeartbeat Channel = "heartbeat"
)

// validChannels maps Channel to its wire representation
var validChannels = map[Channel]ChannelMeta{
	ChannelMatches:   {WireName: "matches", Description: "executed trades"},
	ChannelLevel2:    {WireName: "level2", Description: "order book snapshot and incremental updates"},
	ChannelTicker:    {WireName: "ticker", Description: "top-of-book quotes"},
	ChannelHeartbeat: {WireName: "heartbeat", Description: "per-product liveness messages"},
}

// IsValid checks if the Channel is a valid predefined subscription channel
func (c Channel) IsValid() bool {
	_, ok := validChannels[c]
	return ok
}

// ParseChannel parses a string into a valid ChannelMeta
func ParseChannel(s string) (ChannelMeta, error) {
	meta, ok := validChannels[Channel(s)]
	if !ok {
		return ChannelMeta{}, fmt.Errorf("invalid Channel: %s", s)
	}
	return meta, nil
}

package coinbase

import (
	"fmt"
	"time"

	"cbcollector/internal/coinbase/mapper"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSClient handles the WebSocket connection to Coinbase and message routing.
type WSClient struct {
	url     string
	filters []mapper.Filter
	conn    *websocket.Conn
	handler func([]byte)
	logger  *zap.Logger
}

// subscribeChannel is one channel entry of a subscribe request. ProductIDs
// is omitted when the filter carries no symbol restriction, which
// subscribes the channel for all products.
type subscribeChannel struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids,omitempty"`
}

type subscribeRequest struct {
	Type     string             `json:"type"`
	Channels []subscribeChannel `json:"channels"`
}

// NewWSClient creates a new WebSocket client with the given URL and logger.
func NewWSClient(url string, logger *zap.Logger) *WSClient {
	return &WSClient{
		url:    url,
		logger: logger,
	}
}

// SetMessageHandler sets the function to handle incoming messages.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// Connect establishes the WebSocket connection and subscribes to the
// channels described by the given filters. It does not start the listener.
func (c *WSClient) Connect(filters []mapper.Filter) error {

	// Reject filters naming channels the exchange does not offer
	for _, f := range filters {
		if !Channel(f.Channel).IsValid() {
			return fmt.Errorf("unknown subscription channel: %s", f.Channel)
		}
	}

	// Attempt to connect to the WebSocket server
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		return err
	}
	c.conn = conn
	c.logger.Info("WebSocket connected", zap.String("url", c.url))

	// Store filters for future reconnects
	c.filters = filters

	if err := conn.WriteJSON(buildSubscribeRequest(filters)); err != nil {
		c.logger.Error("Failed to send subscription", zap.Error(err))
		return err
	}

	return nil
}

func (c *WSClient) Listen() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.logger.Error("WebSocket read error", zap.Error(err))

			// Retry reconnecting indefinitely
			for {
				time.Sleep(3 * time.Second)
				if err := c.reconnectAndResubscribe(); err != nil {
					c.logger.Warn("Retrying reconnect...")
					continue
				}
				c.logger.Info("Reconnected successfully")
				break
			}
			continue // Start listening again with the new connection
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

func (c *WSClient) reconnectAndResubscribe() error {
	// Attempt to connect to the WebSocket server
	newConn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return err
	}

	// Close the old connection if it exists
	if c.conn != nil {
		_ = c.conn.Close()
	}

	// Replace the current connection
	c.conn = newConn

	// Re-send the subscription built from the stored filters
	if err := c.conn.WriteJSON(buildSubscribeRequest(c.filters)); err != nil {
		return fmt.Errorf("websocket subscribe failed: %w", err)
	}

	return nil
}

// buildSubscribeRequest translates mapper filters into the Coinbase
// subscribe message, e.g.
// {"type":"subscribe","channels":[{"name":"matches","product_ids":["BTC-USD"]}]}.
func buildSubscribeRequest(filters []mapper.Filter) subscribeRequest {
	req := subscribeRequest{Type: "subscribe"}
	for _, f := range filters {
		req.Channels = append(req.Channels, subscribeChannel{
			Name:       f.Channel,
			ProductIDs: f.Symbols,
		})
	}
	return req
}

package stream

import (
	"context"
	"time"

	"cbcollector/internal/coinbase/memorystore"
	"cbcollector/internal/marketdata"
	"cbcollector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// EventDispatcher routes a decoded message to whichever mapper recognizes
// it and returns the normalized events. Satisfied by mapper.Dispatcher.
type EventDispatcher interface {
	Dispatch(msg *Message, localTimestamp time.Time) []marketdata.Event
}

// MakeMessageHandler returns a function that handles incoming WebSocket
// messages by normalizing them through the mapper dispatcher and routing
// the resulting events to the in-memory stores and Postgres.
func MakeMessageHandler(logger *zap.Logger, dispatcher EventDispatcher,
	tradeStore *memorystore.MemoryTradeStore, quoteStore *memorystore.MemoryQuoteStore,
	bookStats *memorystore.MemoryBookStatsStore, postgresClient *postgres.PostgresClient) func(msg []byte) {
	return func(msg []byte) {
		// Step 1: Stamp receipt time and decode the payload
		localTimestamp := time.Now().UTC()
		parsed, err := Decode(msg)
		if err != nil {
			logger.Warn("failed to decode message", zap.Error(err))
			return
		}

		// Step 2: Normalize. Subscription acks and heartbeats match no
		// mapper and yield no events.
		events := dispatcher.Dispatch(parsed, localTimestamp)

		// Step 3: Route normalized events
		for _, ev := range events {
			switch e := ev.(type) {
			case *marketdata.Trade:
				// Insert trade into Memory
				tradeStore.Add(*e)

				// Insert trade record into Postgres
				// context for DB insert (short timeout)
				dbCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				err := postgresClient.InsertTrade(dbCtx, postgres.ToTradeRecord(*e))
				cancel()
				if err != nil {
					logger.Warn("failed to insert trade record", zap.String("symbol", e.Symbol), zap.Error(err))
				}

			case *marketdata.BookTicker:
				quoteStore.Set(*e)

			case *marketdata.BookChange:
				// Book changes are tallied only; the book itself is not
				// materialized here.
				bookStats.Record(e)
			}
		}
	}
}

package collector

import (
	"context"
	"fmt"
	"time"

	"cbcollector/config"
	"cbcollector/internal/coinbase/mapper"
	"cbcollector/internal/coinbase/memorystore"
	"cbcollector/internal/coinbase/snapshot"
	"cbcollector/internal/coinbase/stream"
	"cbcollector/internal/coinbase/symbolmeta"
	"cbcollector/pkg/coinbase"
	"cbcollector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// StartCollector initializes the data pipeline for Coinbase market data.
// It loads the tradable product list via REST, backfills recent trades,
// and normalizes the WebSocket feed through the mapper dispatcher into
// the in-memory stores and Postgres.
func StartCollector(cfg *config.Config, logger *zap.Logger) error {

	// Initialize PostgreSQL Client
	postgresClient, err := postgres.InitializeAndMigrateTradeRecord(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}

	// Create REST client
	restClient := coinbase.NewRESTClient(cfg.Coinbase.REST.BaseURL, cfg.Coinbase.REST.Timeout)

	// Initialize in-memory symbol store
	symbolStore := memorystore.NewSymbolStore()

	if len(cfg.Coinbase.WS.Symbols) > 0 {
		// Explicit product list from config
		for _, s := range cfg.Coinbase.WS.Symbols {
			symbolStore.Add(s)
		}
	} else {
		// Load product metadata now and refresh it daily at UTC midnight
		loader := &snapshot.ProductLoader{Cfg: *cfg, RestClient: restClient, Logger: logger}
		midnight := &symbolmeta.MidnightLoader{Load: symbolmeta.DefaultLoadFn(loader)}
		midnight.Start(func(ch <-chan string) {
			symbolStore.StartWorker(ch)
		})

		// TODO: wait on the loader instead of sleeping
		time.Sleep(5 * time.Second)
	}

	symbols := symbolStore.GetAll()

	// TODO: Concurrent tasks
	sem := make(chan struct{}, 5) // max 5 concurrent tasks
	for _, symbol := range symbols {
		symbol := symbol // capture
		sem <- struct{}{}

		go func() {
			defer func() { <-sem }()

			var failed bool

			// Context with timeout for safety
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Coinbase.REST.Timeout)
			// fetch recent trades for backfill
			trades, err := restClient.GetRecentTrades(ctx, symbol, 100)
			cancel()
			if err != nil {
				logger.Warn("failed to fetch trades from REST", zap.String("symbol", symbol), zap.Error(err))
				failed = true
				goto LOG_DONE
			}

			for _, trade := range trades {
				// context for DB insert (short timeout)
				dbCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				err = postgresClient.InsertTrade(dbCtx, postgres.ToTradeRecord(trade))
				cancel()
				if err != nil {
					logger.Warn("failed to insert trade into DB", zap.String("symbol", symbol), zap.Error(err))
					failed = true
					continue
				}
			}

		LOG_DONE:
			if failed {
				logger.Warn("backfill finished with errors for symbol", zap.String("symbol", symbol))
			} else {
				logger.Info("backfill completed successfully for symbol", zap.String("symbol", symbol))
			}
		}()
	}

	// One dispatcher per feed connection; it owns the book-change
	// mapper's per-symbol timestamp state.
	dispatcher := mapper.NewDispatcher(coinbase.ExchangeName)

	tradeStore := memorystore.NewTradeStore()
	quoteStore := memorystore.NewQuoteStore()
	bookStats := memorystore.NewBookStatsStore()

	// Initialize WebSocket client
	wsClient := coinbase.NewWSClient(cfg.Coinbase.WS.URL, logger)

	// Register WebSocket message handler
	wsClient.SetMessageHandler(stream.MakeMessageHandler(logger, dispatcher, tradeStore, quoteStore, bookStats, postgresClient))

	// Periodically print stored event counts for visibility
	go func() {
		for {
			snapshots, updates := bookStats.Totals()
			logger.Info("current normalized events",
				zap.Int("trades", tradeStore.CountAll()),
				zap.Int("quoted_symbols", quoteStore.Count()),
				zap.Int("book_snapshots", snapshots),
				zap.Int("book_updates", updates),
			)

			time.Sleep(5 * time.Second)
		}
	}()

	// Connect to WebSocket with the filters built by the mappers
	if err := wsClient.Connect(dispatcher.Filters(symbols)); err != nil {
		return err
	}
	go wsClient.Listen() // explicitly start listener

	return nil
}

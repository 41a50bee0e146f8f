package snapshot

import (
	"context"

	"cbcollector/config"
	"cbcollector/pkg/coinbase"

	"go.uber.org/zap"
)

type ProductLoader struct {
	Cfg        config.Config
	RestClient *coinbase.RESTClient
	Logger     *zap.Logger
}

// LoadProducts fetches tradable USD-quoted products from Coinbase
// and streams their ids into the provided channel.
// The function applies the configured REST timeout to the request.
func (l *ProductLoader) LoadProducts(ch chan<- string) error {
	defer close(ch) // Ensure downstream consumers can exit cleanly

	ctx, cancel := context.WithTimeout(context.Background(), l.Cfg.Coinbase.REST.Timeout)
	defer cancel()

	products, err := l.RestClient.GetUSDProducts(ctx)
	if err != nil {
		l.Logger.Error("failed to load USD products", zap.Error(err))
		return err
	}
	l.Logger.Info("loaded products", zap.Int("count", len(products)))

	for _, product := range products {
		select {
		case ch <- product:
		case <-ctx.Done():
			l.Logger.Warn("product streaming interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		}
	}

	return nil
}

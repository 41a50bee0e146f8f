package coinbase

import (
	"strconv"
	"time"

	"cbcollector/internal/coinbase/mapper"
	"cbcollector/internal/marketdata"
)

// ExchangeName is the exchange identifier stamped on normalized events.
const ExchangeName = "coinbase"

// ParseTradeList converts Coinbase REST trade rows into normalized trades.
// It safely skips rows with an unparseable timestamp or numeric fields; the
// REST history serves as backfill, so partial results are acceptable.
func ParseTradeList(productID string, raw []RESTTrade) []marketdata.Trade {
	now := time.Now().UTC()

	var out []marketdata.Trade
	for _, r := range raw {
		ts, micro, ok := mapper.ParseTimestamp(r.Time)
		if !ok {
			continue
		}
		price, err := strconv.ParseFloat(r.Price, 64)
		if err != nil {
			continue
		}
		size, err := strconv.ParseFloat(r.Size, 64)
		if err != nil {
			continue
		}

		// REST reports the maker side, same as the ws feed; invert to the
		// taker direction to match normalized trades.
		side := marketdata.SideSell
		if r.Side == "sell" {
			side = marketdata.SideBuy
		}

		out = append(out, marketdata.Trade{
			Exchange:       ExchangeName,
			Symbol:         productID,
			ID:             strconv.FormatInt(r.TradeID, 10),
			Price:          price,
			Amount:         size,
			Side:           side,
			Timestamp:      ts,
			TimestampMicro: micro,
			LocalTimestamp: now, // Time of ingestion
		})
	}
	return out
}

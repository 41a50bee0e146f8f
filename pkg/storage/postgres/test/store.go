package storage

type Store interface {
	SaveTrade(trade Trade) error
	SaveQuote(quote Quote) error
}

package storage

type Trade struct {
	Symbol string
	Price  float64
	Amount float64
	Side   string
}

type Quote struct {
	Symbol    string
	BidPrice  float64
	AskPrice  float64
	Timestamp int64
}

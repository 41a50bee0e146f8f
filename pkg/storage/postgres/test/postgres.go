package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) SaveTrade(t Trade) error {
	_, err := p.db.Exec(`INSERT INTO trades (symbol, price, amount, side) VALUES ($1, $2, $3, $4)`, t.Symbol, t.Price, t.Amount, t.Side)
	return err
}

func (p *PostgresStore) SaveQuote(q Quote) error {
	_, err := p.db.Exec(`INSERT INTO quotes (symbol, bid_price, ask_price, timestamp) VALUES ($1, $2, $3, $4)`, q.Symbol, q.BidPrice, q.AskPrice, q.Timestamp)
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"cbcollector/internal/marketdata"

	"gorm.io/gorm/clause"
)

func (p *PostgresClient) InsertTrade(ctx context.Context, record *TradeRecord) error {
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "symbol"},
			{Name: "trade_id"},
		},
		DoNothing: true,
	}).Create(record)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf(
			"duplicate trade skipped: symbol=%s trade_id=%s timestamp=%s",
			record.Symbol,
			record.TradeID,
			record.Timestamp.Format(time.RFC3339),
		)
	}

	return nil
}

func (p *PostgresClient) GetTrade(ctx context.Context, symbol, tradeID string) (*TradeRecord, error) {
	var trade TradeRecord
	err := p.DB.WithContext(ctx).
		Where("symbol = ? AND trade_id = ?", symbol, tradeID).
		First(&trade).Error

	if err != nil {
		return nil, err
	}
	return &trade, nil
}

func (p *PostgresClient) GetTradesBySymbol(ctx context.Context, symbol string, since time.Time) ([]TradeRecord, error) {
	var trades []TradeRecord
	err := p.DB.WithContext(ctx).
		Where("symbol = ? AND timestamp >= ?", symbol, since).
		Order("timestamp asc").
		Find(&trades).Error

	if err != nil {
		return nil, err
	}
	return trades, nil
}

func (p *PostgresClient) DeleteOldTrades(ctx context.Context, before time.Time) error {
	return p.DB.WithContext(ctx).
		Where("timestamp < ?", before).
		Delete(&TradeRecord{}).Error
}

// ToTradeRecord converts a normalized trade into a TradeRecord for DB insertion.
func ToTradeRecord(t marketdata.Trade) *TradeRecord {
	return &TradeRecord{
		Symbol:         t.Symbol,
		TradeID:        t.ID,
		Exchange:       t.Exchange,
		Price:          t.Price,
		Amount:         t.Amount,
		Side:           string(t.Side),
		Timestamp:      t.Timestamp,
		TimestampMicro: t.TimestampMicro,
		LocalTimestamp: t.LocalTimestamp,
	}
}

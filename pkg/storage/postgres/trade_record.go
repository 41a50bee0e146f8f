package postgres

import "time"

// TradeRecord represents a normalized trade stored in the database.
type TradeRecord struct {
	ID uint `gorm:"primaryKey"`

	// unique index
	Symbol  string `gorm:"type:text;not null;index:idx_trade_symbol;index:idx_symbol_trade_id,unique"`
	TradeID string `gorm:"type:text;not null;index:idx_symbol_trade_id,unique"`

	Exchange string `gorm:"type:varchar(32);not null"`

	Price  float64 `gorm:"type:numeric;not null"`
	Amount float64 `gorm:"type:numeric;not null"`
	Side   string  `gorm:"type:varchar(4);not null"` // taker direction: "buy" or "sell"

	// Exchange event time at millisecond resolution plus the microsecond
	// remainder, stored separately to keep full precision.
	Timestamp      time.Time `gorm:"not null;index:idx_trade_timestamp"`
	TimestampMicro int       `gorm:"not null"`

	LocalTimestamp time.Time `gorm:"not null"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (TradeRecord) TableName() string {
	return "trade_record"
}

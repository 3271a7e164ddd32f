package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyClose is one daily closing price for a ticker.
type DailyClose struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// PriceChange is the percentage change between the two most recent daily
// closes in a trailing window.
type PriceChange struct {
	PercentChange float64 `json:"percent_change"`
}

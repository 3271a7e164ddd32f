// Package prices fetches daily closing prices from Yahoo Finance.
package prices

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	yfmodels "github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// Client fetches daily close prices via the go-yfinance library.
type Client struct {
	log zerolog.Logger
}

// NewClient creates a Yahoo Finance price client.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		log: log.With().Str("client", "yahoo").Logger(),
	}
}

// DailyCloses fetches up to days trailing daily closes for symbol, oldest
// first. Yahoo may return fewer bars than requested around market holidays;
// callers decide whether that is enough data.
func (c *Client) DailyCloses(ctx context.Context, symbol string, days int) ([]models.DailyClose, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := ticker.New(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker for %s: %w", symbol, err)
	}
	defer t.Close()

	params := yfmodels.HistoryParams{
		Period:     fmt.Sprintf("%dd", days),
		Interval:   "1d",
		AutoAdjust: true,
	}
	bars, err := t.History(params)
	if err != nil {
		return nil, fmt.Errorf("failed to get price history for %s: %w", symbol, err)
	}

	closes := make([]models.DailyClose, 0, len(bars))
	for _, bar := range bars {
		closes = append(closes, models.DailyClose{
			Date:  bar.Date,
			Close: decimal.NewFromFloat(bar.Close),
		})
	}

	c.log.Debug().Str("symbol", symbol).Int("bars", len(closes)).Msg("Fetched daily closes")
	return closes, nil
}

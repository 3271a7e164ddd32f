package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
	"github.com/omshetye/Stock-sentiment-analytics/internal/sentiment"
)

// Default trailing window of daily closes used for the price-change signal.
const defaultPriceWindowDays = 5

// NewsSource fetches the raw news rows for a ticker in the source's native
// reverse-chronological-by-day order.
type NewsSource interface {
	News(ctx context.Context, ticker string) ([]models.RawNewsRow, error)
}

// PriceSource fetches daily closing prices for a ticker over a trailing
// window of calendar days, oldest first. It may return fewer closes than
// the window covers, e.g. around market holidays.
type PriceSource interface {
	DailyCloses(ctx context.Context, ticker string, days int) ([]models.DailyClose, error)
}

// Runner executes the news-to-signal pipeline. Each run is an independent
// synchronous sequence with no state shared between invocations, so a single
// Runner is safe for concurrent use as long as its collaborators are.
type Runner struct {
	news   NewsSource
	prices PriceSource
	engine sentiment.Engine
	log    zerolog.Logger

	priceWindowDays int
	now             func() time.Time
}

// NewRunner creates a pipeline runner with the given collaborators.
func NewRunner(news NewsSource, prices PriceSource, engine sentiment.Engine, log zerolog.Logger) *Runner {
	return &Runner{
		news:            news,
		prices:          prices,
		engine:          engine,
		log:             log.With().Str("component", "pipeline").Logger(),
		priceWindowDays: defaultPriceWindowDays,
		now:             time.Now,
	}
}

// Run executes one full pipeline pass for a ticker: fetch rows, build
// records, score, bucket hourly and daily, compute the price change, and
// decide. A run either completes fully or fails with the first stage's
// typed error; partial results are never merged into a recommendation.
func (r *Runner) Run(ctx context.Context, ticker string) (*models.Analysis, error) {
	now := r.now()
	referenceDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := r.news.News(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news for %s: %w", ticker, err)
	}

	records, err := BuildRecords(rows, referenceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build headline records for %s: %w", ticker, err)
	}

	scored, err := ScoreRecords(r.engine, records)
	if err != nil {
		return nil, fmt.Errorf("failed to score headlines for %s: %w", ticker, err)
	}

	latest, err := LatestScore(scored)
	if err != nil {
		return nil, fmt.Errorf("failed to determine latest sentiment for %s: %w", ticker, err)
	}

	closes, err := r.prices.DailyCloses(ctx, ticker, r.priceWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch closes for %s: %w", ticker, err)
	}

	closePrices := make([]decimal.Decimal, len(closes))
	for i, c := range closes {
		closePrices[i] = c.Close
	}
	change, err := PercentChange(closePrices)
	if err != nil {
		return nil, fmt.Errorf("failed to compute price change for %s: %w", ticker, err)
	}

	recommendation := Decide(latest, change)

	r.log.Info().
		Str("ticker", ticker).
		Int("headlines", len(scored)).
		Float64("latest_sentiment", latest).
		Float64("price_change_pct", change).
		Str("recommendation", string(recommendation)).
		Msg("Pipeline run completed")

	return &models.Analysis{
		Ticker:               ticker,
		ScoredHeadlines:      scored,
		HourlyBuckets:        BucketScores(scored, GranularityHour),
		DailyBuckets:         BucketScores(scored, GranularityDay),
		LatestSentimentScore: latest,
		PriceChangePercent:   change,
		Closes:               closes,
		Recommendation:       recommendation,
		GeneratedAt:          now,
	}, nil
}

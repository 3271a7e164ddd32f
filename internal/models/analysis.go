package models

import "time"

// Recommendation is the discrete trading suggestion produced by combining
// the sentiment signal with the short-term price-change signal.
type Recommendation string

// Recommendation constants
const (
	RecommendationStrongBuy  Recommendation = "STRONG_BUY"
	RecommendationBuy        Recommendation = "BUY"
	RecommendationHold       Recommendation = "HOLD"
	RecommendationHoldOrSell Recommendation = "HOLD_OR_SELL"
	RecommendationSell       Recommendation = "SELL"
	RecommendationStrongSell Recommendation = "STRONG_SELL"
)

// Analysis is the full result of one pipeline run for a ticker. It is a
// plain structured value; rendering it into charts, tables or HTML is the
// presentation layer's concern.
type Analysis struct {
	Ticker               string            `json:"ticker"`
	ScoredHeadlines      []ScoredHeadline  `json:"scored_headlines"`
	HourlyBuckets        []SentimentBucket `json:"hourly_buckets"`
	DailyBuckets         []SentimentBucket `json:"daily_buckets"`
	LatestSentimentScore float64           `json:"latest_sentiment_score"`
	PriceChangePercent   float64           `json:"price_change_percent"`
	Closes               []DailyClose      `json:"closes"`
	Recommendation       Recommendation    `json:"recommendation"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

// Analysis event type constants
const (
	EventAnalysisCompleted = "ANALYSIS_COMPLETED"
)

// AnalysisEvent represents a Kafka event for a completed analysis run
type AnalysisEvent struct {
	EventType          string         `json:"event_type"`
	Ticker             string         `json:"ticker"`
	Recommendation     Recommendation `json:"recommendation"`
	SentimentScore     float64        `json:"sentiment_score"`
	PriceChangePercent float64        `json:"price_change_percent"`
	Timestamp          time.Time      `json:"timestamp"`
}

// AnalysisRequest is the payload of an analysis-request message consumed
// from Kafka.
type AnalysisRequest struct {
	Ticker      string    `json:"ticker"`
	RequestedAt time.Time `json:"requested_at,omitempty"`
}

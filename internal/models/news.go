package models

import "time"

// RawNewsRow is one row scraped from the source's news table, still in its
// raw token form. The time token is always present; the date token appears
// only on the first row of each calendar day in the source ordering.
type RawNewsRow struct {
	DateToken string `json:"date_token,omitempty"`
	TimeToken string `json:"time_token"`
	Headline  string `json:"headline"`
	Link      string `json:"link"`
}

// HeadlineRecord is a news headline with its fully resolved timestamp.
// Timestamps are timezone-naive in the exchange's local convention.
// Records are created once by the builder and never mutated.
type HeadlineRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Headline  string    `json:"headline"`
	Link      string    `json:"link"`
}

// ScoredHeadline is a headline record with per-class sentiment scores
// attached. Negative, Neutral and Positive sum to approximately 1 (engine
// contract, not enforced here). SentimentScore is the compound polarity
// in [-1, 1].
type ScoredHeadline struct {
	HeadlineRecord
	Negative       float64 `json:"negative"`
	Neutral        float64 `json:"neutral"`
	Positive       float64 `json:"positive"`
	SentimentScore float64 `json:"sentiment_score"`
}

// SentimentBucket is the mean compound score of all headlines whose
// timestamps fall within one bucket interval. Buckets exist only for
// intervals that contain at least one headline, so Count is always >= 1;
// an interval with no headlines has no bucket rather than a zero mean.
type SentimentBucket struct {
	BucketStart        time.Time `json:"bucket_start"`
	MeanSentimentScore float64   `json:"mean_sentiment_score"`
	Count              int       `json:"count"`
}

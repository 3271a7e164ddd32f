package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
	"github.com/omshetye/Stock-sentiment-analytics/internal/sentiment"
)

// Granularity selects the bucket interval for sentiment aggregation.
type Granularity int

// Granularity constants
const (
	GranularityHour Granularity = iota
	GranularityDay
)

// String returns the granularity name.
func (g Granularity) String() string {
	switch g {
	case GranularityHour:
		return "hour"
	case GranularityDay:
		return "day"
	default:
		return "unknown"
	}
}

// Truncate returns the bucket boundary containing t: the top of the hour,
// or midnight.
func (g Granularity) Truncate(t time.Time) time.Time {
	switch g {
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	}
}

// ScoreRecords runs the sentiment engine over each headline and attaches
// the per-class scores. Headlines are independent, so the engine is called
// once per record with no cross-record state.
func ScoreRecords(engine sentiment.Engine, records []models.HeadlineRecord) ([]models.ScoredHeadline, error) {
	scored := make([]models.ScoredHeadline, 0, len(records))
	for _, rec := range records {
		s, err := engine.Score(rec.Headline)
		if err != nil {
			return nil, fmt.Errorf("failed to score headline %q: %w", rec.Headline, err)
		}
		scored = append(scored, models.ScoredHeadline{
			HeadlineRecord: rec,
			Negative:       s.Negative,
			Neutral:        s.Neutral,
			Positive:       s.Positive,
			SentimentScore: s.Compound,
		})
	}
	return scored, nil
}

// BucketScores groups scored headlines by truncating each timestamp to the
// bucket boundary and computes the arithmetic mean of the compound score per
// group. Only boundaries with at least one headline produce a bucket; gaps
// are left to the caller, which must decide its own fill policy. Buckets are
// returned sorted by start time ascending.
func BucketScores(scored []models.ScoredHeadline, granularity Granularity) []models.SentimentBucket {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, s := range scored {
		start := granularity.Truncate(s.Timestamp)
		sums[start] += s.SentimentScore
		counts[start]++
	}

	buckets := make([]models.SentimentBucket, 0, len(sums))
	for start, sum := range sums {
		buckets = append(buckets, models.SentimentBucket{
			BucketStart:        start,
			MeanSentimentScore: sum / float64(counts[start]),
			Count:              counts[start],
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].BucketStart.Before(buckets[j].BucketStart)
	})
	return buckets
}

// LatestScore returns the compound score of the chronologically most recent
// scored headline by timestamp. This is deliberately not a bucket mean: the
// decision engine consumes the latest single headline's score.
func LatestScore(scored []models.ScoredHeadline) (float64, error) {
	if len(scored) == 0 {
		return 0, &InsufficientDataError{Need: 1, Got: 0}
	}
	latest := scored[0]
	for _, s := range scored[1:] {
		if s.Timestamp.After(latest.Timestamp) {
			latest = s
		}
	}
	return latest.SentimentScore, nil
}

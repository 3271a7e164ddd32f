package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

func TestNewAnalysisEvent(t *testing.T) {
	analysis := &models.Analysis{
		Ticker:               "TSLA",
		LatestSentimentScore: -0.3,
		PriceChangePercent:   0.3,
		Recommendation:       models.RecommendationHoldOrSell,
	}

	event := NewAnalysisEvent(analysis)

	assert.Equal(t, models.EventAnalysisCompleted, event.EventType)
	assert.Equal(t, "TSLA", event.Ticker)
	assert.Equal(t, models.RecommendationHoldOrSell, event.Recommendation)
	assert.Equal(t, -0.3, event.SentimentScore)
	assert.Equal(t, 0.3, event.PriceChangePercent)
	assert.False(t, event.Timestamp.IsZero())
}

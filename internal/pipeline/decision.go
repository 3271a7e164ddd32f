package pipeline

import (
	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// Decide maps the latest sentiment score and the short-term price change
// percentage to a trading recommendation via ordered threshold rules: first
// matching branch wins.
//
// The table is intentionally asymmetric and coarse. Strong positive
// sentiment recommends buying regardless of the price change, while strong
// negative sentiment with a non-negative price change only recommends
// holding. Several branches collapse to the same label. Decide is a pure
// function of its two inputs; no smoothing and no memory across calls.
func Decide(sentimentScore, priceChangePercent float64) models.Recommendation {
	switch {
	case sentimentScore > 0.5: // strong positive sentiment
		if priceChangePercent > 0.5 {
			return models.RecommendationStrongBuy
		}
		return models.RecommendationBuy
	case sentimentScore > 0: // mild positive sentiment, (0, 0.5]
		if priceChangePercent > 0 {
			return models.RecommendationBuy
		}
		return models.RecommendationHold
	case sentimentScore == 0: // neutral sentiment
		return models.RecommendationHold
	case sentimentScore > -0.5: // mild negative sentiment, (-0.5, 0)
		if priceChangePercent > 0.5 {
			return models.RecommendationHold
		}
		if priceChangePercent > 0 {
			return models.RecommendationHoldOrSell
		}
		return models.RecommendationSell
	default: // strong negative sentiment, <= -0.5
		if priceChangePercent < -0.5 {
			return models.RecommendationStrongSell
		}
		if priceChangePercent < 0 {
			return models.RecommendationSell
		}
		return models.RecommendationHold
	}
}

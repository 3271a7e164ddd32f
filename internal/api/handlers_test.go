package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omshetye/Stock-sentiment-analytics/internal/finviz"
	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

type stubRunner struct {
	analysis  *models.Analysis
	err       error
	gotTicker string
}

func (s *stubRunner) Run(ctx context.Context, ticker string) (*models.Analysis, error) {
	s.gotTicker = ticker
	return s.analysis, s.err
}

func TestGetAnalysis(t *testing.T) {
	analysis := &models.Analysis{
		Ticker:               "AAPL",
		LatestSentimentScore: 0.6,
		PriceChangePercent:   1.2,
		Recommendation:       models.RecommendationStrongBuy,
		GeneratedAt:          time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC),
	}

	t.Run("returns analysis as JSON", func(t *testing.T) {
		runner := &stubRunner{analysis: analysis}
		router := SetupRoutes(NewHandler(runner, nil, zerolog.Nop()))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/aapl", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "AAPL", runner.gotTicker, "ticker should be upper-cased")

		var got models.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "AAPL", got.Ticker)
		assert.Equal(t, models.RecommendationStrongBuy, got.Recommendation)
	})

	t.Run("ticker without news maps to 404", func(t *testing.T) {
		runner := &stubRunner{err: finviz.ErrNoNews}
		router := SetupRoutes(NewHandler(runner, nil, zerolog.Nop()))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/ZZZZ", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("fetch failure maps to 502", func(t *testing.T) {
		runner := &stubRunner{err: &finviz.FetchError{URL: "https://finviz.com/quote.ashx?t=AAPL", StatusCode: 403}}
		router := SetupRoutes(NewHandler(runner, nil, zerolog.Nop()))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/AAPL", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("other pipeline failures map to 500 with error body", func(t *testing.T) {
		runner := &stubRunner{err: assert.AnError}
		router := SetupRoutes(NewHandler(runner, nil, zerolog.Nop()))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/AAPL", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})
}

func TestHealthCheck(t *testing.T) {
	router := SetupRoutes(NewHandler(&stubRunner{}, nil, zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

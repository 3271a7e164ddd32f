package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func requestMessage(t *testing.T, req models.AnalysisRequest) kafka.Message {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(req.Ticker), Value: data}
}

func TestConsumerProcessMessage(t *testing.T) {
	t.Run("runs analysis for requested ticker", func(t *testing.T) {
		runner := &stubRunner{analysis: &models.Analysis{
			Ticker:         "AAPL",
			Recommendation: models.RecommendationBuy,
		}}
		c := &Consumer{runner: runner, log: zerolog.Nop()}

		msg := requestMessage(t, models.AnalysisRequest{Ticker: "AAPL"})
		err := c.processMessage(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", runner.gotTicker)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		c := &Consumer{runner: &stubRunner{}, log: zerolog.Nop()}

		err := c.processMessage(context.Background(), kafka.Message{Value: []byte("not json")})
		assert.Error(t, err)
	})

	t.Run("rejects request without ticker", func(t *testing.T) {
		c := &Consumer{runner: &stubRunner{}, log: zerolog.Nop()}

		msg := requestMessage(t, models.AnalysisRequest{})
		err := c.processMessage(context.Background(), msg)
		assert.Error(t, err)
	})

	t.Run("propagates pipeline failure", func(t *testing.T) {
		runner := &stubRunner{err: assert.AnError}
		c := &Consumer{runner: runner, log: zerolog.Nop()}

		msg := requestMessage(t, models.AnalysisRequest{Ticker: "AAPL"})
		err := c.processMessage(context.Background(), msg)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// AnalysisRunner runs the news-to-signal pipeline for one ticker.
type AnalysisRunner interface {
	Run(ctx context.Context, ticker string) (*models.Analysis, error)
}

// Consumer handles analysis-request messages from Kafka. Each message names
// a ticker; the consumer runs the pipeline for it and publishes the result
// as an analysis-completed event.
type Consumer struct {
	reader   *kafka.Reader
	runner   AnalysisRunner
	producer *Producer
	log      zerolog.Logger
}

// NewConsumer creates a new Kafka consumer for analysis requests. producer
// may be nil, in which case results are only logged.
func NewConsumer(brokers []string, topic, groupID string, runner AnalysisRunner, producer *Producer, log zerolog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	})

	return &Consumer{
		reader:   reader,
		runner:   runner,
		producer: producer,
		log:      log.With().Str("component", "kafka-consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info().Str("topic", c.reader.Config().Topic).Msg("Starting Kafka consumer")

	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("Kafka consumer shutting down")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil // Context cancelled, normal shutdown
				}
				c.log.Error().Err(err).Msg("Error reading message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.log.Error().Err(err).Msg("Error processing message")
				// Continue processing other messages
			}
		}
	}
}

// processMessage handles a single analysis request
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var req models.AnalysisRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal analysis request: %w", err)
	}
	if req.Ticker == "" {
		return fmt.Errorf("analysis request has no ticker (partition %d offset %d)", msg.Partition, msg.Offset)
	}

	analysis, err := c.runner.Run(ctx, req.Ticker)
	if err != nil {
		return fmt.Errorf("failed to run analysis for %s: %w", req.Ticker, err)
	}

	if c.producer != nil {
		if err := c.producer.PublishAnalysisCompleted(ctx, analysis); err != nil {
			return fmt.Errorf("failed to publish analysis event for %s: %w", req.Ticker, err)
		}
	}

	c.log.Info().
		Str("ticker", req.Ticker).
		Str("recommendation", string(analysis.Recommendation)).
		Msg("Processed analysis request")
	return nil
}

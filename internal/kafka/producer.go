package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// Producer handles publishing analysis events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishAnalysisCompleted publishes the outcome of a completed pipeline run
func (p *Producer) PublishAnalysisCompleted(ctx context.Context, analysis *models.Analysis) error {
	event := NewAnalysisEvent(analysis)
	return p.publish(ctx, analysis.Ticker, event)
}

// NewAnalysisEvent builds the event envelope for a completed analysis
func NewAnalysisEvent(analysis *models.Analysis) models.AnalysisEvent {
	return models.AnalysisEvent{
		EventType:          models.EventAnalysisCompleted,
		Ticker:             analysis.Ticker,
		Recommendation:     analysis.Recommendation,
		SentimentScore:     analysis.LatestSentimentScore,
		PriceChangePercent: analysis.PriceChangePercent,
		Timestamp:          time.Now(),
	}
}

func (p *Producer) publish(ctx context.Context, key string, event models.AnalysisEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/omshetye/Stock-sentiment-analytics/internal/api"
	"github.com/omshetye/Stock-sentiment-analytics/internal/cache"
	"github.com/omshetye/Stock-sentiment-analytics/internal/config"
	"github.com/omshetye/Stock-sentiment-analytics/internal/finviz"
	"github.com/omshetye/Stock-sentiment-analytics/internal/kafka"
	"github.com/omshetye/Stock-sentiment-analytics/internal/pipeline"
	"github.com/omshetye/Stock-sentiment-analytics/internal/prices"
	"github.com/omshetye/Stock-sentiment-analytics/internal/sentiment"
	"github.com/omshetye/Stock-sentiment-analytics/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	log.Info().Msg("Starting stock sentiment analytics service")

	// News source, optionally behind the Redis cache
	var newsSource pipeline.NewsSource = finviz.NewClient(cfg.Finviz.BaseURL, log)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		newsSource = cache.NewNewsCache(newsSource, redisClient, cfg.Redis.TTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("News cache enabled")
	}

	priceSource := prices.NewClient(log)
	engine := sentiment.NewVaderEngine()
	runner := pipeline.NewRunner(newsSource, priceSource, engine, log)

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EventTopic)
		defer producer.Close()
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.EventTopic).Msg("Kafka producer enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Queue-driven entry point alongside HTTP
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.RequestTopic, cfg.Kafka.ConsumerGroup, runner, producer, log)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()
	}

	handler := api.NewHandler(runner, producer, log)
	router := api.SetupRoutes(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
		os.Exit(1)
	}
}

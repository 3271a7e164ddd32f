// Package cache provides a Redis-backed cache over the news source so that
// repeated requests for the same ticker do not re-fetch the quote page.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
	"github.com/omshetye/Stock-sentiment-analytics/internal/pipeline"
)

const keyPrefix = "news:"

// NewsCache decorates a NewsSource with a short-TTL Redis cache. Cache
// failures fall through to the inner source; the cache is never a
// correctness dependency.
type NewsCache struct {
	inner  pipeline.NewsSource
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewNewsCache wraps a news source with a Redis cache.
func NewNewsCache(inner pipeline.NewsSource, client *redis.Client, ttl time.Duration, log zerolog.Logger) *NewsCache {
	return &NewsCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "news-cache").Logger(),
	}
}

// News returns cached rows for ticker if present, otherwise fetches from the
// inner source and caches the result.
func (c *NewsCache) News(ctx context.Context, ticker string) ([]models.RawNewsRow, error) {
	key := keyPrefix + strings.ToUpper(ticker)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var rows []models.RawNewsRow
		if err := json.Unmarshal(data, &rows); err == nil {
			c.log.Debug().Str("ticker", ticker).Msg("News cache hit")
			return rows, nil
		}
		// Unreadable entry: drop it and re-fetch.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("ticker", ticker).Msg("News cache read failed")
	}

	rows, err := c.inner.News(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("ticker", ticker).Msg("News cache write failed")
		}
	}

	return rows, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/pkg/cache"
	xlogger "CryptoAPI/pkg/logger"
)

const newsCacheKey = "news:latest"

// CachedNewsSource caches the full aggregated feed once and serves
// every limit from that one entry.
type CachedNewsSource struct {
	source  drepo.NewsSource
	cache   cache.Service
	ttl     time.Duration
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// NewCachedNewsSource creates a caching NewsSource decorator.
func NewCachedNewsSource(source drepo.NewsSource, c cache.Service, ttl time.Duration, metrics drepo.Metrics, logger *xlogger.Logger) drepo.NewsSource {
	return &CachedNewsSource{
		source:  source,
		cache:   c,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *CachedNewsSource) Latest(ctx context.Context, limit int) ([]models.NewsItem, error) {
	items, err := cache.GetTyped[[]models.NewsItem](ctx, s.cache, newsCacheKey)
	if err == nil {
		s.metrics.RecordCacheHit("news")
		return clipNews(items, limit), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("cache read failed", xlogger.String("key", newsCacheKey), xlogger.Error(err))
	}
	s.metrics.RecordCacheMiss("news")

	items, err = s.source.Latest(ctx, 0)
	if err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		if err := s.cache.Set(ctx, newsCacheKey, items, s.ttl); err != nil {
			s.logger.Warn("cache write failed", xlogger.String("key", newsCacheKey), xlogger.Error(err))
		}
	}
	return clipNews(items, limit), nil
}

func clipNews(items []models.NewsItem, limit int) []models.NewsItem {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

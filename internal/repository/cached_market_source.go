package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/pkg/cache"
	xlogger "CryptoAPI/pkg/logger"
)

// TTLConfig sets per-resource cache lifetimes. A zero duration disables
// caching for that resource.
type TTLConfig struct {
	Markets time.Duration
	Profile time.Duration
	Chart   time.Duration
}

// CachedMarketSource wraps a MarketSource with read-through caching.
// Upstream errors are never cached.
type CachedMarketSource struct {
	source  drepo.MarketSource
	cache   cache.Service
	ttl     TTLConfig
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// NewCachedMarketSource creates a caching MarketSource decorator.
func NewCachedMarketSource(source drepo.MarketSource, c cache.Service, ttl TTLConfig, metrics drepo.Metrics, logger *xlogger.Logger) drepo.MarketSource {
	return &CachedMarketSource{
		source:  source,
		cache:   c,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *CachedMarketSource) Markets(ctx context.Context, ids []string) ([]models.Asset, error) {
	key := cache.GenerateKey("markets", "top")
	if len(ids) > 0 {
		// Id lists are caller-controlled and unbounded, so hash them.
		key = cache.GenerateKey("markets", cache.HashKey(strings.Join(ids, ",")))
	}

	if assets, ok := lookup[[]models.Asset](ctx, s, key, "markets"); ok {
		return assets, nil
	}

	assets, err := s.source.Markets(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, assets, s.ttl.Markets)
	return assets, nil
}

func (s *CachedMarketSource) Profile(ctx context.Context, id string) (*models.AssetProfile, error) {
	key := cache.GenerateKey("profile", id)

	if profile, ok := lookup[models.AssetProfile](ctx, s, key, "profile"); ok {
		return &profile, nil
	}

	profile, err := s.source.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, profile, s.ttl.Profile)
	return profile, nil
}

func (s *CachedMarketSource) MarketChart(ctx context.Context, id string, days int) (*models.MarketChart, error) {
	key := cache.GenerateKeyWithParams("chart", id, days)

	if chart, ok := lookup[models.MarketChart](ctx, s, key, "chart"); ok {
		return &chart, nil
	}

	chart, err := s.source.MarketChart(ctx, id, days)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, chart, s.ttl.Chart)
	return chart, nil
}

// Tickers rides the profile lifetime; listings churn about as fast as
// the rest of the coin page.
func (s *CachedMarketSource) Tickers(ctx context.Context, id string) ([]models.Ticker, error) {
	key := cache.GenerateKey("tickers", id)

	if tickers, ok := lookup[[]models.Ticker](ctx, s, key, "tickers"); ok {
		return tickers, nil
	}

	tickers, err := s.source.Tickers(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, tickers, s.ttl.Profile)
	return tickers, nil
}

func (s *CachedMarketSource) Ping(ctx context.Context) error {
	return s.source.Ping(ctx)
}

func (s *CachedMarketSource) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("cache write failed", xlogger.String("key", key), xlogger.Error(err))
	}
}

// lookup reads a typed value out of the cache. Methods cannot carry type
// parameters, hence the free function.
func lookup[T any](ctx context.Context, s *CachedMarketSource, key, resource string) (T, bool) {
	var zero T
	v, err := cache.GetTyped[T](ctx, s.cache, key)
	if err == nil {
		s.metrics.RecordCacheHit(resource)
		return v, true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("cache read failed", xlogger.String("key", key), xlogger.Error(err))
	}
	s.metrics.RecordCacheMiss(resource)
	return zero, false
}

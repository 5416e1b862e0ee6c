package repository

import (
	"context"

	"CryptoAPI/internal/domain/models"
)

// MarketSource provides market data for cryptocurrencies.
type MarketSource interface {
	// Markets returns snapshot rows for the given ids, or the provider's
	// top-ranked assets when ids is empty.
	Markets(ctx context.Context, ids []string) ([]models.Asset, error)
	Profile(ctx context.Context, id string) (*models.AssetProfile, error)
	MarketChart(ctx context.Context, id string, days int) (*models.MarketChart, error)
	Tickers(ctx context.Context, id string) ([]models.Ticker, error)
	Ping(ctx context.Context) error
}

// NewsSource aggregates news entries from configured feeds.
type NewsSource interface {
	Latest(ctx context.Context, limit int) ([]models.NewsItem, error)
}

type Metrics interface {
	RecordUpstreamRequest(endpoint, status string)
	RecordUpstreamLatency(endpoint string, seconds float64)
	RecordError(kind string)
	RecordCacheHit(resource string)
	RecordCacheMiss(resource string)
	RecordLastPrice(asset string, price float64)
	SetStreamSubscribers(n int)
}

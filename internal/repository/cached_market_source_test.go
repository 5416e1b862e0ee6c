package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/pkg/cache"
	xlogger "CryptoAPI/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordUpstreamRequest(string, string)  {}
func (noopMetrics) RecordUpstreamLatency(string, float64) {}
func (noopMetrics) RecordError(string)                    {}
func (noopMetrics) RecordCacheHit(string)                 {}
func (noopMetrics) RecordCacheMiss(string)                {}
func (noopMetrics) RecordLastPrice(string, float64)       {}
func (noopMetrics) SetStreamSubscribers(int)              {}

// countingSource counts upstream calls so tests can tell hits from misses.
type countingSource struct {
	markets int
	profile int
	charts  int
	tickers int
}

func (c *countingSource) Markets(ctx context.Context, ids []string) ([]models.Asset, error) {
	c.markets++
	return []models.Asset{{ID: "bitcoin", CurrentPrice: 67000.5}}, nil
}

func (c *countingSource) Profile(ctx context.Context, id string) (*models.AssetProfile, error) {
	c.profile++
	return &models.AssetProfile{ID: id, Name: "Bitcoin", SentimentUp: 80, SentimentDown: 20}, nil
}

func (c *countingSource) MarketChart(ctx context.Context, id string, days int) (*models.MarketChart, error) {
	c.charts++
	return &models.MarketChart{
		Prices: []models.PricePoint{
			{Time: time.UnixMilli(1700000000000), Value: 100.5},
			{Time: time.UnixMilli(1700086400000), Value: 101.5},
		},
	}, nil
}

func (c *countingSource) Tickers(ctx context.Context, id string) ([]models.Ticker, error) {
	c.tickers++
	return []models.Ticker{{Exchange: "Binance", Base: "BTC", Target: "USDT"}}, nil
}

func (c *countingSource) Ping(ctx context.Context) error { return nil }

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func newCached(t *testing.T, source drepo.MarketSource, ttl TTLConfig) drepo.MarketSource {
	t.Helper()
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { mem.Close() })
	return NewCachedMarketSource(source, mem, ttl, noopMetrics{}, testLogger(t))
}

func TestMarketsServedFromCache(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Markets: time.Minute})
	ctx := context.Background()

	first, err := cached.Markets(ctx, nil)
	require.NoError(t, err)
	second, err := cached.Markets(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, source.markets)
	assert.Equal(t, first, second)
}

func TestMarketsKeyedByIDList(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Markets: time.Minute})
	ctx := context.Background()

	_, err := cached.Markets(ctx, nil)
	require.NoError(t, err)
	_, err = cached.Markets(ctx, []string{"bitcoin"})
	require.NoError(t, err)
	_, err = cached.Markets(ctx, []string{"bitcoin"})
	require.NoError(t, err)

	// Top page and the id filter are distinct entries.
	assert.Equal(t, 2, source.markets)
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{})
	ctx := context.Background()

	_, err := cached.Markets(ctx, nil)
	require.NoError(t, err)
	_, err = cached.Markets(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, source.markets)
}

func TestProfileRoundTrip(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Profile: time.Minute})
	ctx := context.Background()

	first, err := cached.Profile(ctx, "bitcoin")
	require.NoError(t, err)
	second, err := cached.Profile(ctx, "bitcoin")
	require.NoError(t, err)

	assert.Equal(t, 1, source.profile)
	assert.Equal(t, first, second)
	assert.Equal(t, "Bitcoin", second.Name)
}

func TestChartRoundTripKeepsPoints(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Chart: time.Minute})
	ctx := context.Background()

	first, err := cached.MarketChart(ctx, "bitcoin", 30)
	require.NoError(t, err)
	second, err := cached.MarketChart(ctx, "bitcoin", 30)
	require.NoError(t, err)

	assert.Equal(t, 1, source.charts)
	require.Len(t, second.Prices, 2)
	assert.Equal(t, first.Prices[0].Value, second.Prices[0].Value)
	assert.True(t, first.Prices[0].Time.Equal(second.Prices[0].Time))
}

func TestChartKeyedByWindow(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Chart: time.Minute})
	ctx := context.Background()

	_, err := cached.MarketChart(ctx, "bitcoin", 30)
	require.NoError(t, err)
	_, err = cached.MarketChart(ctx, "bitcoin", 90)
	require.NoError(t, err)

	assert.Equal(t, 2, source.charts)
}

func TestTickersServedFromCache(t *testing.T) {
	source := &countingSource{}
	cached := newCached(t, source, TTLConfig{Profile: time.Minute})
	ctx := context.Background()

	_, err := cached.Tickers(ctx, "bitcoin")
	require.NoError(t, err)
	tickers, err := cached.Tickers(ctx, "bitcoin")
	require.NoError(t, err)

	assert.Equal(t, 1, source.tickers)
	require.Len(t, tickers, 1)
	assert.Equal(t, "Binance", tickers[0].Exchange)
}

package di

import (
	"fmt"

	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/handler/api"
	internalrepo "CryptoAPI/internal/repository"
	"CryptoAPI/internal/service/coingecko"
	"CryptoAPI/internal/service/news"
	"CryptoAPI/internal/service/stream"
	"CryptoAPI/internal/usecase"
	"CryptoAPI/pkg/cache"
	"CryptoAPI/pkg/config"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
	"CryptoAPI/pkg/metrics"
	"CryptoAPI/pkg/server"
)

// defaultReferences are the correlation baselines when none are configured.
var defaultReferences = []string{"bitcoin", "ethereum"}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideHTTPClient builds the retrying, rate-limited upstream client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	opts := []xhttp.ClientOption{
		xhttp.WithRateLimit(cfg.CoinGecko.RateLimit, cfg.CoinGecko.RateBurst),
		xhttp.WithRetry(cfg.CoinGecko.RetryMax, cfg.CoinGecko.BackoffInitial, cfg.CoinGecko.BackoffMax),
	}
	if cfg.CoinGecko.Timeout > 0 {
		opts = append(opts, xhttp.WithTimeout(cfg.CoinGecko.Timeout))
	}
	return xhttp.NewClient(opts...)
}

// ProvideCacheService creates the response cache. A disabled cache
// yields nil, which skips the caching decorators downstream.
func ProvideCacheService(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(redisCache), nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideMarketSource builds the CoinGecko client, wrapped with
// read-through caching when a cache is configured.
func ProvideMarketSource(cfg *config.Config, httpClient *xhttp.Client, cacheService cache.Service, m drepo.Metrics, logger *xlogger.Logger) drepo.MarketSource {
	source := coingecko.New(
		cfg.CoinGecko.BaseURL,
		cfg.CoinGecko.APIKey,
		cfg.CoinGecko.Currency,
		httpClient,
		m,
		logger,
	)
	if cacheService == nil {
		return source
	}
	return internalrepo.NewCachedMarketSource(source, cacheService, internalrepo.TTLConfig{
		Markets: cfg.Cache.TTL.Markets,
		Profile: cfg.Cache.TTL.Profile,
		Chart:   cfg.Cache.TTL.Chart,
	}, m, logger)
}

// ProvideNewsSource aggregates the configured RSS feeds, cached when a
// cache is configured.
func ProvideNewsSource(cfg *config.Config, cacheService cache.Service, m drepo.Metrics, logger *xlogger.Logger) drepo.NewsSource {
	source := news.New(cfg.News.Feeds, cfg.News.Timeout, m, logger)
	if cacheService == nil {
		return source
	}
	return internalrepo.NewCachedNewsSource(source, cacheService, cfg.Cache.TTL.News, m, logger)
}

// ProvideMarketUsecase creates the market data use case.
func ProvideMarketUsecase(source drepo.MarketSource) *usecase.MarketUsecase {
	return usecase.NewMarketUsecase(source)
}

// ProvideAnalyticsUsecase creates the analytics use case.
func ProvideAnalyticsUsecase(cfg *config.Config, source drepo.MarketSource) *usecase.AnalyticsUsecase {
	references := cfg.Reference.Assets
	if len(references) == 0 {
		references = defaultReferences
	}
	return usecase.NewAnalyticsUsecase(source, references)
}

// ProvideNewsUsecase creates the news use case.
func ProvideNewsUsecase(source drepo.NewsSource) *usecase.NewsUsecase {
	return usecase.NewNewsUsecase(source)
}

// ProvideHub creates the websocket fan-out hub.
func ProvideHub(m drepo.Metrics, logger *xlogger.Logger) *stream.Hub {
	return stream.NewHub(m, logger)
}

// ProvidePoller creates the price poller, or nil when streaming is off.
func ProvidePoller(cfg *config.Config, source drepo.MarketSource, hub *stream.Hub, m drepo.Metrics, logger *xlogger.Logger) *stream.Poller {
	if !cfg.Stream.Enabled {
		return nil
	}
	return stream.NewPoller(source, hub, cfg.Stream.Assets, cfg.Stream.Interval, m, logger)
}

// ProvideHandlers collects every route group in registration order.
func ProvideHandlers(
	logger *xlogger.Logger,
	market *usecase.MarketUsecase,
	analytics *usecase.AnalyticsUsecase,
	newsUsecase *usecase.NewsUsecase,
	hub *stream.Hub,
	source drepo.MarketSource,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewHealthHandler(logger, source, server.Version),
		api.NewMarketHandler(logger, market),
		api.NewAnalyticsHandler(logger, analytics),
		api.NewNewsHandler(logger, newsUsecase),
		api.NewStreamHandler(logger, hub),
	}
}

// ProvideServer builds the HTTP server with all routes registered.
func ProvideServer(cfg *config.Config, logger *xlogger.Logger, handlers []xhttp.Handler) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
	}
	return xhttp.NewServer(handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(logger),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *xlogger.Logger,
	srv *xhttp.Server,
	poller *stream.Poller,
	hub *stream.Hub,
	cacheService cache.Service,
) *server.App {
	return server.New(cfg, logger, srv, poller, hub, cacheService)
}

//go:build wireinject
// +build wireinject

package di

import (
	"CryptoAPI/pkg/config"
	"CryptoAPI/pkg/logger"
	"CryptoAPI/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config, log *logger.Logger) (*server.App, error) {
	wire.Build(
		// Metrics
		ProvideMetrics,

		// Infrastructure clients
		ProvideHTTPClient,
		ProvideCacheService,

		// Data sources (cached when a cache is configured)
		ProvideMarketSource,
		ProvideNewsSource,

		// Use cases
		ProvideMarketUsecase,
		ProvideAnalyticsUsecase,
		ProvideNewsUsecase,

		// Streaming
		ProvideHub,
		ProvidePoller,

		// HTTP layer
		ProvideHandlers,
		ProvideServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

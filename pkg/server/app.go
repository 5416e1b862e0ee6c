package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CryptoAPI/internal/service/stream"
	"CryptoAPI/pkg/cache"
	"CryptoAPI/pkg/config"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

// Version is the service version, stamped at build time via -ldflags.
var Version = "dev"

// App encapsulates the entire application lifecycle.
type App struct {
	cfg    *config.Config
	logger *xlogger.Logger
	server *xhttp.Server
	poller *stream.Poller
	hub    *stream.Hub
	cache  cache.Service
}

// New creates a new App instance with all dependencies. poller, hub and
// cacheService may be nil when the matching feature is disabled.
func New(
	cfg *config.Config,
	logger *xlogger.Logger,
	server *xhttp.Server,
	poller *stream.Poller,
	hub *stream.Hub,
	cacheService cache.Service,
) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		server: server,
		poller: poller,
		hub:    hub,
		cache:  cacheService,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if a.poller != nil {
		if err := a.poller.Start(); err != nil {
			return fmt.Errorf("start poller: %w", err)
		}
		a.logger.Info("price poller started",
			xlogger.Strings("assets", a.cfg.Stream.Assets),
			xlogger.String("interval", a.cfg.Stream.Interval),
		)
	}

	if err := a.server.Start(); err != nil {
		return fmt.Errorf("start http server: %w", err)
	}
	a.logger.Info("http server started",
		xlogger.Int("port", a.cfg.Server.Port),
		xlogger.String("environment", a.cfg.Environment),
		xlogger.String("version", Version),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if a.poller != nil {
		a.poller.Stop()
	}
	if a.hub != nil {
		if err := a.hub.Close(); err != nil {
			a.logger.Warn("stream hub close error", xlogger.Error(err))
		}
	}

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", xlogger.Error(err))
		return err
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", xlogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}

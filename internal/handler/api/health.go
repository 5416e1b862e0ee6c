package api

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	drepo "CryptoAPI/internal/domain/repository"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// HealthHandler exposes liveness, readiness and the service banner.
type HealthHandler struct {
	logger  *xlogger.Logger
	source  drepo.MarketSource
	version string
}

func NewHealthHandler(logger *xlogger.Logger, source drepo.MarketSource, version string) *HealthHandler {
	return &HealthHandler{logger: logger, source: source, version: version}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}

func (h *HealthHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"service": "cryptoapi",
		"version": h.version,
		"docs":    "/api/assets, /api/news, /api/pnl, /ws/prices",
	})
}

func (h *HealthHandler) Healthz(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// Readyz reports ready only while the upstream provider answers.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		h.logger.Warn("readiness ping failed", xlogger.Error(err))
		return xhttp.UnavailableResponse(c, retryAfterSeconds, []*xhttp.AppError{
			xhttp.UnavailableError("market data provider unreachable"),
		})
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ready"})
}

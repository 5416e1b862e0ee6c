package api

import (
	"github.com/labstack/echo/v4"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/usecase"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

// AnalyticsHandler exposes derived metrics: signals, correlation,
// volatility, sentiment and position valuation.
type AnalyticsHandler struct {
	logger    *xlogger.Logger
	analytics *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(logger *xlogger.Logger, analytics *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, analytics: analytics}
}

func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/assets")
	g.GET("/:id/signal", h.Signal)
	g.GET("/:id/correlation", h.Correlation)
	g.GET("/:id/volatility", h.Volatility)
	g.GET("/:id/sentiment", h.Sentiment)

	e.GET("/api/pnl", h.ProfitLoss)
}

func (h *AnalyticsHandler) Signal(c echo.Context) error {
	req := &models.SignalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	horizon := drepo.NormalizeHorizon(req.Horizon)

	signal, err := h.analytics.Signal(c.Request().Context(), req.ID, horizon)
	if err != nil {
		h.logger.Error("signal failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, signal)
}

func (h *AnalyticsHandler) Correlation(c echo.Context) error {
	req := &models.CorrelationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.analytics.Correlation(c.Request().Context(), req.ID, req.Days)
	if err != nil {
		h.logger.Error("correlation failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *AnalyticsHandler) Volatility(c echo.Context) error {
	req := &models.VolatilityRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.analytics.Volatility(c.Request().Context(), req.ID, req.Days)
	if err != nil {
		h.logger.Error("volatility failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *AnalyticsHandler) Sentiment(c echo.Context) error {
	req := &models.SentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	score, err := h.analytics.Sentiment(c.Request().Context(), req.ID)
	if err != nil {
		h.logger.Error("sentiment failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, score)
}

func (h *AnalyticsHandler) ProfitLoss(c echo.Context) error {
	req := &models.ProfitLossRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.analytics.ProfitLoss(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("pnl failed", xlogger.String("asset", req.Asset), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

package api

import (
	"github.com/labstack/echo/v4"

	"CryptoAPI/internal/domain/models"
	"CryptoAPI/internal/usecase"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

// NewsHandler exposes the aggregated news feed.
type NewsHandler struct {
	logger *xlogger.Logger
	news   *usecase.NewsUsecase
}

func NewNewsHandler(logger *xlogger.Logger, news *usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{logger: logger, news: news}
}

func (h *NewsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/news", h.Latest)
}

func (h *NewsHandler) Latest(c echo.Context) error {
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	items, err := h.news.Latest(c.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error("news fetch failed", xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, items)
}

package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"CryptoAPI/internal/domain/models"
	"CryptoAPI/internal/usecase"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

// MarketHandler exposes market snapshots, histories and exchange data.
type MarketHandler struct {
	logger *xlogger.Logger
	market *usecase.MarketUsecase
}

func NewMarketHandler(logger *xlogger.Logger, market *usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{logger: logger, market: market}
}

func (h *MarketHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/assets")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/details", h.Detail)
	g.GET("/:id/history", h.History)
	g.GET("/:id/volume", h.Volume)
	g.GET("/:id/exchanges", h.Exchanges)
}

// List returns one page of the top-ranked assets. The total count rides
// the X-Total-Count header and the payload is marked uncacheable so
// pagination stays consistent with the header.
func (h *MarketHandler) List(c echo.Context) error {
	req := &models.ListAssetsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	page, total, err := h.market.ListAssets(c.Request().Context(), req.Skip, req.Limit)
	if err != nil {
		h.logger.Error("list assets failed", xlogger.Error(err))
		return respondDomainError(c, err)
	}

	c.Response().Header().Set("X-Total-Count", strconv.Itoa(total))
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store, max-age=0")
	return xhttp.ListResponse(c, page, int64(total))
}

func (h *MarketHandler) Get(c echo.Context) error {
	req := &models.AssetRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	asset, err := h.market.GetAsset(c.Request().Context(), req.ID)
	if err != nil {
		h.logger.Error("get asset failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, asset)
}

func (h *MarketHandler) Detail(c echo.Context) error {
	req := &models.AssetRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	profile, err := h.market.GetDetail(c.Request().Context(), req.ID)
	if err != nil {
		h.logger.Error("get asset detail failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, profile)
}

func (h *MarketHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	entries, err := h.market.GetHistory(c.Request().Context(), req.ID, req.Days)
	if err != nil {
		h.logger.Error("get history failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, entries)
}

func (h *MarketHandler) Volume(c echo.Context) error {
	req := &models.VolumeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.market.GetAverageVolume(c.Request().Context(), req.ID, req.Days)
	if err != nil {
		h.logger.Error("get average volume failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *MarketHandler) Exchanges(c echo.Context) error {
	req := &models.AssetRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tickers, err := h.market.GetExchanges(c.Request().Context(), req.ID)
	if err != nil {
		h.logger.Error("get exchanges failed", xlogger.String("id", req.ID), xlogger.Error(err))
		return respondDomainError(c, err)
	}
	return xhttp.SuccessResponse(c, tickers)
}

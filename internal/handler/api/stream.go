package api

import (
	"github.com/labstack/echo/v4"

	"CryptoAPI/internal/service/stream"
	xlogger "CryptoAPI/pkg/logger"
)

// StreamHandler upgrades clients onto the live price feed.
type StreamHandler struct {
	logger *xlogger.Logger
	hub    *stream.Hub
}

func NewStreamHandler(logger *xlogger.Logger, hub *stream.Hub) *StreamHandler {
	return &StreamHandler{logger: logger, hub: hub}
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/prices", h.Prices)
}

// Prices hands the connection to the hub. The upgrader writes its own
// error response when the handshake fails.
func (h *StreamHandler) Prices(c echo.Context) error {
	if err := h.hub.Subscribe(c.Response(), c.Request()); err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	return nil
}

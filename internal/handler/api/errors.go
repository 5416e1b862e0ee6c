package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/usecase"
	xhttp "CryptoAPI/pkg/http"
)

// retryAfterSeconds hints clients how long to back off when the
// upstream provider throttles us.
const retryAfterSeconds = 30

// respondDomainError translates usecase failures into transport errors.
func respondDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, drepo.ErrAssetNotFound):
		return xhttp.NotFoundResponse(c, []*xhttp.AppError{
			xhttp.NotFoundError("cryptocurrency not found"),
		})
	case errors.Is(err, usecase.ErrNoExchangeData):
		return xhttp.NotFoundResponse(c, []*xhttp.AppError{
			xhttp.NotFoundError("exchange data not available for this cryptocurrency"),
		})
	case errors.Is(err, usecase.ErrNoSentimentData):
		return xhttp.NotFoundResponse(c, []*xhttp.AppError{
			xhttp.NotFoundError("sentiment data not available"),
		})
	case errors.Is(err, drepo.ErrRateLimited):
		return xhttp.UnavailableResponse(c, retryAfterSeconds, []*xhttp.AppError{
			xhttp.UnavailableError("upstream rate limit reached"),
		})
	case errors.Is(err, usecase.ErrInsufficientData):
		return xhttp.UnavailableResponse(c, retryAfterSeconds, []*xhttp.AppError{
			xhttp.UnavailableError("insufficient price data from upstream"),
		})
	case errors.Is(err, drepo.ErrUpstream):
		return xhttp.BadGatewayResponse(c, []*xhttp.AppError{
			xhttp.BadGatewayError("market data request failed upstream"),
		})
	}
	return xhttp.AppErrorResponse(c, err)
}

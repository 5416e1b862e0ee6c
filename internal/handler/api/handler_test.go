package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	xlogger "CryptoAPI/pkg/logger"
)

// stubSource serves canned market data. A non-nil err fails every call.
type stubSource struct {
	assets  []models.Asset
	profile *models.AssetProfile
	chart   *models.MarketChart
	tickers []models.Ticker
	err     error
	pingErr error
}

func (s *stubSource) Markets(ctx context.Context, ids []string) ([]models.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(ids) == 0 {
		return s.assets, nil
	}
	out := make([]models.Asset, 0, len(ids))
	for _, a := range s.assets {
		for _, id := range ids {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (s *stubSource) Profile(ctx context.Context, id string) (*models.AssetProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.profile == nil {
		return nil, drepo.ErrAssetNotFound
	}
	return s.profile, nil
}

func (s *stubSource) MarketChart(ctx context.Context, id string, days int) (*models.MarketChart, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.chart == nil {
		return nil, drepo.ErrAssetNotFound
	}
	return s.chart, nil
}

func (s *stubSource) Tickers(ctx context.Context, id string) ([]models.Ticker, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tickers, nil
}

func (s *stubSource) Ping(ctx context.Context) error { return s.pingErr }

// envelope mirrors the API response wrapper with the payload left raw.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func decodeErrors(t *testing.T, env envelope) []errorBody {
	t.Helper()
	var errs []errorBody
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	return errs
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

// chartFixture builds a chart with one point per value, a day apart,
// oldest first, with volumes mirroring prices.
func chartFixture(values ...float64) *models.MarketChart {
	base := int64(1700000000000)
	points := make([]models.PricePoint, len(values))
	for i, v := range values {
		points[i] = models.PricePoint{
			Time:  time.UnixMilli(base + int64(i)*86400000),
			Value: v,
		}
	}
	return &models.MarketChart{Prices: points, TotalVolumes: points}
}

package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/usecase"
)

func marketEcho(t *testing.T, source drepo.MarketSource) *echo.Echo {
	t.Helper()
	e := echo.New()
	NewMarketHandler(testLogger(t), usecase.NewMarketUsecase(source)).RegisterRoutes(e)
	return e
}

func fiveAssets() []models.Asset {
	ids := []string{"bitcoin", "ethereum", "tether", "solana", "cardano"}
	out := make([]models.Asset, len(ids))
	for i, id := range ids {
		out[i] = models.Asset{ID: id, CurrentPrice: float64(1000 * (i + 1)), MarketCapRank: i + 1}
	}
	return out
}

func TestListAssetsEndpoint(t *testing.T) {
	e := marketEcho(t, &stubSource{assets: fiveAssets()})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets?skip=1&limit=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "no-store, max-age=0", rec.Header().Get(echo.HeaderCacheControl))

	var page struct {
		Rows  []models.Asset `json:"rows"`
		Total int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "ethereum", page.Rows[0].ID)
	assert.Equal(t, "tether", page.Rows[1].ID)
}

func TestListAssetsValidation(t *testing.T) {
	e := marketEcho(t, &stubSource{assets: fiveAssets()})

	tests := []struct {
		name   string
		target string
	}{
		{"negative limit", "/api/assets?limit=-1"},
		{"limit above page cap", "/api/assets?limit=300"},
		{"negative skip", "/api/assets?skip=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, e, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, env.Status)
		})
	}
}

func TestGetAssetEndpoint(t *testing.T) {
	e := marketEcho(t, &stubSource{assets: []models.Asset{
		{ID: "bitcoin", Symbol: "btc", CurrentPrice: 67234.56789},
	}})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin")

	assert.Equal(t, http.StatusOK, rec.Code)

	var asset models.Asset
	require.NoError(t, json.Unmarshal(env.Data, &asset))
	assert.Equal(t, "bitcoin", asset.ID)
	assert.Equal(t, 67234.57, asset.CurrentPrice)
}

func TestGetAssetNotFound(t *testing.T) {
	e := marketEcho(t, &stubSource{})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/doge-ghost")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errs := decodeErrors(t, env)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_NOT_FOUND", errs[0].Code)
}

func TestHistoryEndpointNewestFirst(t *testing.T) {
	e := marketEcho(t, &stubSource{chart: chartFixture(100.111, 200.222)})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin/history?days=30")

	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 200.22, entries[0].Price)
	assert.Equal(t, 100.11, entries[1].Price)
}

func TestExchangesEndpointEmpty(t *testing.T) {
	e := marketEcho(t, &stubSource{})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/obscure/exchanges")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errs := decodeErrors(t, env)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_NOT_FOUND", errs[0].Code)
}

func TestUpstreamFailureMapsTo502(t *testing.T) {
	e := marketEcho(t, &stubSource{err: drepo.ErrUpstream})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	errs := decodeErrors(t, env)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_BAD_GATEWAY", errs[0].Code)
}

func TestRateLimitMapsTo503WithRetryAfter(t *testing.T) {
	e := marketEcho(t, &stubSource{err: drepo.ErrRateLimited})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	errs := decodeErrors(t, env)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_UNAVAILABLE", errs[0].Code)
}

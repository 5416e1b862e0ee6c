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

func analyticsEcho(t *testing.T, source drepo.MarketSource, references []string) *echo.Echo {
	t.Helper()
	e := echo.New()
	NewAnalyticsHandler(testLogger(t), usecase.NewAnalyticsUsecase(source, references)).RegisterRoutes(e)
	return e
}

func risingChart(n int) *models.MarketChart {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	return chartFixture(values...)
}

func TestSignalEndpoint(t *testing.T) {
	e := analyticsEcho(t, &stubSource{chart: risingChart(30)}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin/signal")

	assert.Equal(t, http.StatusOK, rec.Code)

	var signal models.Signal
	require.NoError(t, json.Unmarshal(env.Data, &signal))
	assert.Equal(t, "long", signal.Action)
	assert.Equal(t, "short", signal.Horizon)
	assert.Equal(t, 20, signal.Period)
	assert.Equal(t, "price above EMA 20", signal.Reason)
}

func TestSignalEndpointLongHorizon(t *testing.T) {
	e := analyticsEcho(t, &stubSource{chart: risingChart(250)}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin/signal?horizon=long")

	assert.Equal(t, http.StatusOK, rec.Code)

	var signal models.Signal
	require.NoError(t, json.Unmarshal(env.Data, &signal))
	assert.Equal(t, 200, signal.Period)
	assert.Equal(t, "long", signal.Horizon)
}

func TestSignalEndpointRejectsUnknownHorizon(t *testing.T) {
	e := analyticsEcho(t, &stubSource{chart: risingChart(30)}, nil)

	rec, _ := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin/signal?horizon=weekly")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorrelationEndpoint(t *testing.T) {
	e := analyticsEcho(t, &stubSource{chart: risingChart(10)}, []string{"bitcoin", "ethereum"})

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/solana/correlation")

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.CorrelationResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "solana", result.Asset)
	assert.Equal(t, 180, result.Days)
	assert.Equal(t, 1.0, result.Correlations["bitcoin"])
	assert.Equal(t, 1.0, result.Correlations["ethereum"])
}

func TestVolatilityEndpointFlatSeries(t *testing.T) {
	e := analyticsEcho(t, &stubSource{chart: chartFixture(100, 100, 100)}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/tether/volatility")

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.VolatilityResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 90, result.Days)
	assert.Equal(t, 0.0, result.Annualized)
}

func TestSentimentEndpoint(t *testing.T) {
	e := analyticsEcho(t, &stubSource{profile: &models.AssetProfile{
		ID:            "bitcoin",
		SentimentUp:   80,
		SentimentDown: 20,
	}}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/bitcoin/sentiment")

	assert.Equal(t, http.StatusOK, rec.Code)

	var score models.SentimentScore
	require.NoError(t, json.Unmarshal(env.Data, &score))
	assert.Equal(t, 60.0, score.Score)
	assert.Equal(t, "positive", score.Label)
}

func TestSentimentEndpointNoVotes(t *testing.T) {
	e := analyticsEcho(t, &stubSource{profile: &models.AssetProfile{ID: "obscure"}}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/assets/obscure/sentiment")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errs := decodeErrors(t, env)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_NOT_FOUND", errs[0].Code)
}

func TestProfitLossEndpoint(t *testing.T) {
	e := analyticsEcho(t, &stubSource{assets: []models.Asset{
		{ID: "bitcoin", CurrentPrice: 60000},
	}}, nil)

	rec, env := doRequest(t, e, http.MethodGet,
		"/api/pnl?asset=bitcoin&amount=0.5&purchase_price=50000&operation=long")

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.ProfitLossResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "profit", result.Status)
	assert.Equal(t, 5000.0, result.ProfitLoss)
	assert.Equal(t, 20.0, result.ProfitLossPct)
}

func TestProfitLossEndpointMissingParams(t *testing.T) {
	e := analyticsEcho(t, &stubSource{}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/pnl?asset=bitcoin")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestProfitLossEndpointRejectsNegativeAmount(t *testing.T) {
	e := analyticsEcho(t, &stubSource{}, nil)

	rec, _ := doRequest(t, e, http.MethodGet,
		"/api/pnl?asset=bitcoin&amount=-1&purchase_price=50000&operation=long")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/service/indicators"
	"CryptoAPI/pkg/util"
)

// AnalyticsUsecase computes derived metrics from chart and profile data.
type AnalyticsUsecase struct {
	source     drepo.MarketSource
	references []string
}

// NewAnalyticsUsecase creates the analytics usecase. references are the
// asset ids every correlation request is measured against.
func NewAnalyticsUsecase(source drepo.MarketSource, references []string) *AnalyticsUsecase {
	return &AnalyticsUsecase{source: source, references: references}
}

// Signal compares the latest price against the horizon's EMA over one
// day of intraday prices.
func (u *AnalyticsUsecase) Signal(ctx context.Context, id string, horizon drepo.Horizon) (*models.Signal, error) {
	chart, err := u.source.MarketChart(ctx, id, 1)
	if err != nil {
		return nil, err
	}
	prices := chartValues(chart.Prices)
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}

	period := horizon.EMAPeriod()
	ema := indicators.EMA(prices, period)
	price := prices[len(prices)-1]

	// Equal price and EMA lands on the short side.
	action, rel := "short", "below"
	if price > ema {
		action, rel = "long", "above"
	}

	return &models.Signal{
		Asset:     id,
		Horizon:   string(horizon),
		Action:    action,
		Price:     util.Round2(price),
		EMA:       util.Round2(ema),
		Period:    period,
		Reason:    fmt.Sprintf("price %s EMA %d", rel, period),
		Timestamp: time.Now().UTC(),
	}, nil
}

// Correlation reports Pearson r between the asset and each reference
// series over the window. Reference charts are fetched concurrently and
// every series must resolve.
func (u *AnalyticsUsecase) Correlation(ctx context.Context, id string, days int) (*models.CorrelationResult, error) {
	series := make(map[string][]float64, len(u.references)+1)

	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(u.references)+1)

	fetch := func(asset string) {
		defer wg.Done()
		chart, err := u.source.MarketChart(ctx, asset, days)
		if err != nil {
			errCh <- fmt.Errorf("%s: %w", asset, err)
			return
		}
		mu.Lock()
		series[asset] = chartValues(chart.Prices)
		mu.Unlock()
	}

	wg.Add(1)
	go fetch(id)
	for _, ref := range u.references {
		if ref == id {
			continue
		}
		wg.Add(1)
		go fetch(ref)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}

	base := series[id]
	if len(base) < 2 {
		return nil, ErrInsufficientData
	}

	correlations := make(map[string]float64, len(u.references))
	for _, ref := range u.references {
		a, b := alignTail(base, series[ref])
		correlations[ref] = util.Round4(indicators.PearsonCorrelation(a, b))
	}

	return &models.CorrelationResult{
		Asset:        id,
		Days:         days,
		Correlations: correlations,
	}, nil
}

// Volatility annualizes the population standard deviation of daily log
// returns over the window.
func (u *AnalyticsUsecase) Volatility(ctx context.Context, id string, days int) (*models.VolatilityResult, error) {
	chart, err := u.source.MarketChart(ctx, id, days)
	if err != nil {
		return nil, err
	}
	prices := chartValues(chart.Prices)
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}

	returns := indicators.LogReturns(prices)
	return &models.VolatilityResult{
		Asset:      id,
		Days:       days,
		Daily:      util.Round4(indicators.StdDev(returns)),
		Annualized: util.Round4(indicators.AnnualizedVolatility(returns, indicators.TradingDaysPerYear)),
	}, nil
}

// Sentiment scores community votes. The provider reports percentages
// summing to 100 when votes exist and zeroes when none were cast.
func (u *AnalyticsUsecase) Sentiment(ctx context.Context, id string) (*models.SentimentScore, error) {
	profile, err := u.source.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.SentimentUp == 0 && profile.SentimentDown == 0 {
		return nil, ErrNoSentimentData
	}

	score := util.Round4(profile.SentimentUp - profile.SentimentDown)
	label := "neutral"
	switch {
	case score > 0.1:
		label = "positive"
	case score < -0.1:
		label = "negative"
	}

	return &models.SentimentScore{
		Asset:       id,
		UpPercent:   profile.SentimentUp,
		DownPercent: profile.SentimentDown,
		Score:       score,
		Label:       label,
	}, nil
}

// ProfitLoss values a hypothetical position at the current market price.
// Money math runs on decimals; floats only cross the API boundary.
func (u *AnalyticsUsecase) ProfitLoss(ctx context.Context, req *models.ProfitLossRequest) (*models.ProfitLossResult, error) {
	assets, err := u.source.Markets(ctx, []string{req.Asset})
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, drepo.ErrAssetNotFound
	}
	current := assets[0].CurrentPrice

	cur := decimal.NewFromFloat(current)
	purchase := decimal.NewFromFloat(req.PurchasePrice)
	amount := decimal.NewFromFloat(req.Amount)

	diff := cur.Sub(purchase)
	if req.Operation == "short" {
		diff = diff.Neg()
	}
	pl := diff.Mul(amount)

	status := "profit"
	if pl.IsNegative() {
		status = "loss"
	}

	cost := purchase.Mul(amount)
	pct := decimal.Zero
	if !cost.IsZero() {
		pct = pl.Div(cost).Mul(decimal.NewFromInt(100))
	}

	return &models.ProfitLossResult{
		Asset:         req.Asset,
		Operation:     req.Operation,
		Amount:        req.Amount,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  util.Round2(current),
		Status:        status,
		ProfitLoss:    pl.Abs().Round(2).InexactFloat64(),
		ProfitLossPct: pct.Abs().Round(2).InexactFloat64(),
	}, nil
}

func chartValues(points []models.PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// alignTail trims both series to their shortest common length, keeping
// the most recent points.
func alignTail(a, b []float64) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[len(a)-n:], b[len(b)-n:]
}

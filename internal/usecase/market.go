package usecase

import (
	"context"
	"fmt"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	"CryptoAPI/internal/service/indicators"
	"CryptoAPI/pkg/util"
)

// MarketUsecase serves market snapshots, price histories and exchange
// listings.
type MarketUsecase struct {
	source drepo.MarketSource
}

func NewMarketUsecase(source drepo.MarketSource) *MarketUsecase {
	return &MarketUsecase{source: source}
}

// ListAssets returns one page of the top-ranked assets plus the total
// count available for pagination headers.
func (u *MarketUsecase) ListAssets(ctx context.Context, skip, limit int) ([]models.Asset, int, error) {
	assets, err := u.source.Markets(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	total := len(assets)
	if skip >= total {
		return []models.Asset{}, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}

	page := make([]models.Asset, end-skip)
	copy(page, assets[skip:end])
	return page, total, nil
}

// GetAsset returns the market snapshot for one asset. The markets
// endpoint answers unknown ids with an empty page rather than a 404.
func (u *MarketUsecase) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	assets, err := u.source.Markets(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, drepo.ErrAssetNotFound
	}

	a := assets[0]
	a.CurrentPrice = util.Round2(a.CurrentPrice)
	return &a, nil
}

// GetDetail returns the descriptive profile for one asset.
func (u *MarketUsecase) GetDetail(ctx context.Context, id string) (*models.AssetProfile, error) {
	profile, err := u.source.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.CurrentPrice = util.Round2(profile.CurrentPrice)
	return profile, nil
}

// GetHistory returns the price series newest first with timestamps
// rendered in UTC.
func (u *MarketUsecase) GetHistory(ctx context.Context, id string, days int) ([]models.HistoryEntry, error) {
	chart, err := u.source.MarketChart(ctx, id, days)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(chart.Prices))
	for i := len(chart.Prices) - 1; i >= 0; i-- {
		p := chart.Prices[i]
		entries = append(entries, models.HistoryEntry{
			Timestamp: util.FormatTimestamp(p.Time),
			Price:     util.Round2(p.Value),
		})
	}
	return entries, nil
}

// GetAverageVolume returns the mean traded volume over the window.
func (u *MarketUsecase) GetAverageVolume(ctx context.Context, id string, days int) (*models.VolumeResult, error) {
	chart, err := u.source.MarketChart(ctx, id, days)
	if err != nil {
		return nil, err
	}
	if len(chart.TotalVolumes) == 0 {
		return nil, fmt.Errorf("%w: empty volume series for %s", drepo.ErrUpstream, id)
	}

	volumes := make([]float64, len(chart.TotalVolumes))
	for i, v := range chart.TotalVolumes {
		volumes[i] = v.Value
	}

	return &models.VolumeResult{
		Asset:         id,
		Days:          days,
		AverageVolume: util.Round2(indicators.Mean(volumes)),
	}, nil
}

// GetExchanges returns the exchange listings for one asset.
func (u *MarketUsecase) GetExchanges(ctx context.Context, id string) ([]models.Ticker, error) {
	tickers, err := u.source.Tickers(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(tickers) == 0 {
		return nil, ErrNoExchangeData
	}
	return tickers, nil
}

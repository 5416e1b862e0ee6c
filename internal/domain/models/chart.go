package models

import (
	"encoding/json"
	"time"
)

// PricePoint is one [timestamp, value] pair of a market chart series.
type PricePoint struct {
	Time  time.Time
	Value float64
}

// UnmarshalJSON decodes the provider's [unix_ms, value] pair format.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Time = time.UnixMilli(int64(pair[0]))
	p.Value = pair[1]
	return nil
}

// MarshalJSON keeps the pair format so cached charts decode back.
func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.Time.UnixMilli()), p.Value})
}

// MarketChart is the time series bundle for one asset.
type MarketChart struct {
	Prices       []PricePoint `json:"prices"`
	MarketCaps   []PricePoint `json:"market_caps"`
	TotalVolumes []PricePoint `json:"total_volumes"`
}

// HistoryEntry is one row of the human-readable price history.
type HistoryEntry struct {
	Timestamp string  `json:"timestamp"`
	Price     float64 `json:"price"`
}

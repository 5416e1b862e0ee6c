package models

import "time"

// Signal is a trend call derived from an EMA crossover check.
type Signal struct {
	Asset     string    `json:"asset"`
	Horizon   string    `json:"horizon"` // "short" or "long"
	Action    string    `json:"action"`  // "long" or "short"
	Price     float64   `json:"price"`
	EMA       float64   `json:"ema"`
	Period    int       `json:"period"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// CorrelationResult holds Pearson correlations against reference assets.
type CorrelationResult struct {
	Asset        string             `json:"asset"`
	Days         int                `json:"days"`
	Correlations map[string]float64 `json:"correlations"`
}

// VolatilityResult holds realized volatility of daily log returns.
type VolatilityResult struct {
	Asset      string  `json:"asset"`
	Days       int     `json:"days"`
	Daily      float64 `json:"daily_volatility"`
	Annualized float64 `json:"annualized_volatility"`
}

// SentimentScore summarizes community vote sentiment for an asset.
type SentimentScore struct {
	Asset       string  `json:"asset"`
	UpPercent   float64 `json:"votes_up_percentage"`
	DownPercent float64 `json:"votes_down_percentage"`
	Score       float64 `json:"score"`
	Label       string  `json:"label"` // "positive", "negative", "neutral"
}

// ProfitLossResult is the outcome of a hypothetical position. ProfitLoss
// carries the absolute value; Status says which side of zero it landed on.
type ProfitLossResult struct {
	Asset         string  `json:"asset"`
	Operation     string  `json:"operation"` // "long" or "short"
	Amount        float64 `json:"amount"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	Status        string  `json:"status"` // "profit" or "loss"
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_percent"`
}

// VolumeResult holds average trading volume over a window.
type VolumeResult struct {
	Asset         string  `json:"asset"`
	Days          int     `json:"days"`
	AverageVolume float64 `json:"average_volume"`
}

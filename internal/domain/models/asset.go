package models

import "time"

// Asset is a market snapshot row for one cryptocurrency.
type Asset struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Image             string    `json:"image,omitempty"`
	CurrentPrice      float64   `json:"current_price"`
	MarketCap         float64   `json:"market_cap"`
	MarketCapRank     int       `json:"market_cap_rank"`
	TotalVolume       float64   `json:"total_volume"`
	High24h           float64   `json:"high_24h"`
	Low24h            float64   `json:"low_24h"`
	PriceChange24h    float64   `json:"price_change_24h"`
	PriceChangePct24h float64   `json:"price_change_percentage_24h"`
	CirculatingSupply float64   `json:"circulating_supply"`
	TotalSupply       float64   `json:"total_supply"`
	ATH               float64   `json:"ath"`
	ATL               float64   `json:"atl"`
	LastUpdated       time.Time `json:"last_updated"`
}

// AssetProfile carries descriptive detail for one cryptocurrency.
type AssetProfile struct {
	ID                string       `json:"id"`
	Symbol            string       `json:"symbol"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	GenesisDate       string       `json:"genesis_date,omitempty"`
	Categories        []string     `json:"categories,omitempty"`
	MarketCapRank     int          `json:"market_cap_rank"`
	CurrentPrice      float64      `json:"current_price"`
	MarketCap         float64      `json:"market_cap"`
	CirculatingSupply float64      `json:"circulating_supply"`
	TotalSupply       float64      `json:"total_supply"`
	ATH               float64      `json:"ath"`
	ATHDate           string       `json:"ath_date,omitempty"`
	ATL               float64      `json:"atl"`
	ATLDate           string       `json:"atl_date,omitempty"`
	SentimentUp       float64      `json:"sentiment_votes_up_percentage"`
	SentimentDown     float64      `json:"sentiment_votes_down_percentage"`
	Links             ProfileLinks `json:"links"`
}

// ProfileLinks collects the social and web references of an asset.
type ProfileLinks struct {
	Homepage string `json:"homepage,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Reddit   string `json:"reddit,omitempty"`
}

// Ticker is one exchange listing for an asset.
type Ticker struct {
	Exchange   string  `json:"exchange_name"`
	Base       string  `json:"base"`
	Target     string  `json:"target"`
	Last       float64 `json:"last"`
	Volume     float64 `json:"volume"`
	TradeURL   string  `json:"trade_url,omitempty"`
	TrustScore string  `json:"trust_score,omitempty"`
}

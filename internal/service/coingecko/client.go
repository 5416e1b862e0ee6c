package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	xhttp "CryptoAPI/pkg/http"
	xlogger "CryptoAPI/pkg/logger"
)

const (
	// pageLimit is the provider's maximum rows per markets page.
	pageLimit = 250
)

// Client implements a MarketSource backed by the CoinGecko REST API.
type Client struct {
	baseURL  string
	apiKey   string
	currency string
	http     *xhttp.Client
	metrics  drepo.Metrics
	logger   *xlogger.Logger
}

// New creates a new CoinGecko MarketSource.
func New(baseURL, apiKey, currency string, httpClient *xhttp.Client, metrics drepo.Metrics, logger *xlogger.Logger) drepo.MarketSource {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		currency: strings.ToLower(currency),
		http:     httpClient,
		metrics:  metrics,
		logger:   logger,
	}
}

// Markets returns snapshot rows for the given ids, or the top-ranked
// assets when ids is empty.
func (c *Client) Markets(ctx context.Context, ids []string) ([]models.Asset, error) {
	query := map[string][]string{
		"vs_currency": {c.currency},
		"order":       {"market_cap_desc"},
		"per_page":    {strconv.Itoa(pageLimit)},
		"page":        {"1"},
		"sparkline":   {"false"},
	}
	if len(ids) > 0 {
		query["ids"] = []string{strings.Join(ids, ",")}
	}

	var assets []models.Asset
	if err := c.get(ctx, "markets", "/coins/markets", query, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

type coinTicker struct {
	Base   string `json:"base"`
	Target string `json:"target"`
	Market struct {
		Name string `json:"name"`
	} `json:"market"`
	Last       float64 `json:"last"`
	Volume     float64 `json:"volume"`
	TradeURL   string  `json:"trade_url"`
	TrustScore string  `json:"trust_score"`
}

type coinDetail struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	Description   map[string]string `json:"description"`
	GenesisDate   string            `json:"genesis_date"`
	Categories    []string          `json:"categories"`
	MarketCapRank int               `json:"market_cap_rank"`
	SentimentUp   float64           `json:"sentiment_votes_up_percentage"`
	SentimentDown float64           `json:"sentiment_votes_down_percentage"`
	MarketData    struct {
		CurrentPrice      map[string]float64 `json:"current_price"`
		MarketCap         map[string]float64 `json:"market_cap"`
		CirculatingSupply float64            `json:"circulating_supply"`
		TotalSupply       float64            `json:"total_supply"`
		ATH               map[string]float64 `json:"ath"`
		ATHDate           map[string]string  `json:"ath_date"`
		ATL               map[string]float64 `json:"atl"`
		ATLDate           map[string]string  `json:"atl_date"`
	} `json:"market_data"`
	Links struct {
		Homepage          []string `json:"homepage"`
		TwitterScreenName string   `json:"twitter_screen_name"`
		SubredditURL      string   `json:"subreddit_url"`
	} `json:"links"`
}

// Profile returns descriptive detail for one asset.
func (c *Client) Profile(ctx context.Context, id string) (*models.AssetProfile, error) {
	query := map[string][]string{
		"localization":   {"false"},
		"tickers":        {"false"},
		"market_data":    {"true"},
		"community_data": {"true"},
		"developer_data": {"false"},
		"sparkline":      {"false"},
	}

	var detail coinDetail
	if err := c.get(ctx, "coin", "/coins/"+id, query, &detail); err != nil {
		return nil, err
	}

	md := detail.MarketData
	profile := &models.AssetProfile{
		ID:                detail.ID,
		Symbol:            detail.Symbol,
		Name:              detail.Name,
		Description:       detail.Description["en"],
		GenesisDate:       detail.GenesisDate,
		Categories:        detail.Categories,
		MarketCapRank:     detail.MarketCapRank,
		CurrentPrice:      md.CurrentPrice[c.currency],
		MarketCap:         md.MarketCap[c.currency],
		CirculatingSupply: md.CirculatingSupply,
		TotalSupply:       md.TotalSupply,
		ATH:               md.ATH[c.currency],
		ATHDate:           md.ATHDate[c.currency],
		ATL:               md.ATL[c.currency],
		ATLDate:           md.ATLDate[c.currency],
		SentimentUp:       detail.SentimentUp,
		SentimentDown:     detail.SentimentDown,
		Links: models.ProfileLinks{
			Twitter: detail.Links.TwitterScreenName,
			Reddit:  detail.Links.SubredditURL,
		},
	}
	if len(detail.Links.Homepage) > 0 {
		profile.Links.Homepage = detail.Links.Homepage[0]
	}
	return profile, nil
}

// MarketChart returns price, market cap and volume series. Multi-day
// requests pin daily granularity so return math stays on one scale.
func (c *Client) MarketChart(ctx context.Context, id string, days int) (*models.MarketChart, error) {
	query := map[string][]string{
		"vs_currency": {c.currency},
		"days":        {strconv.Itoa(days)},
	}
	if days > 1 {
		query["interval"] = []string{"daily"}
	}

	var chart models.MarketChart
	if err := c.get(ctx, "market_chart", "/coins/"+id+"/market_chart", query, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// Tickers returns exchange listings for one asset.
func (c *Client) Tickers(ctx context.Context, id string) ([]models.Ticker, error) {
	var payload struct {
		Tickers []coinTicker `json:"tickers"`
	}
	if err := c.get(ctx, "tickers", "/coins/"+id+"/tickers", nil, &payload); err != nil {
		return nil, err
	}

	tickers := make([]models.Ticker, 0, len(payload.Tickers))
	for _, t := range payload.Tickers {
		tickers = append(tickers, models.Ticker{
			Exchange:   t.Market.Name,
			Base:       t.Base,
			Target:     t.Target,
			Last:       t.Last,
			Volume:     t.Volume,
			TradeURL:   t.TradeURL,
			TrustScore: t.TrustScore,
		})
	}
	return tickers, nil
}

// Ping checks provider availability.
func (c *Client) Ping(ctx context.Context) error {
	var pong struct {
		GeckoSays string `json:"gecko_says"`
	}
	return c.get(ctx, "ping", "/ping", nil, &pong)
}

func (c *Client) get(ctx context.Context, endpoint, path string, query map[string][]string, dest interface{}) error {
	start := time.Now()
	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		Headers:     c.headers(),
		QueryParams: query,
	})
	c.metrics.RecordUpstreamLatency(endpoint, time.Since(start).Seconds())

	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			c.metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(se.StatusCode))
			if se.StatusCode == http.StatusTooManyRequests {
				c.logger.Warn("coingecko rate limited", xlogger.String("path", path))
				return fmt.Errorf("%w: %s", drepo.ErrRateLimited, path)
			}
			return fmt.Errorf("%w: status %d on %s", drepo.ErrUpstream, se.StatusCode, path)
		}
		c.metrics.RecordUpstreamRequest(endpoint, "error")
		return fmt.Errorf("%w: %w", drepo.ErrUpstream, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return drepo.ErrAssetNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: status %d on %s: %s", drepo.ErrUpstream, resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode %s: %w", drepo.ErrUpstream, path, err)
	}

	c.logger.Debug("coingecko request",
		xlogger.String("path", path),
		xlogger.Duration("duration_ms", time.Since(start)),
	)
	return nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		if strings.Contains(c.baseURL, "pro-api") {
			h["x-cg-pro-api-key"] = c.apiKey
		} else {
			h["x-cg-demo-api-key"] = c.apiKey
		}
	}
	return h
}

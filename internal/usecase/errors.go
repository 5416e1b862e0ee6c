package usecase

import "errors"

var (
	// ErrNoExchangeData says the provider lists no tickers for the asset.
	ErrNoExchangeData = errors.New("exchange data not available")
	// ErrNoSentimentData says the provider has no community votes for the asset.
	ErrNoSentimentData = errors.New("sentiment data not available")
	// ErrInsufficientData says the price series is too short for the metric.
	ErrInsufficientData = errors.New("insufficient price data")
)

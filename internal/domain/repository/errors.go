package repository

import "errors"

var (
	// ErrAssetNotFound means the provider does not know the asset id.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrRateLimited means the provider throttled us and the caller
	// should retry later.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrUpstream means the provider failed or returned garbage.
	ErrUpstream = errors.New("market data provider unavailable")
)

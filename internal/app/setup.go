package app

import (
	"time"

	"vn-ohlcv/internal/provider"
	"vn-ohlcv/internal/provider/vndirect"
)

// CreateProvider creates the dchart-backed DataProvider from config.
func CreateProvider(cfg *Config) (*provider.VNDirectProvider, error) {
	retries := cfg.HTTPRetries
	if retries == 0 {
		retries = -1 // vndirect.Options treats 0 as "default"
	}
	return provider.NewVNDirectProvider(vndirect.Options{
		URL:       cfg.DChartURL,
		Timeout:   cfg.HTTPTimeout,
		Retries:   retries,
		RetryWait: 2 * time.Second,

		MinInterval: cfg.RequestInterval,
	})
}

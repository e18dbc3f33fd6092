package provider

import (
	"context"
	"time"

	"vn-ohlcv/internal/model"
)

// DataProvider is the abstraction used by the application when accessing a data source.
// Implementations return daily bars ascending by date, one bar per calendar day.
type DataProvider interface {
	GetName() string
	FetchDaily(ctx context.Context, symbol string, from, to time.Time) ([]model.Bar, error)
	Close() error
}

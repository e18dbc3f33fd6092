package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vn-ohlcv/internal/indicator"
	"vn-ohlcv/internal/model"
	"vn-ohlcv/internal/provider"
	"vn-ohlcv/internal/resample"
	"vn-ohlcv/internal/saver"
)

// ErrNoData is returned when the provider has no bars in the requested range.
var ErrNoData = errors.New("no data returned in selected range")

// Enriched holds the three enriched resolutions of one run.
type Enriched struct {
	Daily   []model.EnrichedBar
	Weekly  []model.EnrichedBar
	Monthly []model.EnrichedBar
}

// Of returns the sequence for a resolution.
func (e *Enriched) Of(res model.Resolution) []model.EnrichedBar {
	switch res {
	case model.Week:
		return e.Weekly
	case model.Month:
		return e.Monthly
	default:
		return e.Daily
	}
}

// EnrichAll resamples daily bars to weekly and monthly and enriches all three.
// Resampling and indicator errors are returned wrapped, never recovered.
func EnrichAll(daily []model.Bar) (*Enriched, error) {
	weekly, err := resample.Resample(daily, resample.Weekly)
	if err != nil {
		return nil, fmt.Errorf("weekly bars: %w", err)
	}
	monthly, err := resample.Resample(daily, resample.Monthly)
	if err != nil {
		return nil, fmt.Errorf("monthly bars: %w", err)
	}

	var out Enriched
	if out.Daily, err = indicator.Enrich(daily); err != nil {
		return nil, fmt.Errorf("enrich daily: %w", err)
	}
	if out.Weekly, err = indicator.Enrich(weekly); err != nil {
		return nil, fmt.Errorf("enrich weekly: %w", err)
	}
	if out.Monthly, err = indicator.Enrich(monthly); err != nil {
		return nil, fmt.Errorf("enrich monthly: %w", err)
	}
	return &out, nil
}

// Pipeline fetches daily bars for a request and enriches them.
type Pipeline struct {
	DP  provider.DataProvider
	Now func() time.Time
}

// NewPipeline creates a Pipeline using the wall clock.
func NewPipeline(dp provider.DataProvider) *Pipeline {
	return &Pipeline{DP: dp, Now: time.Now}
}

// Enrich fetches and enriches without building a workbook.
func (p *Pipeline) Enrich(ctx context.Context, req model.Request) (*Enriched, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	daily, err := p.DP.FetchDaily(ctx, req.Symbol, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("fetch %s from %s: %w", req.Symbol, p.DP.GetName(), err)
	}
	if len(daily) == 0 {
		return nil, ErrNoData
	}
	slog.Debug("fetched daily bars", "symbol", req.Symbol, "bars", len(daily))
	return EnrichAll(daily)
}

// Run produces the workbook for req with the given annotations.
func (p *Pipeline) Run(ctx context.Context, req model.Request, ann model.Annotations) (*saver.Workbook, error) {
	enr, err := p.Enrich(ctx, req)
	if err != nil {
		return nil, err
	}
	return &saver.Workbook{
		Symbol:      req.Symbol,
		Resolution:  req.Resolution,
		GeneratedAt: p.Now(),
		Daily:       enr.Daily,
		Weekly:      enr.Weekly,
		Monthly:     enr.Monthly,
		Annotations: ann,
	}, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"vn-ohlcv/internal/app"
	"vn-ohlcv/internal/model"
)

// rangeFlags is the symbol + date range form shared by the subcommands.
// Either -days (last N days up to today) or both -from and -to.
type rangeFlags struct {
	symbol string
	days   int
	from   string
	to     string
	res    string
}

func (r *rangeFlags) register(f *flag.FlagSet, withSymbol bool) {
	if withSymbol {
		f.StringVar(&r.symbol, "symbol", "", "instrument symbol (default DEFAULT_SYMBOL)")
	}
	f.IntVar(&r.days, "days", 0, "last N days up to today (default DEFAULT_DAYS)")
	f.StringVar(&r.from, "from", "", "custom range start, YYYY-MM-DD (needs -to)")
	f.StringVar(&r.to, "to", "", "custom range end, YYYY-MM-DD (needs -from)")
	f.StringVar(&r.res, "res", "D", "timeframe tag: D, W or M")
}

var errHalfRange = errors.New("custom range requires both -from and -to")

// request builds the validated request for symbol (r.symbol or the configured
// default when symbol is empty).
func (r *rangeFlags) request(cfg *app.Config, symbol string, now time.Time) (model.Request, error) {
	if symbol == "" {
		symbol = r.symbol
	}
	if symbol == "" {
		symbol = cfg.DefaultSymbol
	}
	res, err := model.ParseResolution(r.res)
	if err != nil {
		return model.Request{}, err
	}

	var req model.Request
	switch {
	case r.from != "" || r.to != "":
		if r.from == "" || r.to == "" {
			return model.Request{}, errHalfRange
		}
		from, err := model.ParseDate(r.from)
		if err != nil {
			return model.Request{}, fmt.Errorf("-from: %w", err)
		}
		to, err := model.ParseDate(r.to)
		if err != nil {
			return model.Request{}, fmt.Errorf("-to: %w", err)
		}
		req = model.NewRequest(symbol, from, to, res)
	default:
		days := r.days
		if days <= 0 {
			days = cfg.DefaultDays
		}
		req = model.LastNDays(symbol, days, now, res)
	}
	if err := req.Validate(); err != nil {
		return model.Request{}, err
	}
	return req, nil
}

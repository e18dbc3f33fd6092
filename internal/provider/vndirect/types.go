package vndirect

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"vn-ohlcv/internal/model"
)

// HistoryResponse is the dchart /history payload: parallel columns plus status.
type HistoryResponse struct {
	T []int64   `json:"t"` // unix seconds
	O []float64 `json:"o"`
	H []float64 `json:"h"`
	L []float64 `json:"l"`
	C []float64 `json:"c"`
	V []float64 `json:"v"`
	S string    `json:"s"` // "ok" on success, "no_data" when the range is empty
}

const (
	statusOK     = "ok"
	statusNoData = "no_data"
)

// check verifies the status and that every column has the same length.
func (r *HistoryResponse) check() error {
	if r.S == statusNoData {
		return nil
	}
	if r.S != statusOK {
		return fmt.Errorf("API status not ok: %s", r.S)
	}
	n := len(r.T)
	for name, col := range map[string]int{"o": len(r.O), "h": len(r.H), "l": len(r.L), "c": len(r.C), "v": len(r.V)} {
		if col != n {
			return fmt.Errorf("mismatched array lengths in API response: t=%d %s=%d", n, name, col)
		}
	}
	return nil
}

// ToBars converts the columns into daily bars for symbol, ascending by date.
// Timestamps map to their UTC calendar day; a repeated day keeps the last row.
func (r *HistoryResponse) ToBars(symbol string) []model.Bar {
	if r.S == statusNoData {
		return []model.Bar{}
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	byDay := make(map[time.Time]int, len(r.T))
	bars := make([]model.Bar, 0, len(r.T))
	for i, ts := range r.T {
		d := model.CalendarDay(time.Unix(ts, 0))
		b := model.Bar{
			Date:       d,
			Open:       r.O[i],
			High:       r.H[i],
			Low:        r.L[i],
			Close:      r.C[i],
			Volume:     r.V[i],
			Symbol:     symbol,
			Resolution: model.Day,
		}
		if j, ok := byDay[d]; ok {
			bars[j] = b
			continue
		}
		byDay[d] = len(bars)
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars
}

// Package preview renders enriched bars as a terminal table.
package preview

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"vn-ohlcv/internal/model"
)

// ErrNoRows is returned when the date filter matches nothing.
var ErrNoRows = errors.New("no data for selected date")

// Header is the preview column set.
var Header = []string{
	"Date", "Open", "High", "Low", "Close", "Volume",
	"SMA20", "SMA50", "EMA20", "EMA50", "RSI14", "ATR14",
	"MACD", "Signal", "BB_Upper", "BB_Lower", "OBV", "VWAP",
}

// Options controls what Render prints.
type Options struct {
	Date  string // YYYY-MM-DD; empty shows every row
	Limit int    // keep only the last Limit rows; 0 shows all
}

// Filter returns the rows dated opts.Date (all rows when empty), trimmed to
// the last opts.Limit rows.
func Filter(bars []model.EnrichedBar, opts Options) []model.EnrichedBar {
	rows := bars
	if opts.Date != "" {
		rows = nil
		for _, b := range bars {
			if b.DateString() == opts.Date {
				rows = append(rows, b)
			}
		}
	}
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[len(rows)-opts.Limit:]
	}
	return rows
}

// Render writes the filtered rows as an aligned table. When nothing matches
// it writes the "no data" message and returns ErrNoRows.
func Render(w io.Writer, bars []model.EnrichedBar, opts Options) error {
	rows := Filter(bars, opts)
	if len(rows) == 0 {
		fmt.Fprintln(w, ErrNoRows.Error())
		return ErrNoRows
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(Header, "\t")+"\t")
	for _, b := range rows {
		fmt.Fprintln(tw, strings.Join(Cells(b), "\t")+"\t")
	}
	return tw.Flush()
}

// Cells formats one row: prices and indicators with 2 decimals, volume as
// an integer, "-" for absent values.
func Cells(b model.EnrichedBar) []string {
	return []string{
		b.DateString(),
		fixed(b.Open), fixed(b.High), fixed(b.Low), fixed(b.Close),
		strconv.FormatFloat(b.Volume, 'f', 0, 64),
		opt(b.SMA20), opt(b.SMA50), opt(b.EMA20), opt(b.EMA50),
		opt(b.RSI14), opt(b.ATR14), opt(b.MACD), opt(b.Signal),
		opt(b.BBUpper), opt(b.BBLower), opt(b.OBV), opt(b.VWAP),
	}
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func opt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fixed(*v)
}

package indicator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"vn-ohlcv/internal/model"
)

// Fixed indicator parameters.
const (
	SMAShortPeriod = 20
	SMALongPeriod  = 50
	EMAShortPeriod = 20
	EMALongPeriod  = 50
	RSIPeriod      = 14
	ATRPeriod      = 14
	MACDFast       = 12
	MACDSlow       = 26
	MACDSignal     = 9
	BBPeriod       = 20
	BBStdDev       = 2.0
)

// Warmup returns the first row index at which each indicator is set.
// OBV and VWAP are cumulative and start at row 0.
func Warmup() map[string]int {
	return map[string]int{
		"SMA20":    SMAShortPeriod - 1,
		"SMA50":    SMALongPeriod - 1,
		"EMA20":    EMAShortPeriod - 1,
		"EMA50":    EMALongPeriod - 1,
		"RSI14":    RSIPeriod - 1,
		"ATR14":    ATRPeriod - 1,
		"MACD":     MACDSlow + MACDSignal - 2,
		"Signal":   MACDSlow + MACDSignal - 2,
		"BB_Upper": BBPeriod - 1,
		"BB_Lower": BBPeriod - 1,
		"OBV":      0,
		"VWAP":     0,
	}
}

// Round2 rounds v half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func rounded(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := Round2(v)
	return &r
}

func exact(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// columns holds the input sequence split into parallel price columns.
type columns struct {
	highs, lows, closes, volumes []float64
}

func extract(bars []model.Bar) columns {
	c := columns{
		highs:   make([]float64, len(bars)),
		lows:    make([]float64, len(bars)),
		closes:  make([]float64, len(bars)),
		volumes: make([]float64, len(bars)),
	}
	for i, b := range bars {
		c.highs[i] = b.High
		c.lows[i] = b.Low
		c.closes[i] = b.Close
		c.volumes[i] = b.Volume
	}
	return c
}

// Validate checks the engine preconditions in one pass.
func Validate(bars []model.Bar) error {
	for i, b := range bars {
		for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &IndicatorError{Index: i, Reason: "non-finite price or volume"}
			}
		}
		if b.High < b.Low {
			return &IndicatorError{Index: i, Reason: fmt.Sprintf("high %v below low %v", b.High, b.Low)}
		}
		if i > 0 && !b.Date.After(bars[i-1].Date) {
			return &IndicatorError{Index: i, Reason: fmt.Sprintf("date %s not after %s", b.DateString(), bars[i-1].DateString())}
		}
	}
	return nil
}

// Enrich computes every indicator over bars and returns one EnrichedBar per
// input row. Values are rounded to 2 decimals except OBV. Rows inside an
// indicator's warm-up keep that field nil. MACD and Signal are set together.
func Enrich(bars []model.Bar) ([]model.EnrichedBar, error) {
	if err := Validate(bars); err != nil {
		return nil, err
	}
	c := extract(bars)

	sma20 := SMA(c.closes, SMAShortPeriod)
	sma50 := SMA(c.closes, SMALongPeriod)
	ema20 := EMA(c.closes, EMAShortPeriod)
	ema50 := EMA(c.closes, EMALongPeriod)
	rsi := RSI(c.closes, RSIPeriod)
	atr := ATR(c.highs, c.lows, c.closes, ATRPeriod)
	macd, signal := MACD(c.closes, MACDFast, MACDSlow, MACDSignal)
	bbUpper, _, bbLower := Bollinger(c.closes, BBPeriod, BBStdDev)
	obv := OBV(c.closes, c.volumes)
	vwap := VWAP(c.highs, c.lows, c.closes, c.volumes)

	out := make([]model.EnrichedBar, len(bars))
	for i, b := range bars {
		e := model.EnrichedBar{
			Bar:   b,
			SMA20: rounded(sma20[i]),
			SMA50: rounded(sma50[i]),
			EMA20: rounded(ema20[i]),
			EMA50: rounded(ema50[i]),
			RSI14: rounded(rsi[i]),
			ATR14: rounded(atr[i]),
			OBV:   exact(obv[i]),
			VWAP:  rounded(vwap[i]),
		}
		if !math.IsNaN(macd[i]) && !math.IsNaN(signal[i]) {
			e.MACD = rounded(macd[i])
			e.Signal = rounded(signal[i])
		}
		if !math.IsNaN(bbUpper[i]) && !math.IsNaN(bbLower[i]) {
			e.BBUpper = rounded(bbUpper[i])
			e.BBLower = rounded(bbLower[i])
		}
		out[i] = e
	}
	return out, nil
}

package indicator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Every series function returns a slice as long as its input. Rows without
// enough history hold NaN. A period-p window over raw rows first fills at
// row p-1.

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func windowMean(values []float64, end, period int) float64 {
	sum := 0.0
	for j := end - period + 1; j <= end; j++ {
		sum += values[j]
	}
	return sum / float64(period)
}

// SMA is the arithmetic mean of the trailing period values.
func SMA(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		out[i] = windowMean(values, i, period)
	}
	return out
}

// EMA is seeded with the SMA of the first full window of non-NaN values,
// then follows EMA_t = v_t*k + EMA_{t-1}*(1-k), k = 2/(period+1).
// Leading NaN input (e.g. a MACD line still warming up) delays the seed.
func EMA(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 {
		return out
	}
	start := -1
	run := 0
	for i, v := range values {
		if math.IsNaN(v) {
			run = 0
			continue
		}
		run++
		if run == period {
			start = i
			break
		}
	}
	if start < 0 {
		return out
	}
	k := 2.0 / float64(period+1)
	out[start] = windowMean(values, start, period)
	for i := start + 1; i < len(values); i++ {
		if math.IsNaN(values[i]) {
			out[i] = out[i-1]
			continue
		}
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

// RSI is Wilder's relative strength index. The change series has one entry
// per row, change[0] = 0, so a period-p RSI first fills at row p-1 like the
// other windowed indicators. Averages are seeded with the plain mean of the
// first p changes and then smoothed as avg = (avg*(p-1) + x) / p.
func RSI(closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gains[i] = math.Max(change, 0)
		losses[i] = math.Max(-change, 0)
	}

	p := float64(period)
	avgGain := windowMean(gains, period-1, period)
	avgLoss := windowMean(losses, period-1, period)
	out[period-1] = rsiValue(avgGain, avgLoss)
	for i := period; i < len(closes); i++ {
		avgGain = (avgGain*(p-1) + gains[i]) / p
		avgLoss = (avgLoss*(p-1) + losses[i]) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return 50
	case avgLoss == 0:
		return 100
	case avgGain == 0:
		return 0
	default:
		return 100 - 100/(1+avgGain/avgLoss)
	}
}

// TrueRange of each row. Row 0 has no previous close and uses high-low.
func TrueRange(highs, lows, closes []float64) []float64 {
	tr := make([]float64, len(closes))
	for i := range closes {
		hl := highs[i] - lows[i]
		if i == 0 {
			tr[i] = hl
			continue
		}
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return tr
}

// ATR is the Wilder-smoothed average true range.
func ATR(highs, lows, closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	tr := TrueRange(highs, lows, closes)
	p := float64(period)
	atr := windowMean(tr, period-1, period)
	out[period-1] = atr
	for i := period; i < len(tr); i++ {
		atr = (atr*(p-1) + tr[i]) / p
		out[i] = atr
	}
	return out
}

// MACD returns the MACD line (EMA fast - EMA slow) and its EMA signal line.
// The line fills at row slow-1, the signal slow+signal-2 rows in.
func MACD(closes []float64, fast, slow, signal int) (line, sig []float64) {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)
	line = nanSeries(len(closes))
	for i := range closes {
		if math.IsNaN(emaFast[i]) || math.IsNaN(emaSlow[i]) {
			continue
		}
		line[i] = emaFast[i] - emaSlow[i]
	}
	return line, EMA(line, signal)
}

// Bollinger returns upper, middle and lower bands. Middle is the SMA and the
// band width is mult times the population standard deviation of the window.
func Bollinger(closes []float64, period int, mult float64) (upper, middle, lower []float64) {
	upper = nanSeries(len(closes))
	lower = nanSeries(len(closes))
	middle = SMA(closes, period)
	if period <= 0 {
		return upper, middle, lower
	}
	for i := period - 1; i < len(closes); i++ {
		mean := middle[i]
		ss := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(period))
		upper[i] = mean + mult*sd
		lower[i] = mean - mult*sd
	}
	return upper, middle, lower
}

// OBV is on-balance volume, defined from row 0 (= 0). The running total is
// kept in decimal so large integer volumes accumulate exactly.
func OBV(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	total := decimal.Zero
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			total = total.Add(decimal.NewFromFloat(volumes[i]))
		case closes[i] < closes[i-1]:
			total = total.Sub(decimal.NewFromFloat(volumes[i]))
		}
		out[i] = total.InexactFloat64()
	}
	return out
}

// VWAP is the cumulative volume-weighted typical price (h+l+c)/3.
// Rows where cumulative volume is still zero are NaN.
func VWAP(highs, lows, closes, volumes []float64) []float64 {
	out := nanSeries(len(closes))
	var cumPV, cumVol float64
	for i := range closes {
		tp := (highs[i] + lows[i] + closes[i]) / 3
		cumPV += tp * volumes[i]
		cumVol += volumes[i]
		if cumVol != 0 {
			out[i] = cumPV / cumVol
		}
	}
	return out
}

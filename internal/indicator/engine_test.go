package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vn-ohlcv/internal/model"
)

// makeBars builds n consecutive daily bars with the given closes.
func makeBars(closes []float64) []model.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date: start.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c,
			Volume: 1000, Symbol: "VNM", Resolution: model.Day,
		}
	}
	return bars
}

func waveCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/3) + float64(i)*0.1
	}
	return closes
}

func fieldsOf(e model.EnrichedBar) map[string]*float64 {
	return map[string]*float64{
		"SMA20": e.SMA20, "SMA50": e.SMA50, "EMA20": e.EMA20, "EMA50": e.EMA50,
		"RSI14": e.RSI14, "ATR14": e.ATR14, "MACD": e.MACD, "Signal": e.Signal,
		"BB_Upper": e.BBUpper, "BB_Lower": e.BBLower, "OBV": e.OBV, "VWAP": e.VWAP,
	}
}

func TestEnrichWarmupBoundaries(t *testing.T) {
	out, err := Enrich(makeBars(waveCloses(80)))
	require.NoError(t, err)
	require.Len(t, out, 80)

	for name, first := range Warmup() {
		for i, e := range out {
			v := fieldsOf(e)[name]
			if i < first {
				require.Nil(t, v, "%s row %d", name, i)
			} else {
				require.NotNil(t, v, "%s row %d", name, i)
			}
		}
	}
}

func TestEnrichSMA20OnTwentyRows(t *testing.T) {
	closes := make([]float64, 20)
	sum := 0.0
	for i := range closes {
		closes[i] = 10 + float64(i)*1.5
		sum += closes[i]
	}
	out, err := Enrich(makeBars(closes))
	require.NoError(t, err)
	for i := 0; i < 19; i++ {
		require.Nil(t, out[i].SMA20)
	}
	require.NotNil(t, out[19].SMA20)
	require.Equal(t, Round2(sum/20), *out[19].SMA20)
	require.Nil(t, out[19].SMA50)
	require.Nil(t, out[19].MACD)
	require.Nil(t, out[19].Signal)
}

func TestEnrichShortInputLeavesIndicatorsUnset(t *testing.T) {
	out, err := Enrich(makeBars([]float64{10, 11, 12}))
	require.NoError(t, err)
	for _, e := range out {
		require.Nil(t, e.SMA20)
		require.Nil(t, e.RSI14)
		require.Nil(t, e.ATR14)
		require.NotNil(t, e.OBV)
		require.NotNil(t, e.VWAP)
	}
	require.Equal(t, 2000.0, *out[2].OBV)
}

func TestEnrichKeepsBarFields(t *testing.T) {
	bars := makeBars(waveCloses(5))
	out, err := Enrich(bars)
	require.NoError(t, err)
	for i := range bars {
		require.Equal(t, bars[i], out[i].Bar)
	}
}

func TestEnrichVWAPConstantPrice(t *testing.T) {
	bars := makeBars(make([]float64, 30))
	for i := range bars {
		bars[i].Open, bars[i].High, bars[i].Low, bars[i].Close = 25.5, 25.5, 25.5, 25.5
		bars[i].Volume = float64(10 * (i + 1))
	}
	out, err := Enrich(bars)
	require.NoError(t, err)
	for _, e := range out {
		require.Equal(t, 25.5, *e.VWAP)
	}
}

func TestEnrichEmpty(t *testing.T) {
	out, err := Enrich(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEnrichRejectsHighBelowLow(t *testing.T) {
	bars := makeBars(waveCloses(30))
	bars[17].High, bars[17].Low = 90, 95

	out, err := Enrich(bars)
	var ierr *IndicatorError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, 17, ierr.Index)
	require.Nil(t, out)
}

func TestEnrichRejectsUnorderedDates(t *testing.T) {
	bars := makeBars(waveCloses(10))
	bars[4].Date = bars[3].Date

	out, err := Enrich(bars)
	var ierr *IndicatorError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, 4, ierr.Index)
	require.Nil(t, out)
}

func TestEnrichRejectsNaN(t *testing.T) {
	bars := makeBars(waveCloses(3))
	bars[1].Close = math.NaN()
	_, err := Enrich(bars)
	var ierr *IndicatorError
	require.ErrorAs(t, err, &ierr)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 1.01, Round2(1.005))
	require.Equal(t, 2.68, Round2(2.675))
	require.Equal(t, -2.35, Round2(-2.345))
	require.Equal(t, 3.0, Round2(2.999))
}

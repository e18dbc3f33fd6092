package model

// EnrichedBar is a Bar plus every indicator value for its row.
// A nil field means the indicator has not warmed up at this row.
type EnrichedBar struct {
	Bar

	SMA20   *float64
	SMA50   *float64
	EMA20   *float64
	EMA50   *float64
	RSI14   *float64
	ATR14   *float64
	MACD    *float64
	Signal  *float64
	BBUpper *float64
	BBLower *float64
	OBV     *float64
	VWAP    *float64
}

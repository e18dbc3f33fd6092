package saver

import (
	"strconv"

	"vn-ohlcv/internal/model"
)

// PriceHeader is the column order of every price sheet.
var PriceHeader = []string{
	"Date", "Open", "High", "Low", "Close", "Volume", "Symbol", "Timeframe",
	"SMA20", "SMA50", "EMA20", "EMA50", "RSI14", "ATR14", "MACD", "Signal",
	"BB_Upper", "BB_Lower", "OBV", "VWAP",
}

// PriceRow is the export DTO of one enriched bar (json, parquet, csv, xlsx).
// Nil indicator fields are written as empty cells, omitted JSON keys and
// Parquet nulls.
type PriceRow struct {
	Date      string   `json:"Date" parquet:"date"`
	Open      float64  `json:"Open" parquet:"open"`
	High      float64  `json:"High" parquet:"high"`
	Low       float64  `json:"Low" parquet:"low"`
	Close     float64  `json:"Close" parquet:"close"`
	Volume    float64  `json:"Volume" parquet:"volume"`
	Symbol    string   `json:"Symbol" parquet:"symbol"`
	Timeframe string   `json:"Timeframe" parquet:"timeframe"`
	SMA20     *float64 `json:"SMA20,omitempty" parquet:"sma20"`
	SMA50     *float64 `json:"SMA50,omitempty" parquet:"sma50"`
	EMA20     *float64 `json:"EMA20,omitempty" parquet:"ema20"`
	EMA50     *float64 `json:"EMA50,omitempty" parquet:"ema50"`
	RSI14     *float64 `json:"RSI14,omitempty" parquet:"rsi14"`
	ATR14     *float64 `json:"ATR14,omitempty" parquet:"atr14"`
	MACD      *float64 `json:"MACD,omitempty" parquet:"macd"`
	Signal    *float64 `json:"Signal,omitempty" parquet:"signal"`
	BBUpper   *float64 `json:"BB_Upper,omitempty" parquet:"bb_upper"`
	BBLower   *float64 `json:"BB_Lower,omitempty" parquet:"bb_lower"`
	OBV       *float64 `json:"OBV,omitempty" parquet:"obv"`
	VWAP      *float64 `json:"VWAP,omitempty" parquet:"vwap"`
}

// NewPriceRow converts an enriched bar.
func NewPriceRow(e model.EnrichedBar) PriceRow {
	return PriceRow{
		Date:      e.DateString(),
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
		Symbol:    e.Symbol,
		Timeframe: string(e.Resolution),
		SMA20:     e.SMA20,
		SMA50:     e.SMA50,
		EMA20:     e.EMA20,
		EMA50:     e.EMA50,
		RSI14:     e.RSI14,
		ATR14:     e.ATR14,
		MACD:      e.MACD,
		Signal:    e.Signal,
		BBUpper:   e.BBUpper,
		BBLower:   e.BBLower,
		OBV:       e.OBV,
		VWAP:      e.VWAP,
	}
}

// NewPriceRows converts a whole sequence.
func NewPriceRows(bars []model.EnrichedBar) []PriceRow {
	rows := make([]PriceRow, len(bars))
	for i, b := range bars {
		rows[i] = NewPriceRow(b)
	}
	return rows
}

// Cells returns the row in PriceHeader order; absent values are nil.
func (r PriceRow) Cells() []any {
	return []any{
		r.Date, r.Open, r.High, r.Low, r.Close, r.Volume, r.Symbol, r.Timeframe,
		opt(r.SMA20), opt(r.SMA50), opt(r.EMA20), opt(r.EMA50), opt(r.RSI14), opt(r.ATR14),
		opt(r.MACD), opt(r.Signal), opt(r.BBUpper), opt(r.BBLower), opt(r.OBV), opt(r.VWAP),
	}
}

// Strings returns the row as csv fields; absent values are empty.
func (r PriceRow) Strings() []string {
	return cellStrings(r.Cells())
}

// RiskHeader is the column order of the risk profile sheet.
var RiskHeader = []string{"Capital_VND", "Max_Drawdown_Pct", "Target_Profit_Pct", "Holding_Horizon", "Notes"}

// RiskRow is the export DTO of the risk profile.
type RiskRow struct {
	CapitalVND      *float64 `json:"Capital_VND,omitempty" parquet:"capital_vnd"`
	MaxDrawdownPct  *float64 `json:"Max_Drawdown_Pct,omitempty" parquet:"max_drawdown_pct"`
	TargetProfitPct *float64 `json:"Target_Profit_Pct,omitempty" parquet:"target_profit_pct"`
	HoldingHorizon  string   `json:"Holding_Horizon,omitempty" parquet:"holding_horizon"`
	Notes           string   `json:"Notes,omitempty" parquet:"notes"`
}

func NewRiskRow(r model.RiskProfile) RiskRow {
	return RiskRow(r)
}

func (r RiskRow) Cells() []any {
	return []any{opt(r.CapitalVND), opt(r.MaxDrawdownPct), opt(r.TargetProfitPct), optString(r.HoldingHorizon), optString(r.Notes)}
}

// ContextHeader is the column order of the market context sheet.
var ContextHeader = []string{
	"News_or_Event_Date", "Ticker", "Headline_or_Note", "Source_or_Link", "Support_Zone",
	"Resistance_Zone", "Planned_Buy_Zone", "Actual_Buy_Price", "Comment",
}

// ContextRow is the export DTO of one market context note.
type ContextRow struct {
	NewsOrEventDate string `json:"News_or_Event_Date,omitempty" parquet:"news_or_event_date"`
	Ticker          string `json:"Ticker,omitempty" parquet:"ticker"`
	HeadlineOrNote  string `json:"Headline_or_Note,omitempty" parquet:"headline_or_note"`
	SourceOrLink    string `json:"Source_or_Link,omitempty" parquet:"source_or_link"`
	SupportZone     string `json:"Support_Zone,omitempty" parquet:"support_zone"`
	ResistanceZone  string `json:"Resistance_Zone,omitempty" parquet:"resistance_zone"`
	PlannedBuyZone  string `json:"Planned_Buy_Zone,omitempty" parquet:"planned_buy_zone"`
	ActualBuyPrice  string `json:"Actual_Buy_Price,omitempty" parquet:"actual_buy_price"`
	Comment         string `json:"Comment,omitempty" parquet:"comment"`
}

func NewContextRows(rows []model.MarketContextRow) []ContextRow {
	out := make([]ContextRow, len(rows))
	for i, r := range rows {
		out[i] = ContextRow(r)
	}
	return out
}

func (r ContextRow) Cells() []any {
	return []any{
		optString(r.NewsOrEventDate), optString(r.Ticker), optString(r.HeadlineOrNote),
		optString(r.SourceOrLink), optString(r.SupportZone), optString(r.ResistanceZone),
		optString(r.PlannedBuyZone), optString(r.ActualBuyPrice), optString(r.Comment),
	}
}

func opt(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func cellStrings(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
			out[i] = ""
		case float64:
			out[i] = floatStr(v)
		case string:
			out[i] = v
		}
	}
	return out
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

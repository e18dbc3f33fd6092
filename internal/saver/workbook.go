package saver

import (
	"fmt"
	"time"

	"vn-ohlcv/internal/model"
)

// Section names, in workbook order.
const (
	SheetPriceData     = "PriceData"
	SheetWeeklyData    = "WeeklyData"
	SheetMonthlyData   = "MonthlyData"
	SheetRiskProfile   = "Risk_Profile"
	SheetMarketContext = "Market_Context"
)

// Workbook is everything one export writes: three enriched sequences plus
// the user's risk profile and market context.
type Workbook struct {
	Symbol      string
	Resolution  model.Resolution
	GeneratedAt time.Time
	Daily       []model.EnrichedBar
	Weekly      []model.EnrichedBar
	Monthly     []model.EnrichedBar
	Annotations model.Annotations
}

// PriceSection is one named price sheet.
type PriceSection struct {
	Name string
	Rows []PriceRow
}

// PriceSections returns the daily, weekly and monthly sheets as export rows.
func (wb *Workbook) PriceSections() []PriceSection {
	return []PriceSection{
		{Name: SheetPriceData, Rows: NewPriceRows(wb.Daily)},
		{Name: SheetWeeklyData, Rows: NewPriceRows(wb.Weekly)},
		{Name: SheetMonthlyData, Rows: NewPriceRows(wb.Monthly)},
	}
}

// FileName returns {SYMBOL}_{D|W|M}_{YYYY-MM-DD}.{ext}.
func (wb *Workbook) FileName(ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", wb.Symbol, wb.Resolution, wb.GeneratedAt.Format(model.DateLayout), ext)
}

package saver

import (
	"encoding/json"
	"os"
)

// jsonWorkbook is the document layout: one key per section.
type jsonWorkbook struct {
	PriceData     []PriceRow   `json:"PriceData"`
	WeeklyData    []PriceRow   `json:"WeeklyData"`
	MonthlyData   []PriceRow   `json:"MonthlyData"`
	RiskProfile   []RiskRow    `json:"Risk_Profile"`
	MarketContext []ContextRow `json:"Market_Context"`
}

// JSONSaver writes the workbook as one indented JSON object.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(wb *Workbook, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonWorkbook{
		PriceData:     NewPriceRows(wb.Daily),
		WeeklyData:    NewPriceRows(wb.Weekly),
		MonthlyData:   NewPriceRows(wb.Monthly),
		RiskProfile:   []RiskRow{NewRiskRow(wb.Annotations.Risk)},
		MarketContext: NewContextRows(wb.Annotations.Context),
	})
}

package saver

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSaver writes one CSV file per section next to path.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(wb *Workbook, path string) error {
	for _, s := range wb.PriceSections() {
		records := make([][]string, 0, len(s.Rows))
		for _, r := range s.Rows {
			records = append(records, r.Strings())
		}
		if err := writeCSV(SectionPath(path, s.Name), PriceHeader, records); err != nil {
			return err
		}
	}

	risk := [][]string{cellStrings(NewRiskRow(wb.Annotations.Risk).Cells())}
	if err := writeCSV(SectionPath(path, SheetRiskProfile), RiskHeader, risk); err != nil {
		return err
	}

	ctx := NewContextRows(wb.Annotations.Context)
	records := make([][]string, 0, len(ctx))
	for _, r := range ctx {
		records = append(records, cellStrings(r.Cells()))
	}
	return writeCSV(SectionPath(path, SheetMarketContext), ContextHeader, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

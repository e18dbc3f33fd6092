package saver

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// ParquetSaver writes one Parquet file per section next to path.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(wb *Workbook, path string) error {
	for _, s := range wb.PriceSections() {
		p := SectionPath(path, s.Name)
		if err := parquet.WriteFile(p, s.Rows); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	p := SectionPath(path, SheetRiskProfile)
	if err := parquet.WriteFile(p, []RiskRow{NewRiskRow(wb.Annotations.Risk)}); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	p = SectionPath(path, SheetMarketContext)
	if err := parquet.WriteFile(p, NewContextRows(wb.Annotations.Context)); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

package saver

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSaver writes a single workbook with one sheet per section.
type XLSXSaver struct{}

func (XLSXSaver) Extension() string { return "xlsx" }

func (XLSXSaver) Save(wb *Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	addSheet := func(name string, header []string, rows [][]any) error {
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		return writeSheet(f, name, header, rows)
	}

	for _, s := range wb.PriceSections() {
		rows := make([][]any, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = r.Cells()
		}
		if err := addSheet(s.Name, PriceHeader, rows); err != nil {
			return fmt.Errorf("sheet %s: %w", s.Name, err)
		}
	}
	if err := addSheet(SheetRiskProfile, RiskHeader, [][]any{NewRiskRow(wb.Annotations.Risk).Cells()}); err != nil {
		return fmt.Errorf("sheet %s: %w", SheetRiskProfile, err)
	}
	ctx := NewContextRows(wb.Annotations.Context)
	rows := make([][]any, len(ctx))
	for i, r := range ctx {
		rows[i] = r.Cells()
	}
	if err := addSheet(SheetMarketContext, ContextHeader, rows); err != nil {
		return fmt.Errorf("sheet %s: %w", SheetMarketContext, err)
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeSheet writes the header row and data rows; nil cells stay blank.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

package saver

import (
	"path/filepath"
	"strings"
)

// WorkbookSaver writes one export. The application picks the implementation;
// the pipeline only depends on this interface.
type WorkbookSaver interface {
	Save(wb *Workbook, path string) error
	Extension() string
}

// NewWorkbookSaver creates implementation by format (xlsx, csv, parquet, json).
// Returns nil if format not supported.
func NewWorkbookSaver(format string) WorkbookSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "xlsx", "excel":
		return XLSXSaver{}
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

// SectionPath derives the per-section file of a multi-file format:
// data/FPT_D_2024-04-10.csv -> data/FPT_D_2024-04-10_PriceData.csv
func SectionPath(path, section string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + section + ext
}

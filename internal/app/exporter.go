package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vn-ohlcv/internal/model"
	"vn-ohlcv/internal/saver"
)

// Exporter runs the pipeline and writes the workbook into Dir.
type Exporter struct {
	Pipeline    *Pipeline
	Saver       saver.WorkbookSaver
	Dir         string
	Annotations model.Annotations
}

// Export writes one workbook for req and returns its path.
func (e *Exporter) Export(ctx context.Context, req model.Request) (string, error) {
	wb, err := e.Pipeline.Run(ctx, req, e.Annotations)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(e.Dir, wb.FileName(e.Saver.Extension()))
	if err := e.Saver.Save(wb, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	slog.Info("exported", "symbol", req.Symbol, "path", path,
		"daily", len(wb.Daily), "weekly", len(wb.Weekly), "monthly", len(wb.Monthly))
	return path, nil
}

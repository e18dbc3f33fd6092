package app

import (
	"fmt"

	"vn-ohlcv/internal/model"
	"vn-ohlcv/internal/provider"
	"vn-ohlcv/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() *Config {
	return LoadConfig()
}

// ProvideWorkbookSaver creates WorkbookSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideWorkbookSaver(cfg *Config) (saver.WorkbookSaver, error) {
	ws := saver.NewWorkbookSaver(cfg.SaveFormat)
	if ws == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: xlsx, csv, parquet, json)", cfg.SaveFormat)
	}
	return ws, nil
}

// ProvideVNDirectProvider creates the dchart provider (for Wire).
// Caller must call dp.Close() when shutting down.
func ProvideVNDirectProvider(cfg *Config) (*provider.VNDirectProvider, error) {
	return CreateProvider(cfg)
}

// ProvideAnnotations loads ANNOTATIONS_FILE (for Wire).
func ProvideAnnotations(cfg *Config) (model.Annotations, error) {
	return LoadAnnotations(cfg.AnnotationsFile)
}

// ProvidePipeline wires the pipeline to a provider (for Wire).
func ProvidePipeline(dp provider.DataProvider) *Pipeline {
	return NewPipeline(dp)
}

// ProvideExporter assembles the Exporter (for Wire).
func ProvideExporter(cfg *Config, p *Pipeline, ws saver.WorkbookSaver, ann model.Annotations) *Exporter {
	return &Exporter{Pipeline: p, Saver: ws, Dir: cfg.DataDir, Annotations: ann}
}

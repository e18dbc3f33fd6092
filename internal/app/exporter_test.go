package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vn-ohlcv/internal/model"
	"vn-ohlcv/internal/saver"
)

func TestExporterWritesWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cfg := &Config{DataDir: dir, SaveFormat: "json"}
	ws, err := ProvideWorkbookSaver(cfg)
	require.NoError(t, err)

	p := ProvidePipeline(&fakeProvider{bars: dailyBars(40)})
	p.Now = func() time.Time { return now }
	capital := 1e9
	e := ProvideExporter(cfg, p, ws, model.Annotations{Risk: model.RiskProfile{CapitalVND: &capital}})

	path, err := e.Export(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "FPT_D_2024-03-01.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc[saver.SheetPriceData], 40)
	assert.Len(t, doc[saver.SheetMonthlyData], 2)
	assert.Len(t, doc[saver.SheetRiskProfile], 1)
}

func TestExporterPropagatesNoData(t *testing.T) {
	e := &Exporter{Pipeline: NewPipeline(&fakeProvider{}), Saver: saver.JSONSaver{}, Dir: t.TempDir()}
	_, err := e.Export(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrNoData)
}

func TestProvideWorkbookSaverUnknownFormat(t *testing.T) {
	_, err := ProvideWorkbookSaver(&Config{SaveFormat: "xml"})
	require.ErrorContains(t, err, "unsupported SAVE_FORMAT")
}

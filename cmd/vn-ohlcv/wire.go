//go:build wireinject
// +build wireinject

package main

import (
	"vn-ohlcv/internal/app"
	"vn-ohlcv/internal/provider"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	DP       provider.DataProvider
	Pipeline *app.Pipeline
	Exporter *app.Exporter
}

// InitializeApp builds App (Config, DataProvider, Pipeline, Exporter) via Wire.
// Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideWorkbookSaver,
		app.ProvideVNDirectProvider,
		wire.Bind(new(provider.DataProvider), new(*provider.VNDirectProvider)),
		app.ProvideAnnotations,
		app.ProvidePipeline,
		app.ProvideExporter,
		wire.Struct(new(App), "Config", "DP", "Pipeline", "Exporter"),
	)
	return nil, nil
}

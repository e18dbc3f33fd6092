package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"vn-ohlcv/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&exportCmd{}, "")
	subcommands.Register(&previewCmd{}, "")
	subcommands.Register(&batchCmd{}, "")
	subcommands.Register(&scheduleCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// initApp builds the dependency graph and switches the default logger to
// the configured level. Caller must call a.DP.Close().
func initApp() (*App, bool) {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return nil, false
	}
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))
	slog.Debug("using data provider", "provider", a.DP.GetName())
	return a, true
}

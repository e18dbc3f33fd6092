package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/subcommands"

	"vn-ohlcv/internal/app"
	"vn-ohlcv/internal/batch"
	"vn-ohlcv/internal/preview"
)

// exportCmd writes one workbook.
type exportCmd struct {
	rangeFlags
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "fetch, enrich and export one symbol" }
func (*exportCmd) Usage() string {
	return `export [-symbol S] [-days N | -from YYYY-MM-DD -to YYYY-MM-DD] [-res D|W|M]:
  Fetch daily bars, derive weekly and monthly bars, add indicators and save the workbook into DATA_DIR.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) { c.register(f, true) }

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	req, err := c.request(a.Config, "", time.Now())
	if err != nil {
		slog.Error("invalid input", "error", err)
		return subcommands.ExitUsageError
	}
	path, err := a.Exporter.Export(ctx, req)
	if err != nil {
		slog.Error("export failed", "symbol", req.Symbol, "error", err)
		return subcommands.ExitFailure
	}
	fmt.Println(path)
	return subcommands.ExitSuccess
}

// previewCmd prints the enriched table instead of saving it.
type previewCmd struct {
	rangeFlags
	date  string
	limit int
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "print enriched bars as a table" }
func (*previewCmd) Usage() string {
	return `preview [-symbol S] [-days N | -from -to] [-res D|W|M] [-date YYYY-MM-DD] [-limit N]:
  Print the enriched sequence of the -res timeframe. -date shows one row.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	c.register(f, true)
	f.StringVar(&c.date, "date", "", "show only this date, YYYY-MM-DD")
	f.IntVar(&c.limit, "limit", 0, "show only the last N rows")
}

func (c *previewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	req, err := c.request(a.Config, "", time.Now())
	if err != nil {
		slog.Error("invalid input", "error", err)
		return subcommands.ExitUsageError
	}
	enr, err := a.Pipeline.Enrich(ctx, req)
	if err != nil {
		slog.Error("preview failed", "symbol", req.Symbol, "error", err)
		return subcommands.ExitFailure
	}
	err = preview.Render(os.Stdout, enr.Of(req.Resolution), preview.Options{Date: c.date, Limit: c.limit})
	if err != nil && !errors.Is(err, preview.ErrNoRows) {
		slog.Error("render failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// symbolFlags selects the symbols of a batch or scheduled run.
type symbolFlags struct {
	symbols string
	file    string
}

func (s *symbolFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.symbols, "symbols", "", "comma separated symbols")
	f.StringVar(&s.file, "file", "", "symbol list file (.txt or .json)")
}

func (s *symbolFlags) load(cfg *app.Config) ([]string, error) {
	if s.file != "" {
		return batch.LoadSymbols(s.file)
	}
	if list := batch.ParseSymbolList(s.symbols); len(list) > 0 {
		return list, nil
	}
	return []string{cfg.DefaultSymbol}, nil
}

// exportAll runs one batch over symbols with the same date range.
func exportAll(ctx context.Context, a *App, rf *rangeFlags, symbols []string, workers int) batch.Summary {
	now := time.Now()
	export := func(ctx context.Context, symbol string) (string, error) {
		req, err := rf.request(a.Config, symbol, now)
		if err != nil {
			return "", err
		}
		return a.Exporter.Export(ctx, req)
	}
	if workers <= 0 {
		workers = a.Config.BatchWorkers
	}
	slog.Info("batch start", "symbols", len(symbols), "workers", workers, "format", a.Config.SaveFormat)
	return batch.Run(ctx, symbols, export, batch.Options{
		Workers:   workers,
		ReportDir: a.Config.DataDir,
	})
}

// batchCmd exports several symbols with a worker pool.
type batchCmd struct {
	rangeFlags
	symbolFlags
	workers int
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "export several symbols in parallel" }
func (*batchCmd) Usage() string {
	return `batch (-symbols A,B,C | -file list.txt) [-days N | -from -to] [-res D|W|M] [-workers N]:
  Export each symbol independently. A run report is written to DATA_DIR.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f, false)
	c.symbolFlags.register(f)
	f.IntVar(&c.workers, "workers", 0, "parallel exports (default BATCH_WORKERS)")
}

func (c *batchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	symbols, err := c.load(a.Config)
	if err != nil {
		slog.Error("failed to get symbols", "error", err)
		return subcommands.ExitUsageError
	}
	sum := exportAll(ctx, a, &c.rangeFlags, symbols, c.workers)
	if len(sum.Failed) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// scheduleCmd re-runs the batch export on a cron schedule.
type scheduleCmd struct {
	rangeFlags
	symbolFlags
	cron  string
	onNow bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "re-export on a cron schedule until interrupted" }
func (*scheduleCmd) Usage() string {
	return `schedule [-cron "0 30 15 * * 1-5"] [-symbols A,B | -file list.txt] [-days N] [-now]:
  Run the export on every tick (cron with seconds field) until SIGINT/SIGTERM.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.register(f, false)
	c.symbolFlags.register(f)
	f.StringVar(&c.cron, "cron", "", "cron expression with seconds (default EXPORT_CRON)")
	f.BoolVar(&c.onNow, "now", false, "also run once at start")
}

func (c *scheduleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from != "" || c.to != "" {
		slog.Error("schedule takes -days, not a fixed -from/-to range")
		return subcommands.ExitUsageError
	}
	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.DP.Close()

	symbols, err := c.load(a.Config)
	if err != nil {
		slog.Error("failed to get symbols", "error", err)
		return subcommands.ExitUsageError
	}
	cronExpr := c.cron
	if cronExpr == "" {
		cronExpr = a.Config.ExportCron
	}
	err = app.RunSchedule(ctx, cronExpr, c.onNow, func(ctx context.Context) {
		exportAll(ctx, a, &c.rangeFlags, symbols, 0)
	})
	if err != nil {
		slog.Error("scheduler failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

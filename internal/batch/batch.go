package batch

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"vn-ohlcv/internal/slogx"
)

// ExportFunc exports one symbol and returns the written path.
type ExportFunc func(ctx context.Context, symbol string) (string, error)

// JobResult is sent by workers for fan-in.
type JobResult struct {
	Ok     bool
	Symbol string
	Path   string
	Reason string
}

// Summary is the outcome of one batch run.
type Summary struct {
	Success []string
	Failed  map[string]string
}

// Options tunes a batch run. Zero values take defaults.
type Options struct {
	Workers   int
	ReportDir string        // where .lastrun.*.json go; empty disables the report
	Heartbeat time.Duration // default 30s
	LogOutput io.Writer     // fan-in log sink, default stdout
}

// Run exports every symbol with a bounded worker pool. Each symbol is an
// independent pipeline run: a failure is recorded and the others continue.
// Cancelling ctx stops workers from picking up further symbols.
func Run(ctx context.Context, symbols []string, export ExportFunc, opts Options) Summary {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = 30 * time.Second
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}

	logs := make(chan string, 2048)
	logger := slogx.NewChanLogger(logs)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		runLogWriter(opts.LogOutput, logs)
	}()
	defer func() {
		close(logs)
		logWg.Wait()
	}()

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()

	var cnt counters
	var successList []successEntry
	var failedList []failedEntry
	results := make(chan JobResult, len(symbols))
	var resWg sync.WaitGroup
	resWg.Add(1)
	go func() {
		defer resWg.Done()
		for r := range results {
			cnt.mu.Lock()
			if r.Ok {
				cnt.success++
				successList = append(successList, successEntry{Symbol: r.Symbol, Path: r.Path})
			} else {
				cnt.failed++
				failedList = append(failedList, failedEntry{Symbol: r.Symbol, Reason: r.Reason})
			}
			cnt.mu.Unlock()
		}
	}()

	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go func() {
		defer hbWg.Done()
		runHeartbeat(hbCtx, opts.Heartbeat, len(symbols), &cnt, logger)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, sym := range symbols {
		if gctx.Err() != nil {
			results <- JobResult{Symbol: sym, Reason: "cancelled"}
			continue
		}
		sym := sym
		g.Go(func() error {
			if gctx.Err() != nil {
				results <- JobResult{Symbol: sym, Reason: "cancelled"}
				return nil
			}
			logger.Info("export start", "symbol", sym)
			path, err := export(gctx, sym)
			if err != nil {
				logger.Error("export fail", "symbol", sym, "reason", err.Error())
				results <- JobResult{Symbol: sym, Reason: err.Error()}
				return nil
			}
			logger.Info("export ok", "symbol", sym, "path", path)
			results <- JobResult{Ok: true, Symbol: sym, Path: path}
			return nil
		})
	}
	_ = g.Wait()
	close(results)
	resWg.Wait()
	stopHeartbeat()
	hbWg.Wait()

	sum := Summary{Failed: make(map[string]string, len(failedList))}
	for _, s := range successList {
		sum.Success = append(sum.Success, s.Symbol)
	}
	for _, f := range failedList {
		sum.Failed[f.Symbol] = f.Reason
	}
	logger.Info("summary", "success", len(successList), "failed", len(failedList))
	if len(failedList) > 0 {
		logger.Info("summary failed", "count", len(failedList), "reasons", joinFailedReasons(failedList))
	}

	if opts.ReportDir != "" && (len(successList) > 0 || len(failedList) > 0) {
		if err := writeRunReport(opts.ReportDir, successList, failedList); err != nil {
			logger.Warn("could not write run report", "error", err)
		}
	}
	return sum
}

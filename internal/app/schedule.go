package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
)

// RunSchedule runs job on every tick of cronExpr (6 fields, with seconds) until
// ctx is done or SIGINT/SIGTERM arrives. A tick that fires while the previous
// run is still going is skipped.
func RunSchedule(ctx context.Context, cronExpr string, runOnStart bool, job func(ctx context.Context)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	id, err := c.AddFunc(cronExpr, func() { job(ctx) })
	if err != nil {
		return fmt.Errorf("register export cron %q: %w", cronExpr, err)
	}
	c.Start()
	slog.Info("scheduler started", "cron", cronExpr, "next_run", c.Entry(id).Next.Format("2006-01-02 15:04"))

	if runOnStart {
		go job(ctx)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case <-ctx.Done():
		slog.Info("context done, stopping scheduler")
	case sig := <-signals:
		slog.Info("received signal, graceful shutdown", "sig", sig)
	}
	cancel()
	stopped := c.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(30 * time.Second):
		slog.Warn("running export did not finish within 30s")
	}
	return nil
}

package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

func runLogWriter(w io.Writer, lines <-chan string) {
	for s := range lines {
		fmt.Fprintln(w, s)
	}
}

// counters is shared between the result collector and the heartbeat.
type counters struct {
	mu      sync.Mutex
	success int
	failed  int
}

func (c *counters) snapshot() (success, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success, c.failed
}

func runHeartbeat(ctx context.Context, interval time.Duration, total int, c *counters, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, f := c.snapshot()
			logger.Info("heartbeat", "done", s+f, "total", total, "success", s, "failed", f)
		}
	}
}

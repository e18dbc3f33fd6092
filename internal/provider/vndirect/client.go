package vndirect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"vn-ohlcv/internal/model"
)

const (
	// DefaultURL is the public dchart history endpoint.
	DefaultURL = "https://dchart-api.vndirect.com.vn/dchart/history"

	userAgent = "vn-ohlcv/1.0"

	// dchart resolution code for daily bars
	resolutionDaily = "D"

	// max body bytes echoed into errors
	maxBodyInError = 512
)

// Options configures a Client. Zero fields take defaults; a negative
// Retries disables retrying.
type Options struct {
	URL       string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration

	// MinInterval spaces consecutive requests; zero disables throttling.
	MinInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Retries < 0 {
		o.Retries = 0
	} else if o.Retries == 0 {
		o.Retries = 2
	}
	if o.RetryWait <= 0 {
		o.RetryWait = 2 * time.Second
	}
	return o
}

// Client fetches daily history from the dchart API.
type Client struct {
	url      string
	http     *resty.Client
	throttle *throttle
}

// NewClient constructs a Client with a shared resty client.
func NewClient(opts Options) (*Client, error) {
	opts = opts.withDefaults()
	if !strings.HasPrefix(opts.URL, "http://") && !strings.HasPrefix(opts.URL, "https://") {
		return nil, fmt.Errorf("dchart URL must be http(s): %q", opts.URL)
	}
	return &Client{
		url:      opts.URL,
		http:     newRestyClient(opts),
		throttle: newThrottle(opts.MinInterval),
	}, nil
}

// Close closes idle connections.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// FetchDaily returns daily bars of symbol for the closed interval [from, to].
// It fails when the call errors, the body is not JSON, the status is not ok,
// or the columns have different lengths.
func (c *Client) FetchDaily(ctx context.Context, symbol string, from, to time.Time) ([]model.Bar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	// include the whole last day
	toEnd := model.CalendarDay(to).Add(24*time.Hour - time.Second)
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol,
			"resolution": resolutionDaily,
			"from":       strconv.FormatInt(model.CalendarDay(from).Unix(), 10),
			"to":         strconv.FormatInt(toEnd.Unix(), 10),
		}).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("dchart request %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error %d when calling API: %s", resp.StatusCode(), truncate(resp.String()))
	}

	var hist HistoryResponse
	if err := json.Unmarshal(resp.Body(), &hist); err != nil {
		return nil, fmt.Errorf("API did not return JSON: %w: %s", err, truncate(resp.String()))
	}
	if err := hist.check(); err != nil {
		return nil, err
	}
	bars := hist.ToBars(symbol)
	slog.Debug("dchart history", "symbol", symbol, "from", from.Format(model.DateLayout), "to", to.Format(model.DateLayout), "bars", len(bars), "took", resp.Time())
	return bars, nil
}

func truncate(s string) string {
	if len(s) <= maxBodyInError {
		return s
	}
	return s[:maxBodyInError] + "..."
}

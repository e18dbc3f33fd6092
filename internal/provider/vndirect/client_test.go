package vndirect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vn-ohlcv/internal/model"
)

// 2024-01-02, 2024-01-03, 2024-01-04 at 00:00 UTC
const okBody = `{"t":[1704153600,1704240000,1704326400],"o":[10,11,10],"h":[12,11,13],"l":[9,10,10],"c":[11,10,13],"v":[100,150,50],"s":"ok"}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{URL: srv.URL, Timeout: 5 * time.Second, Retries: -1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFetchDaily(t *testing.T) {
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "E1VFVN30", q.Get("symbol"))
		assert.Equal(t, "D", q.Get("resolution"))
		assert.Equal(t, "1704153600", q.Get("from"))
		assert.Equal(t, "1704412799", q.Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	})

	bars, err := c.FetchDaily(context.Background(), " e1vfvn30", from, to)
	require.NoError(t, err)
	require.Len(t, bars, 3)
	require.Equal(t, "2024-01-02", bars[0].DateString())
	require.Equal(t, "2024-01-04", bars[2].DateString())
	require.Equal(t, model.Bar{
		Date: to, Open: 10, High: 13, Low: 10, Close: 13, Volume: 50, Symbol: "E1VFVN30", Resolution: model.Day,
	}, bars[2])
}

func TestFetchDailyNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"s":"no_data"}`))
	})
	bars, err := c.FetchDaily(context.Background(), "FPT", time.Now(), time.Now())
	require.NoError(t, err)
	require.Empty(t, bars)
}

func TestFetchDailyErrors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"http status":   {http.StatusBadGateway, "upstream down", "HTTP error 502"},
		"not json":      {http.StatusOK, "<html>maintenance</html>", "did not return JSON"},
		"status error":  {http.StatusOK, `{"s":"error"}`, "status not ok: error"},
		"column length": {http.StatusOK, `{"t":[1,2],"o":[1,2],"h":[1,2],"l":[1],"c":[1,2],"v":[1,2],"s":"ok"}`, "mismatched array lengths"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			bars, err := c.FetchDaily(context.Background(), "FPT", time.Now(), time.Now())
			require.ErrorContains(t, err, tc.want)
			require.Nil(t, bars)
		})
	}
}

func TestFetchDailyRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c, err := NewClient(Options{URL: srv.URL, Retries: 2, RetryWait: time.Millisecond})
	require.NoError(t, err)
	bars, err := c.FetchDaily(context.Background(), "FPT", time.Now(), time.Now())
	require.NoError(t, err)
	require.Len(t, bars, 3)
	require.Equal(t, int32(2), calls.Load())
}

func TestFetchDailyEmptySymbol(t *testing.T) {
	c, err := NewClient(Options{})
	require.NoError(t, err)
	_, err = c.FetchDaily(context.Background(), "  ", time.Now(), time.Now())
	require.Error(t, err)
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(Options{URL: "ftp://example.com"})
	require.Error(t, err)
}

func TestToBarsSortsAndDedupes(t *testing.T) {
	r := &HistoryResponse{
		T: []int64{1704240000, 1704153600, 1704240000 + 3600},
		O: []float64{1, 2, 3}, H: []float64{1, 2, 3}, L: []float64{1, 2, 3},
		C: []float64{1, 2, 3}, V: []float64{1, 2, 3}, S: "ok",
	}
	require.NoError(t, r.check())
	bars := r.ToBars("vnm")
	require.Len(t, bars, 2)
	require.Equal(t, "2024-01-02", bars[0].DateString())
	require.Equal(t, 3.0, bars[1].Close)
	require.Equal(t, "VNM", bars[1].Symbol)
}

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vn-ohlcv/internal/app"
	"vn-ohlcv/internal/model"
)

var testNow = time.Date(2024, 4, 10, 14, 0, 0, 0, time.UTC)

func testConfig() *app.Config {
	return &app.Config{DefaultSymbol: "E1VFVN30", DefaultDays: 90}
}

func TestRequestDefaults(t *testing.T) {
	r := rangeFlags{res: "D"}
	req, err := r.request(testConfig(), "", testNow)
	require.NoError(t, err)
	assert.Equal(t, "E1VFVN30", req.Symbol)
	assert.Equal(t, "2024-01-11", req.From.Format(model.DateLayout))
	assert.Equal(t, "2024-04-10", req.To.Format(model.DateLayout))
	assert.Equal(t, model.Day, req.Resolution)
}

func TestRequestCustomRange(t *testing.T) {
	r := rangeFlags{symbol: "fpt", from: "2024-01-02", to: "2024-03-29", res: "W"}
	req, err := r.request(testConfig(), "", testNow)
	require.NoError(t, err)
	assert.Equal(t, "FPT", req.Symbol)
	assert.Equal(t, "2024-01-02", req.From.Format(model.DateLayout))
	assert.Equal(t, model.Week, req.Resolution)

	req, err = r.request(testConfig(), "vnm", testNow)
	require.NoError(t, err)
	assert.Equal(t, "VNM", req.Symbol)
}

func TestRequestRejectsHalfRange(t *testing.T) {
	r := rangeFlags{from: "2024-01-02", res: "D"}
	_, err := r.request(testConfig(), "", testNow)
	require.ErrorIs(t, err, errHalfRange)
}

func TestRequestRejectsBadInput(t *testing.T) {
	_, err := (&rangeFlags{res: "H"}).request(testConfig(), "", testNow)
	require.Error(t, err)

	_, err = (&rangeFlags{from: "2024-13-01", to: "2024-12-01", res: "D"}).request(testConfig(), "", testNow)
	require.ErrorContains(t, err, "-from")

	_, err = (&rangeFlags{from: "2024-03-01", to: "2024-01-01", res: "D"}).request(testConfig(), "", testNow)
	require.ErrorContains(t, err, "after")
}

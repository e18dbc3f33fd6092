package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotationsYAML = `
risk_profile:
  capital_vnd: 500000000
  max_drawdown_pct: 10
  holding_horizon: 6 months
market_context:
  - news_or_event_date: "2024-04-10"
    ticker: FPT
    headline_or_note: Q1 earnings
    support_zone: "110-112"
`

func TestLoadAnnotations(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.yaml")
	require.NoError(t, os.WriteFile(p, []byte(annotationsYAML), 0644))

	ann, err := LoadAnnotations(p)
	require.NoError(t, err)
	require.NotNil(t, ann.Risk.CapitalVND)
	assert.Equal(t, 5e8, *ann.Risk.CapitalVND)
	require.NotNil(t, ann.Risk.MaxDrawdownPct)
	assert.Nil(t, ann.Risk.TargetProfitPct)
	assert.Equal(t, "6 months", ann.Risk.HoldingHorizon)
	require.Len(t, ann.Context, 1)
	assert.Equal(t, "FPT", ann.Context[0].Ticker)
	assert.Equal(t, "110-112", ann.Context[0].SupportZone)
}

func TestLoadAnnotationsEmptyPath(t *testing.T) {
	ann, err := LoadAnnotations("")
	require.NoError(t, err)
	assert.Nil(t, ann.Risk.CapitalVND)
	assert.Empty(t, ann.Context)
}

func TestLoadAnnotationsErrors(t *testing.T) {
	_, err := LoadAnnotations(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read annotations")

	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("risk_profile: [1, 2"), 0644))
	_, err = LoadAnnotations(p)
	require.ErrorContains(t, err, "parse annotations")
}

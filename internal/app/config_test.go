package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")
	for _, k := range []string{"DATA_DIR", "LOG_LEVEL", "DCHART_URL", "HTTP_TIMEOUT_SEC", "HTTP_RETRIES", "REQUEST_INTERVAL_MS",
		"DEFAULT_SYMBOL", "DEFAULT_DAYS", "ANNOTATIONS_FILE", "EXPORT_CRON", "BATCH_WORKERS", "SAVE_FORMAT", "PROFILE"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.HTTPRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestInterval)
	assert.Equal(t, "E1VFVN30", cfg.DefaultSymbol)
	assert.Equal(t, 90, cfg.DefaultDays)
	assert.Equal(t, "0 30 15 * * 1-5", cfg.ExportCron)
	assert.Equal(t, 2, cfg.BatchWorkers)
	assert.Equal(t, "xlsx", cfg.SaveFormat)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")
	t.Setenv("DATA_DIR", "/tmp/exports")
	t.Setenv("HTTP_TIMEOUT_SEC", "5")
	t.Setenv("DEFAULT_DAYS", "-3")
	t.Setenv("BATCH_WORKERS", "abc")
	t.Setenv("SAVE_FORMAT", "")
	t.Setenv("PROFILE", "dev")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/exports", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 90, cfg.DefaultDays)
	assert.Equal(t, 2, cfg.BatchWorkers)
	assert.Equal(t, "csv", cfg.SaveFormat)
}

func TestLoadConfigEnvFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("DEFAULT_SYMBOL=FPT\nSAVE_FORMAT=parquet\n"), 0644))
	t.Setenv("NO_DOTENV", "")
	t.Setenv("ENV_FILE", p)
	// godotenv.Load does not override variables that are already set
	os.Unsetenv("DEFAULT_SYMBOL")
	os.Unsetenv("SAVE_FORMAT")
	t.Cleanup(func() {
		os.Unsetenv("DEFAULT_SYMBOL")
		os.Unsetenv("SAVE_FORMAT")
	})

	cfg := LoadConfig()
	assert.Equal(t, "FPT", cfg.DefaultSymbol)
	assert.Equal(t, "parquet", cfg.SaveFormat)
}

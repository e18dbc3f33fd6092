package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration from env (and an optional .env file).
type Config struct {
	DataDir         string
	SaveFormat      string
	LogLevel        string // debug | info | warn | error
	DChartURL       string
	HTTPTimeout     time.Duration
	HTTPRetries     int
	RequestInterval time.Duration
	DefaultSymbol   string
	DefaultDays     int
	AnnotationsFile string
	ExportCron      string
	BatchWorkers    int
}

// LoadConfig reads config from environment. A .env file (or ENV_FILE) is
// loaded first; variables already set in the environment win.
func LoadConfig() *Config {
	loadDotenv()
	cfg := &Config{
		DataDir:         getEnv("DATA_DIR", "data"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DChartURL:       os.Getenv("DCHART_URL"),
		HTTPTimeout:     time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", 30, 1, 600)) * time.Second,
		HTTPRetries:     getEnvInt("HTTP_RETRIES", 2, 0, 10),
		RequestInterval: time.Duration(getEnvInt("REQUEST_INTERVAL_MS", 250, 0, 60000)) * time.Millisecond,
		DefaultSymbol:   getEnv("DEFAULT_SYMBOL", "E1VFVN30"),
		DefaultDays:     getEnvInt("DEFAULT_DAYS", 90, 1, 36500),
		AnnotationsFile: os.Getenv("ANNOTATIONS_FILE"),
		// after the HOSE close, Monday to Friday
		ExportCron:   getEnv("EXPORT_CRON", "0 30 15 * * 1-5"),
		BatchWorkers: getEnvInt("BATCH_WORKERS", 2, 1, 16),
	}
	cfg.SaveFormat = getSaveFormat()
	return cfg
}

func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}
	if f := os.Getenv("ENV_FILE"); f != "" {
		_ = godotenv.Load(f)
		return
	}
	_ = godotenv.Load()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns def when the variable is unset, not a number, or outside [min, max].
func getEnvInt(key string, def, min, max int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < min || v > max {
		return def
	}
	return v
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "xlsx"
	default:
		return "xlsx"
	}
}

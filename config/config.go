package config

import (
	"os"
	"strconv"
)

// Config holds all application-level configuration
type Config struct {
	// Database: sqlite file path by default, or a postgres:// URL
	DatabaseDSN string

	// Predictor
	ModelPath string

	// HTTP server
	ServerPort string

	// Rate watcher
	CompetitorURL  string
	RatesPerRun    int // how many listings to sample per run
	RateLimitDelay int // milliseconds between page loads
	MaxRetries     int

	// Output
	ExportPath string

	Verbose bool
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		DatabaseDSN:    getEnv("DATABASE_DSN", "hotel_revenue.db"),
		ModelPath:      getEnv("MODEL_PATH", "revenue_model.json"),
		ServerPort:     getEnv("SERVER_PORT", ":8080"),
		CompetitorURL:  getEnv("COMPETITOR_URL", "https://www.airbnb.com"),
		RatesPerRun:    getEnvInt("RATES_PER_RUN", 20),
		RateLimitDelay: getEnvInt("RATE_LIMIT_DELAY_MS", 2000),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		ExportPath:     getEnv("EXPORT_PATH", "output/filtered_data.csv"),
		Verbose:        getEnvBool("VERBOSE", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

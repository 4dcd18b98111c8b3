package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	PricesURL       string
	IconBaseURL     string
	DatabaseURL     string
	HTTPPort        string
	PricesRetryMax  int
	PricesRetryBase time.Duration
	CatalogRefresh  time.Duration
	ReverseDelay    time.Duration
	ReverseSettle   time.Duration
	SettleDelay     time.Duration
	ExportPath      string
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		PricesURL:       envOrDefault("PRICES_URL", "https://interview.switcheo.com/prices.json"),
		IconBaseURL:     envOrDefault("ICON_BASE_URL", "https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens"),
		DatabaseURL:     envOrDefault("DATABASE_URL", ""),
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		PricesRetryMax:  envOrDefaultInt("PRICES_RETRY_MAX", 3),
		PricesRetryBase: envOrDefaultDuration("PRICES_RETRY_BASE_DELAY", 2*time.Second),
		CatalogRefresh:  envOrDefaultDuration("CATALOG_REFRESH_INTERVAL", 5*time.Minute),
		ReverseDelay:    envOrDefaultDuration("REVERSE_DELAY", 300*time.Millisecond),
		ReverseSettle:   envOrDefaultDuration("REVERSE_SETTLE", 10*time.Millisecond),
		SettleDelay:     envOrDefaultDuration("SETTLE_DELAY", 1500*time.Millisecond),
		ExportPath:      envOrDefault("EXPORT_PATH", "catalog.xlsx"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PRICES_URL", "ICON_BASE_URL", "DATABASE_URL", "HTTP_PORT", "PRICES_RETRY_MAX", "SETTLE_DELAY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.PricesURL != "https://interview.switcheo.com/prices.json" {
		t.Errorf("PricesURL = %q, want default", cfg.PricesURL)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.PricesRetryMax != 3 {
		t.Errorf("PricesRetryMax = %d, want 3", cfg.PricesRetryMax)
	}
	if cfg.SettleDelay != 1500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 1.5s", cfg.SettleDelay)
	}
	if cfg.ReverseDelay != 300*time.Millisecond {
		t.Errorf("ReverseDelay = %v, want 300ms", cfg.ReverseDelay)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRICES_URL", "https://prices.example.com/prices.json")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PRICES_RETRY_MAX", "7")
	t.Setenv("SETTLE_DELAY", "50ms")

	cfg := Load()

	if cfg.PricesURL != "https://prices.example.com/prices.json" {
		t.Errorf("PricesURL = %q, want override", cfg.PricesURL)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.PricesRetryMax != 7 {
		t.Errorf("PricesRetryMax = %d, want 7", cfg.PricesRetryMax)
	}
	if cfg.SettleDelay != 50*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 50ms", cfg.SettleDelay)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PRICES_RETRY_MAX", "lots")
	t.Setenv("SETTLE_DELAY", "soon")

	cfg := Load()

	if cfg.PricesRetryMax != 3 {
		t.Errorf("PricesRetryMax = %d, want default 3", cfg.PricesRetryMax)
	}
	if cfg.SettleDelay != 1500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want default 1.5s", cfg.SettleDelay)
	}
}

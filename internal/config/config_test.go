package config

import (
	"testing"
	"time"
)

func lookupFrom(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":        "postgres://localhost/gameshop",
		"IMAGE_STORE_ADDRESS": "http://localhost:9000",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("expected default run address, got %s", cfg.RunAddress)
	}
	if cfg.BannerRefreshInterval != defaultBannerRefreshInterval {
		t.Fatalf("unexpected banner interval: %s", cfg.BannerRefreshInterval)
	}
	if cfg.BannerWindow != defaultBannerWindow {
		t.Fatalf("unexpected banner window: %s", cfg.BannerWindow)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(map[string]string{
		"IMAGE_STORE_ADDRESS": "http://localhost:9000",
	})); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadRequiresImageStoreAddress(t *testing.T) {
	if _, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/gameshop",
	})); err == nil {
		t.Fatal("expected error for missing image store address")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":9090", "-banner-interval", "5s"},
		lookupFrom(map[string]string{
			"RUN_ADDRESS":         ":8081",
			"DATABASE_URI":        "postgres://localhost/gameshop",
			"IMAGE_STORE_ADDRESS": "http://localhost:9000",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("expected flag to win, got %s", cfg.RunAddress)
	}
	if cfg.BannerRefreshInterval != 5*time.Second {
		t.Fatalf("unexpected banner interval: %s", cfg.BannerRefreshInterval)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	if _, err := load([]string{"-banner-interval", "soon"}, lookupFrom(map[string]string{
		"DATABASE_URI":        "postgres://localhost/gameshop",
		"IMAGE_STORE_ADDRESS": "http://localhost:9000",
	})); err == nil {
		t.Fatal("expected error for invalid duration")
	}

	if _, err := load([]string{"-shutdown-timeout", "never"}, lookupFrom(map[string]string{
		"DATABASE_URI":        "postgres://localhost/gameshop",
		"IMAGE_STORE_ADDRESS": "http://localhost:9000",
	})); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadNonPositiveDurationsFallBack(t *testing.T) {
	cfg, err := load([]string{"-banner-interval", "-1s", "-shutdown-timeout", "0s"}, lookupFrom(map[string]string{
		"DATABASE_URI":        "postgres://localhost/gameshop",
		"IMAGE_STORE_ADDRESS": "http://localhost:9000",
		"BANNER_WINDOW":       "-1h",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BannerRefreshInterval != defaultBannerRefreshInterval {
		t.Fatalf("expected fallback interval, got %s", cfg.BannerRefreshInterval)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected fallback shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.BannerWindow != defaultBannerWindow {
		t.Fatalf("expected fallback banner window, got %s", cfg.BannerWindow)
	}
}

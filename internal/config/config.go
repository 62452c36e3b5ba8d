package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	ImageStoreAddress     string
	AuthSecret            string
	BannerRefreshInterval time.Duration
	BannerWindow          time.Duration
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress            = ":8080"
	defaultAuthSecret            = "change-me-in-production"
	defaultBannerRefreshInterval = 30 * time.Second
	defaultBannerWindow          = 7 * 24 * time.Hour
	defaultShutdownTimeout       = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		ImageStoreAddress:     getString(lookup, "IMAGE_STORE_ADDRESS", ""),
		AuthSecret:            getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		BannerRefreshInterval: getDuration(lookup, "BANNER_REFRESH_INTERVAL", defaultBannerRefreshInterval),
		BannerWindow:          getDuration(lookup, "BANNER_WINDOW", defaultBannerWindow),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("gameshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		bannerIntervalStr  = cfg.BannerRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ImageStoreAddress, "i", cfg.ImageStoreAddress, "Image store base URL")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&bannerIntervalStr, "banner-interval", bannerIntervalStr, "Interval between banner cache refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.BannerRefreshInterval, err = time.ParseDuration(bannerIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid banner interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.BannerRefreshInterval <= 0 {
		cfg.BannerRefreshInterval = defaultBannerRefreshInterval
	}

	if cfg.BannerWindow <= 0 {
		cfg.BannerWindow = defaultBannerWindow
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.ImageStoreAddress == "" {
		return nil, fmt.Errorf("image store address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

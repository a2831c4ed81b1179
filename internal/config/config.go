package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/knmi-induced/internal/seismic/providers"
)

type AppConfig struct {
	// FeedURL is the upstream KNMI induced-events JSON.
	FeedURL string

	// RefreshInterval controls how often the snapshot is refreshed.
	RefreshInterval time.Duration
	// RefreshTimeout bounds a single refresh cycle.
	RefreshTimeout time.Duration

	// Outbound fetch settings.
	HTTPTimeout     time.Duration
	FetchMaxRetries int // extra attempts within one cycle (0 = single attempt)

	Port             string
	LogLevel         string
	LogFormat        string
	CORSAllowOrigins string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Info("no .env file loaded; using process environment")
	}
	cfg := &AppConfig{}

	cfg.FeedURL = getenvDefault("KNMI_FEED_URL", providers.DefaultKNMIFeedURL)

	var err error
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "1h"); err != nil {
		return nil, err
	}
	if cfg.RefreshTimeout, err = getenvDuration("REFRESH_TIMEOUT", "2m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	retries, err := strconv.Atoi(getenvDefault("FETCH_MAX_RETRIES", "0"))
	if err != nil || retries < 0 {
		return nil, fmt.Errorf("invalid FETCH_MAX_RETRIES: must be a non-negative integer")
	}
	cfg.FetchMaxRetries = retries

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "info"))
	cfg.LogFormat = strings.ToLower(getenvDefault("LOG_FORMAT", "json"))
	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvDuration parses a strictly positive duration.
func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultBoundariesURL is the Chicago Data Portal community-areas GeoJSON export.
const defaultBoundariesURL = "https://data.cityofchicago.org/api/geospatial/cauq-8yn6?method=export&format=GeoJSON"

// Config holds all pipeline settings, populated from environment variables.
type Config struct {
	DBPath string

	BoundariesURL      string
	BoundariesTimeout  time.Duration
	BoundariesCacheDir string // empty disables the disk cache

	DashboardOut string
	HotspotsOut  string

	// Inclusive year range for the dashboard's per-year layers.
	YearStart int
	YearEnd   int

	LogLevel  string
	LogFormat string

	PushgatewayURL string // empty disables metrics delivery
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	boundariesTimeout, err := parseDuration("BOUNDARIES_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	yearStart, err := parseInt("YEAR_START", 2020)
	if err != nil {
		return nil, err
	}
	yearEnd, err := parseInt("YEAR_END", 2024)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:             envOrDefault("DB_PATH", "homicides.db"),
		BoundariesURL:      envOrDefault("BOUNDARIES_URL", defaultBoundariesURL),
		BoundariesTimeout:  boundariesTimeout,
		BoundariesCacheDir: os.Getenv("BOUNDARIES_CACHE_DIR"),
		DashboardOut:       envOrDefault("DASHBOARD_OUT", "chicago_homicides_dashboard.html"),
		HotspotsOut:        envOrDefault("HOTSPOTS_OUT", "chicago_crime_hotspots.html"),
		YearStart:          yearStart,
		YearEnd:            yearEnd,
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		PushgatewayURL:     os.Getenv("PUSHGATEWAY_URL"),
	}

	if cfg.DBPath == "" {
		return nil, errors.New("DB_PATH is required")
	}
	if cfg.BoundariesURL == "" {
		return nil, errors.New("BOUNDARIES_URL is required")
	}
	if cfg.DashboardOut == "" || cfg.HotspotsOut == "" {
		return nil, errors.New("output paths must not be empty")
	}
	if cfg.YearStart > cfg.YearEnd {
		return nil, fmt.Errorf("YEAR_START %d is after YEAR_END %d", cfg.YearStart, cfg.YearEnd)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

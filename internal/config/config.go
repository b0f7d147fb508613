package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ocean-router/internal/grid"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Grid    GridConfig
	Weather WeatherConfig
	Planner PlannerConfig
	Voyage  VoyageConfig
	Logging LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GridConfig describes the lattice built at startup.
type GridConfig struct {
	Bounds  grid.Bounds
	StepDeg float64
	// ZonesFile is an optional GeoJSON file of exclusion zones.
	ZonesFile string
	// ZonesSimplifyDeg is the Douglas-Peucker threshold applied to zones.
	ZonesSimplifyDeg float64
	// CacheFile, when set, stores the encoded graph between runs.
	CacheFile string
}

// WeatherConfig controls the startup weather snapshot.
type WeatherConfig struct {
	DefaultWind float64
	Seed        int64
	Concurrency int
}

// PlannerConfig tunes route queries.
type PlannerConfig struct {
	SnapCacheSize int
}

// VoyageConfig tunes emergency rerouting.
type VoyageConfig struct {
	HazardThresholdKm float64
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	File          string // empty logs to stdout
	IncludeCaller bool
}

const (
	defaultHost              = "0.0.0.0"
	defaultPort              = 8080
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultStepDeg           = 0.5
	defaultWindSpeed         = 5.0
	defaultWeatherConcurrent = 8
	defaultSnapCacheSize     = 4096
	defaultHazardThresholdKm = 5.0
	defaultLoggingLevel      = "info"
	defaultLoggingFormat     = "text"
)

// defaultBounds covers the northern Indian Ocean.
var defaultBounds = grid.Bounds{MinLat: -10, MaxLat: 30, MinLon: 40, MaxLon: 120}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host: valueOrDefault("SERVER_HOST", defaultHost),
		},
		Grid: GridConfig{
			ZonesFile: os.Getenv("GRID_ZONES_FILE"),
			CacheFile: os.Getenv("GRID_CACHE_FILE"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			File:          os.Getenv("LOG_FILE"),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	var err error
	if cfg.HTTP.Port, err = parsePort("SERVER_PORT", defaultPort); err != nil {
		return Config{}, err
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", defaultReadTimeout, &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", defaultWriteTimeout, &cfg.HTTP.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", defaultIdleTimeout, &cfg.HTTP.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		if *d.dst, err = parseDuration(d.key, d.fallback); err != nil {
			return Config{}, err
		}
	}

	floats := []struct {
		key      string
		fallback float64
		dst      *float64
	}{
		{"GRID_MIN_LAT", defaultBounds.MinLat, &cfg.Grid.Bounds.MinLat},
		{"GRID_MAX_LAT", defaultBounds.MaxLat, &cfg.Grid.Bounds.MaxLat},
		{"GRID_MIN_LON", defaultBounds.MinLon, &cfg.Grid.Bounds.MinLon},
		{"GRID_MAX_LON", defaultBounds.MaxLon, &cfg.Grid.Bounds.MaxLon},
		{"GRID_STEP", defaultStepDeg, &cfg.Grid.StepDeg},
		{"GRID_ZONES_SIMPLIFY", 0, &cfg.Grid.ZonesSimplifyDeg},
		{"WEATHER_DEFAULT_WIND", defaultWindSpeed, &cfg.Weather.DefaultWind},
		{"HAZARD_THRESHOLD_KM", defaultHazardThresholdKm, &cfg.Voyage.HazardThresholdKm},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloat(f.key, f.fallback); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Grid.Bounds.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid GRID_* bounds: %w", err)
	}
	if cfg.Grid.StepDeg <= 0 {
		return Config{}, fmt.Errorf("invalid GRID_STEP %v: must be positive", cfg.Grid.StepDeg)
	}
	if cfg.Weather.DefaultWind <= 0 {
		return Config{}, fmt.Errorf("invalid WEATHER_DEFAULT_WIND %v: must be positive", cfg.Weather.DefaultWind)
	}
	if cfg.Voyage.HazardThresholdKm <= 0 {
		return Config{}, fmt.Errorf("invalid HAZARD_THRESHOLD_KM %v: must be positive", cfg.Voyage.HazardThresholdKm)
	}

	seed, err := parseInt("WEATHER_SEED", 1)
	if err != nil {
		return Config{}, err
	}
	cfg.Weather.Seed = int64(seed)
	if cfg.Weather.Concurrency, err = parseInt("WEATHER_CONCURRENCY", defaultWeatherConcurrent); err != nil {
		return Config{}, err
	}
	if cfg.Planner.SnapCacheSize, err = parseInt("PLANNER_SNAP_CACHE", defaultSnapCacheSize); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return f, nil
	}
	return fallback, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}

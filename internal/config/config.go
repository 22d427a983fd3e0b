package config

import (
	"time"

	"github.com/hanpama/sdlcheck/internal/validate"
)

// Config is the sdlcheck configuration file.
type Config struct {
	Schema    SchemaConfig    `yaml:"schema"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Watch     WatchConfig     `yaml:"watch"`
}

// SchemaConfig selects the documents to check.
type SchemaConfig struct {
	// Paths are files or directories searched for .graphql and .graphqls files.
	Paths []string `yaml:"paths" validate:"dive,required"`

	// AllowedLegacyNames are exempt from name validation.
	AllowedLegacyNames []string `yaml:"allowedLegacyNames" validate:"dive,required"`
}

// CacheConfig controls memoization of validation results.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	Size     int  `yaml:"size" validate:"gte=1"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// TelemetryConfig controls trace export and the metrics endpoint.
// Empty addresses disable the corresponding feature.
type TelemetryConfig struct {
	OTelEndpoint string `yaml:"otelEndpoint" validate:"omitempty,hostname_port"`
	ServiceName  string `yaml:"serviceName" validate:"required"`
	MetricsAddr  string `yaml:"metricsAddr" validate:"omitempty,hostname_port"`
}

// WatchConfig controls re-validation on file changes.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = validate.DefaultCacheSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "sdlcheck"
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 100 * time.Millisecond
	}
}

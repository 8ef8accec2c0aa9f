// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedCatalog controls whether the store is seeded with the standard
	// school catalog on startup. Disabled only in tests.
	SeedCatalog bool `koanf:"seed_catalog"`

	// MetricsIntervalSeconds sets how often system gauges refresh.
	MetricsIntervalSeconds int `koanf:"metrics_interval_seconds"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":8000",
		SeedCatalog:            true,
		MetricsIntervalSeconds: 10,
	}
}

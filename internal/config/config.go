// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers a YAML file and environment variables on top.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the CSV dataset read on start and reload.
	DataPath string `koanf:"data_path"`

	// AnchorVotes is the default m of the weighted score: the virtual
	// vote count at which an item's own rating and the corpus mean
	// contribute equally.
	AnchorVotes float64 `koanf:"anchor_votes"`

	// PowerExponent is the default p of the votes-power score.
	PowerExponent float64 `koanf:"power_exponent"`

	// DefaultLimit is the page size used when a query has none.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps GET /books?limit.
	MaxLimit int `koanf:"max_limit"`

	// RefreshIntervalMinutes schedules background dataset reloads.
	// Zero disables the refresher.
	RefreshIntervalMinutes int `koanf:"refresh_interval_minutes"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		DataPath:      "data/books.csv",
		AnchorVotes:   100,
		PowerExponent: 1.0,
		DefaultLimit:  30,
		MaxLimit:      500,

		RefreshIntervalMinutes: 0,
	}
}

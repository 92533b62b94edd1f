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

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// ErrorListCap bounds the human-readable error list returned by jobs.
	ErrorListCap int `koanf:"error_list_cap"`

	// MinSuffixLen is the minimum external-identifier length for the
	// suffix-match fallback during score reconciliation.
	MinSuffixLen int `koanf:"min_suffix_len"`

	// MaxUploadBytes bounds the size of accepted roster/score uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// StoreCapacity pre-sizes the in-memory team store.
	StoreCapacity int `koanf:"store_capacity"`
}

// New creates a Config with defaults sized for a single-event deployment.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		MaxLeaderboardLimit: 100,
		ErrorListCap:        10,
		MinSuffixLen:        2,
		MaxUploadBytes:      10 << 20,
		StoreCapacity:       1024,
	}
}

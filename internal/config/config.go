// Package config defines service configuration structures and loading hooks.
package config

// Storage backend names accepted in configuration.
const (
	StorageGCS    = "gcs"
	StorageMemory = "memory"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Storage selects the blob backend: gcs or memory.
	Storage string `koanf:"storage"`

	// Bucket and Object name the blob holding the persisted board.
	Bucket string `koanf:"bucket"`
	Object string `koanf:"object"`

	// MaxEntries bounds the leaderboard length.
	MaxEntries int `koanf:"max_entries"`

	// WriteRetries bounds retries of the conditional write on a lost race.
	WriteRetries int `koanf:"write_retries"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		Storage:      StorageGCS,
		Bucket:       "asteroids-highscores",
		Object:       "highscores.json",
		MaxEntries:   10,
		WriteRetries: 4,
	}
}

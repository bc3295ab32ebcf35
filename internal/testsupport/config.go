// Package testsupport provides shared fixtures for package tests: a config
// builder seeded with per-test temp directories and a fake Scryfall server.
package testsupport

import (
	"path/filepath"
	"testing"

	"deckport/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	// Keep request pacing out of test runtimes. Zero would be normalized
	// back to the production default.
	cfg.Scryfall.RequestGapMS = 1

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithScryfallBaseURL points the config at a test server.
func WithScryfallBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scryfall.BaseURL = baseURL
	}
}

// WithBatchSize overrides the collection batch size.
func WithBatchSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Lookup.BatchSize = size
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

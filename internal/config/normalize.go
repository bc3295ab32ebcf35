package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScryfall()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScryfall() {
	c.Scryfall.BaseURL = strings.TrimRight(strings.TrimSpace(c.Scryfall.BaseURL), "/")
	if c.Scryfall.BaseURL == "" {
		c.Scryfall.BaseURL = defaultScryfallBaseURL
	}
	c.Scryfall.UserAgent = strings.TrimSpace(c.Scryfall.UserAgent)
	if c.Scryfall.UserAgent == "" {
		c.Scryfall.UserAgent = defaultScryfallUserAgent
	}
	if c.Scryfall.RequestGapMS <= 0 {
		c.Scryfall.RequestGapMS = defaultRequestGapMS
	}
	if c.Scryfall.TimeoutSeconds <= 0 {
		c.Scryfall.TimeoutSeconds = defaultRequestTimeoutSecs
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "pretty":
		c.Logging.Format = "console"
	default:
		c.Logging.Format = format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

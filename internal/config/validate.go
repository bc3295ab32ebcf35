package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validateSets(); err != nil {
		return err
	}
	if err := c.validateLookup(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDetection() error {
	if c.Detection.MinScore < 0 || c.Detection.MinScore > 2 {
		return fmt.Errorf("detection.min_score %.2f is outside [0, 2]", c.Detection.MinScore)
	}
	if c.Detection.MinMargin < 0 || c.Detection.MinMargin > 1 {
		return fmt.Errorf("detection.min_margin %.2f is outside [0, 1]", c.Detection.MinMargin)
	}
	return nil
}

func (c *Config) validateSets() error {
	if c.Sets.MaxAgeDays < 1 {
		return fmt.Errorf("sets.max_age_days must be at least 1, got %d", c.Sets.MaxAgeDays)
	}
	if c.Sets.MinMatchScore <= 0 || c.Sets.MinMatchScore > 1 {
		return fmt.Errorf("sets.min_match_score %.2f is outside (0, 1]", c.Sets.MinMatchScore)
	}
	return nil
}

func (c *Config) validateLookup() error {
	if c.Lookup.BatchSize < 1 || c.Lookup.BatchSize > 75 {
		return fmt.Errorf("lookup.batch_size must be between 1 and 75, got %d", c.Lookup.BatchSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

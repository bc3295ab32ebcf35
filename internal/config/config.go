package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	CacheDir string `toml:"cache_dir"`
	LogDir   string `toml:"log_dir"`
}

// Scryfall contains configuration for the Scryfall API client.
type Scryfall struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	RequestGapMS   int    `toml:"request_gap_ms"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Detection contains the dialect detection thresholds.
type Detection struct {
	MinScore  float64 `toml:"min_score"`
	MinMargin float64 `toml:"min_margin"`
}

// Sets contains configuration for the set list cache and fuzzy resolution.
type Sets struct {
	MaxAgeDays    int     `toml:"max_age_days"`
	MinMatchScore float64 `toml:"min_match_score"`
}

// Lookup contains configuration for the identity resolution engine.
type Lookup struct {
	BatchSize         int  `toml:"batch_size"`
	SkipLanguageCheck bool `toml:"skip_language_check"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for deckport.
//
// Configuration sections by subsystem:
//   - Paths: cache and log directories
//   - Scryfall: API base URL, user agent, and request pacing
//   - Detection: dialect detection score floor and margin
//   - Sets: set cache staleness and fuzzy match threshold
//   - Lookup: batch sizing and optional validation toggles
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Scryfall  Scryfall  `toml:"scryfall"`
	Detection Detection `toml:"detection"`
	Sets      Sets      `toml:"sets"`
	Lookup    Lookup    `toml:"lookup"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/deckport/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("deckport.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// SetCachePath returns the location of the set list database.
func (c *Config) SetCachePath() string {
	return filepath.Join(c.Paths.CacheDir, "sets.db")
}

// SetCacheMaxAge returns the staleness window for the set cache.
func (c *Config) SetCacheMaxAge() time.Duration {
	return time.Duration(c.Sets.MaxAgeDays) * 24 * time.Hour
}

// RequestGap returns the minimum delay between Scryfall requests.
func (c *Config) RequestGap() time.Duration {
	return time.Duration(c.Scryfall.RequestGapMS) * time.Millisecond
}

// RequestTimeout returns the per-request timeout for the Scryfall client.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Scryfall.TimeoutSeconds) * time.Second
}

// EnsureDirectories creates the cache and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.CacheDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

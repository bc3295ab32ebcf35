package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("missing file reported as existing at %s", path)
	}
	if cfg.Scryfall.BaseURL != defaultScryfallBaseURL {
		t.Errorf("base url = %q", cfg.Scryfall.BaseURL)
	}
	if cfg.Detection.MinScore != defaultDetectionMinScore || cfg.Detection.MinMargin != defaultDetectionMinMargin {
		t.Errorf("detection thresholds = %+v", cfg.Detection)
	}
	if cfg.Lookup.BatchSize != defaultLookupBatchSize {
		t.Errorf("batch size = %d", cfg.Lookup.BatchSize)
	}
	if !filepath.IsAbs(cfg.Paths.CacheDir) {
		t.Errorf("cache dir not expanded: %q", cfg.Paths.CacheDir)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[scryfall]
base_url = "https://example.test/api/"
request_gap_ms = 250

[detection]
min_score = 0.8

[sets]
max_age_days = 1
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("file not reported as existing")
	}
	if cfg.Scryfall.BaseURL != "https://example.test/api" {
		t.Errorf("base url = %q, want trailing slash trimmed", cfg.Scryfall.BaseURL)
	}
	if cfg.Scryfall.RequestGapMS != 250 {
		t.Errorf("request gap = %d", cfg.Scryfall.RequestGapMS)
	}
	if cfg.Detection.MinScore != 0.8 {
		t.Errorf("min score = %v", cfg.Detection.MinScore)
	}
	if cfg.Detection.MinMargin != defaultDetectionMinMargin {
		t.Errorf("unset margin should keep default, got %v", cfg.Detection.MinMargin)
	}
	if cfg.SetCacheMaxAge().Hours() != 24 {
		t.Errorf("max age = %v", cfg.SetCacheMaxAge())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"oversized batch", "[lookup]\nbatch_size = 100\n", "batch_size"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"zero match score", "[sets]\nmin_match_score = 0.0\n", "min_match_score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after write")
	}
	defaults := Default()
	if cfg.Scryfall != defaults.Scryfall {
		t.Errorf("sample scryfall section diverges from defaults: %+v", cfg.Scryfall)
	}
	if cfg.Detection != defaults.Detection || cfg.Sets != defaults.Sets || cfg.Lookup != defaults.Lookup {
		t.Errorf("sample thresholds diverge from defaults")
	}
}

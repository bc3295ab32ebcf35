package config

const (
	defaultCacheDir           = "~/.cache/deckport"
	defaultLogDir             = "~/.local/share/deckport/logs"
	defaultScryfallBaseURL    = "https://api.scryfall.com"
	defaultScryfallUserAgent  = "deckport/dev"
	defaultRequestGapMS       = 100
	defaultRequestTimeoutSecs = 30
	defaultDetectionMinScore  = 0.6
	defaultDetectionMinMargin = 0.2
	defaultSetCacheMaxAgeDays = 7
	defaultSetMinMatchScore   = 0.7
	defaultLookupBatchSize    = 75
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Scryfall: Scryfall{
			BaseURL:        defaultScryfallBaseURL,
			UserAgent:      defaultScryfallUserAgent,
			RequestGapMS:   defaultRequestGapMS,
			TimeoutSeconds: defaultRequestTimeoutSecs,
		},
		Detection: Detection{
			MinScore:  defaultDetectionMinScore,
			MinMargin: defaultDetectionMinMargin,
		},
		Sets: Sets{
			MaxAgeDays:    defaultSetCacheMaxAgeDays,
			MinMatchScore: defaultSetMinMatchScore,
		},
		Lookup: Lookup{
			BatchSize: defaultLookupBatchSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"deckport/internal/config"
	"deckport/internal/logging"
	"deckport/internal/scryfall"
	"deckport/internal/setindex"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) newClient() (*scryfall.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return scryfall.New(
		cfg.Scryfall.BaseURL,
		cfg.Scryfall.UserAgent,
		scryfall.WithRequestGap(cfg.RequestGap()),
	)
}

// openSetCache opens the set catalog store and pairs it with the API source.
// The caller owns the returned close func.
func (c *commandContext) openSetCache() (*setindex.Cache, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := c.newClient()
	if err != nil {
		return nil, nil, err
	}
	store, err := setindex.Open(cfg.SetCachePath())
	if err != nil {
		return nil, nil, err
	}
	cache := setindex.NewCache(store, client, cfg.SetCacheMaxAge())
	return cache, store.Close, nil
}

// signalContext derives a context cancelled by SIGINT or SIGTERM so a long
// conversion stops between requests instead of mid-write.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

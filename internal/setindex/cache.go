package setindex

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"deckport/internal/scryfall"
)

// DefaultMaxAge is how long a cached set list stays trusted before the
// next load refreshes it.
const DefaultMaxAge = 7 * 24 * time.Hour

const lockRetryDelay = 250 * time.Millisecond

// SetSource fetches the canonical set list.
type SetSource interface {
	Sets(ctx context.Context) ([]scryfall.Set, error)
}

// Cache couples the SQLite store with its upstream source and refresh
// policy.
type Cache struct {
	store  *Store
	source SetSource
	maxAge time.Duration
}

// NewCache builds a cache over store fed by source. A non-positive maxAge
// falls back to DefaultMaxAge.
func NewCache(store *Store, source SetSource, maxAge time.Duration) *Cache {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{store: store, source: source, maxAge: maxAge}
}

// Stale reports whether the cache needs a refresh, along with the last
// refresh time when one exists.
func (c *Cache) Stale(ctx context.Context) (bool, time.Time, error) {
	refreshedAt, ok, err := c.store.RefreshedAt(ctx)
	if err != nil {
		return false, time.Time{}, err
	}
	if !ok {
		return true, time.Time{}, nil
	}
	return time.Since(refreshedAt) > c.maxAge, refreshedAt, nil
}

// Index loads the set index, refreshing the cache first when it is empty
// or stale. The second return reports whether a refresh ran.
func (c *Cache) Index(ctx context.Context) (*Index, bool, error) {
	stale, _, err := c.Stale(ctx)
	if err != nil {
		return nil, false, err
	}
	refreshed := false
	if stale {
		if _, err := c.Refresh(ctx); err != nil {
			return nil, false, err
		}
		refreshed = true
	}

	sets, err := c.store.All(ctx)
	if err != nil {
		return nil, refreshed, err
	}
	if len(sets) == 0 {
		return nil, refreshed, fmt.Errorf("set cache at %s is empty after refresh", c.store.Path())
	}
	return New(sets), refreshed, nil
}

// Refresh fetches the full set list and rebuilds the cache. A file lock
// beside the database keeps concurrent invocations from racing the
// rebuild; the lock wait honors ctx.
func (c *Cache) Refresh(ctx context.Context) (int, error) {
	lock := flock.New(c.store.Path() + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return 0, fmt.Errorf("acquire set cache lock: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("set cache lock at %s is held elsewhere", lock.Path())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	sets, err := c.source.Sets(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch set list: %w", err)
	}
	if err := c.store.ReplaceAll(ctx, sets, time.Now()); err != nil {
		return 0, err
	}
	return len(sets), nil
}

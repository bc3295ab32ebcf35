package setindex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"deckport/internal/scryfall"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sets.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.RefreshedAt(ctx); err != nil || ok {
		t.Fatalf("fresh store should have no refresh time, ok=%v err=%v", ok, err)
	}

	sets := testSets()
	refreshedAt := time.Now().Add(-time.Hour)
	if err := store.ReplaceAll(ctx, sets, refreshedAt); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	got, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != len(sets) {
		t.Fatalf("got %d sets, want %d", len(got), len(sets))
	}
	byCode := make(map[string]scryfall.Set, len(got))
	for _, set := range got {
		byCode[set.Code] = set
	}
	if set := byCode["akr"]; !set.Digital || set.Name != "Amonkhet Remastered" {
		t.Fatalf("akr round trip mangled: %+v", set)
	}
	if set := byCode["teld"]; set.ParentSetCode != "eld" || set.SetType != "token" {
		t.Fatalf("teld round trip mangled: %+v", set)
	}

	stamp, ok, err := store.RefreshedAt(ctx)
	if err != nil || !ok {
		t.Fatalf("refresh time missing, ok=%v err=%v", ok, err)
	}
	if stamp.Sub(refreshedAt.UTC()).Abs() > time.Second {
		t.Fatalf("refresh time = %v, want about %v", stamp, refreshedAt)
	}
}

func TestStoreReplaceAllOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceAll(ctx, testSets(), time.Now()); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := store.ReplaceAll(ctx, testSets()[:2], time.Now()); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sets after overwrite, want 2", len(got))
	}
}

func TestStoreReopenPreservesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.ReplaceAll(ctx, testSets(), time.Now()); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening a migrated cache must treat the schema as current.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.All(ctx)
	if err != nil {
		t.Fatalf("all after reopen: %v", err)
	}
	if len(got) != len(testSets()) {
		t.Fatalf("got %d sets after reopen, want %d", len(got), len(testSets()))
	}
}

type staticSource struct {
	sets []scryfall.Set
	err  error
	hits int
}

func (s *staticSource) Sets(ctx context.Context) ([]scryfall.Set, error) {
	s.hits++
	return s.sets, s.err
}

func TestCacheIndexRefreshesWhenEmpty(t *testing.T) {
	store := openTestStore(t)
	source := &staticSource{sets: testSets()}
	cache := NewCache(store, source, DefaultMaxAge)

	ix, refreshed, err := cache.Index(context.Background())
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if !refreshed || source.hits != 1 {
		t.Fatalf("empty cache should refresh once, refreshed=%v hits=%d", refreshed, source.hits)
	}
	if ix.Len() != len(testSets()) {
		t.Fatalf("index covers %d sets, want %d", ix.Len(), len(testSets()))
	}

	// A warm cache serves without touching the source again.
	if _, refreshed, err := cache.Index(context.Background()); err != nil || refreshed || source.hits != 1 {
		t.Fatalf("warm cache hit the source, refreshed=%v hits=%d err=%v", refreshed, source.hits, err)
	}
}

func TestCacheIndexRefreshesWhenStale(t *testing.T) {
	store := openTestStore(t)
	if err := store.ReplaceAll(context.Background(), testSets(), time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	source := &staticSource{sets: testSets()}
	cache := NewCache(store, source, 24*time.Hour)

	_, refreshed, err := cache.Index(context.Background())
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if !refreshed || source.hits != 1 {
		t.Fatalf("stale cache should refresh, refreshed=%v hits=%d", refreshed, source.hits)
	}
}

func TestCacheRefreshPropagatesSourceError(t *testing.T) {
	store := openTestStore(t)
	wantErr := errors.New("upstream down")
	cache := NewCache(store, &staticSource{err: wantErr}, DefaultMaxAge)

	if _, err := cache.Refresh(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped source error", err)
	}
}

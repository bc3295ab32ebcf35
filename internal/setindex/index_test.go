package setindex

import (
	"testing"

	"deckport/internal/scryfall"
)

func testSets() []scryfall.Set {
	return []scryfall.Set{
		{Code: "7ed", Name: "Seventh Edition", SetType: "core"},
		{Code: "8ed", Name: "Eighth Edition", SetType: "core"},
		{Code: "eld", Name: "Throne of Eldraine", SetType: "expansion"},
		{Code: "teld", Name: "Throne of Eldraine Tokens", SetType: "token", ParentSetCode: "eld"},
		{Code: "aeld", Name: "Throne of Eldraine Art Series", SetType: "memorabilia", ParentSetCode: "eld"},
		{Code: "peld", Name: "Throne of Eldraine Promos", SetType: "promo", ParentSetCode: "eld"},
		{Code: "mb1", Name: "Mystery Booster", SetType: "masters"},
		{Code: "c21", Name: "Commander 2021", SetType: "commander"},
		{Code: "cmr", Name: "Commander Legends", SetType: "draft_innovation"},
		{Code: "akr", Name: "Amonkhet Remastered", SetType: "masters", Digital: true},
	}
}

func TestResolveExactCode(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("ELD", Hints{}, DefaultMinScore)
	if !ok || !match.Exact {
		t.Fatalf("code lookup failed: %+v ok=%v", match, ok)
	}
	if match.Set.Code != "eld" {
		t.Fatalf("resolved %q, want eld", match.Set.Code)
	}
}

func TestResolveExactNameIgnoresCase(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("throne of ELDRAINE", Hints{}, DefaultMinScore)
	if !ok || !match.Exact || match.Set.Code != "eld" {
		t.Fatalf("exact name lookup failed: %+v ok=%v", match, ok)
	}
}

func TestResolveFuzzyPrefersParentSet(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("Eldraine Throne", Hints{}, DefaultMinScore)
	if !ok {
		t.Fatalf("fuzzy resolution failed: %+v", match)
	}
	if match.Set.Code != "eld" {
		t.Fatalf("resolved %q, want the main expansion", match.Set.Code)
	}
	if match.Exact {
		t.Fatal("word-order fuzzy hit must not report exact")
	}
}

func TestResolveTokenHintBiasesToTokenSet(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("Eldraine Tokens", Hints{Token: true}, DefaultMinScore)
	if !ok || match.Set.Code != "teld" {
		t.Fatalf("resolved %+v ok=%v, want teld", match, ok)
	}
}

func TestResolveArtSeriesHint(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("Eldraine Art Series", Hints{ArtSeries: true}, DefaultMinScore)
	if !ok || match.Set.Code != "aeld" {
		t.Fatalf("resolved %+v ok=%v, want aeld", match, ok)
	}
}

func TestResolveNumberedEditionGuard(t *testing.T) {
	ix := New(testSets())
	match, ok := ix.Resolve("7th Edition", Hints{}, DefaultMinScore)
	if !ok || match.Set.Code != "7ed" {
		t.Fatalf("resolved %+v ok=%v, want 7ed", match, ok)
	}

	// A lone ordinal must never drift to a neighboring edition.
	if match, ok := ix.Resolve("Ninth Edition", Hints{}, DefaultMinScore); ok {
		t.Fatalf("unknown edition resolved to %q", match.Set.Code)
	}
}

func TestResolveRejectsWeakOverlap(t *testing.T) {
	ix := New(testSets())
	if match, ok := ix.Resolve("Commander", Hints{}, DefaultMinScore); ok {
		t.Fatalf("one shared word cleared the threshold: %+v", match)
	}
}

func TestResolveEmptyName(t *testing.T) {
	ix := New(testSets())
	if _, ok := ix.Resolve("  ", Hints{}, DefaultMinScore); ok {
		t.Fatal("blank name must not resolve")
	}
}

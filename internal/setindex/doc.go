// Package setindex resolves vendor set names and codes to canonical
// Scryfall sets. The full set list is cached locally in SQLite and refreshed
// when stale; lookups run against an in-memory index with exact and fuzzy
// passes.
package setindex

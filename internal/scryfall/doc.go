// Package scryfall provides a minimal client for the Scryfall card
// database: the batched collection endpoint, the search endpoint, the
// language-specific single-card endpoint, and the set catalog.
//
// The client enforces a fixed minimum delay between consecutive requests so
// a large conversion stays inside Scryfall's rate limits regardless of how
// many batches it issues.
package scryfall

// Package resolve turns parsed collection records into precise Scryfall
// printings. It assigns a confidence ceiling from the identifiers each
// record carries, routes records through search or batched collection
// lookups, validates the returned printing against the row, and
// consolidates duplicate rows into ordered outcomes.
package resolve

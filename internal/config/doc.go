// Package config loads, normalizes, and validates deckport configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: cache locations, Scryfall client pacing, and the tuned
// thresholds for dialect detection and set resolution.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

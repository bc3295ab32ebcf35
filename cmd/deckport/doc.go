// Package main hosts the deckport CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into the
// conversion pipeline: dialect detection, set catalog maintenance, Scryfall
// lookup, and CSV export. It centralizes configuration resolution, structured
// logging setup, and signal handling so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

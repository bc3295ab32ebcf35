// Package logging builds the slog loggers used across deckport and holds
// the shared attribute helpers so call sites stay terse. The console
// handler renders one human-readable line per record; the JSON handler is
// for piping logs elsewhere.
package logging

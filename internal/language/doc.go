// Package language normalizes printed-language values from collection
// exports into Scryfall language codes.
package language

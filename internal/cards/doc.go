// Package cards defines the normalized card record that flows through the
// conversion pipeline, together with the confidence tiers and identification
// methods attached to it.
//
// A ParsedRecord is created once per input row (or per split face of a
// double-sided token), mutated by set resolution and confidence assignment,
// and then consumed read-only by the lookup pipeline.
package cards

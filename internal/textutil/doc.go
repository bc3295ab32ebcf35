// Package textutil provides the text normalization shared by dialect
// detection, fuzzy set-name matching, and match validation.
//
// The primary use cases are:
//   - Folding accents so "Lim-Dûl's Vault" compares equal to "Lim-Dul's Vault"
//   - Canonicalizing names for loose equality (symbols to words, case folding)
//   - Tokenizing set names into word lists for overlap scoring
package textutil

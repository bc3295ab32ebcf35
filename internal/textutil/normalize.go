package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var titleCaser = cases.Title(language.Und)

// FoldAccents strips combining marks so accented and plain spellings of the
// same card name compare equal.
func FoldAccents(input string) string {
	folded, _, err := transform.String(accentFolder, input)
	if err != nil {
		return input
	}
	return folded
}

// Normalize lowercases, folds accents, replaces common symbols with word
// equivalents, and drops everything that is not a letter or digit. Two names
// that normalize to the same string are treated as the same name.
func Normalize(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	normalized := strings.ToLower(FoldAccents(input))
	normalized = strings.ReplaceAll(normalized, "&", "and")
	normalized = strings.ReplaceAll(normalized, "+", "and")

	var builder strings.Builder
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Words splits input into lowercase accent-folded word tokens. Short words
// are kept: set names lean on them ("Time Spiral: Remastered" vs "Time
// Spiral" differ by one token).
func Words(input string) []string {
	lowered := strings.ToLower(FoldAccents(input))
	words := make([]string, 0, 8)
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return words
}

// Title renders a display-cased version of the input.
func Title(input string) string {
	return titleCaser.String(strings.TrimSpace(input))
}

package dialect

import (
	"strconv"
	"strings"

	"deckport/internal/cards"
)

// conditionAliases maps vendor condition spellings to the canonical grades.
var conditionAliases = map[string]string{
	"m":                     "M",
	"mint":                  "M",
	"nm":                    "NM",
	"near mint":             "NM",
	"near-mint":             "NM",
	"nm-mint":               "NM",
	"nearmint":              "NM",
	"excellent":             "NM",
	"ex":                    "NM",
	"lp":                    "LP",
	"lightly played":        "LP",
	"light played":          "LP",
	"light play":            "LP",
	"sp":                    "LP",
	"slightly played":       "LP",
	"good":                  "LP",
	"good (lightly played)": "LP",
	"mp":                    "MP",
	"moderately played":     "MP",
	"moderate play":         "MP",
	"played":                "MP",
	"pl":                    "MP",
	"vg":                    "MP",
	"hp":                    "HP",
	"heavily played":        "HP",
	"heavy play":            "HP",
	"poor":                  "DMG",
	"damaged":               "DMG",
	"dmg":                   "DMG",
	"d":                     "DMG",
}

// NormalizeCondition canonicalizes a condition grade. Underscore-separated
// spellings fold into their spaced forms; unrecognized values pass through
// trimmed so nothing is silently discarded.
func NormalizeCondition(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	key := strings.ReplaceAll(strings.ToLower(trimmed), "_", " ")
	if grade, ok := conditionAliases[key]; ok {
		return grade
	}
	return trimmed
}

// NormalizeFinish canonicalizes a finish value to "", "foil", or "etched".
// Boolean-style foil columns ("true", "yes", "1", "x") mean foil.
func NormalizeFinish(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "normal", "regular", "non-foil", "nonfoil", "non foil", "false", "no", "0", "none":
		return cards.FinishNonfoil
	case "foil", "true", "yes", "1", "x", "foil*", "premium":
		return cards.FinishFoil
	case "etched", "foil-etched", "etched foil", "foil etched":
		return cards.FinishEtched
	default:
		return cards.FinishNonfoil
	}
}

// ParseCount parses a quantity cell. Blank, unparsable, or non-positive
// values default to 1: every source row represents at least one card.
func ParseCount(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 1
	}
	count, err := strconv.Atoi(trimmed)
	if err != nil || count < 1 {
		return 1
	}
	return count
}

func parseCountOrZero(trimmed string) int {
	count, err := strconv.Atoi(trimmed)
	if err != nil || count < 0 {
		return 0
	}
	return count
}

// NormalizePrice strips currency symbols and keeps a plain decimal string.
func NormalizePrice(value string) string {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimLeft(trimmed, "$€£ ")
	if trimmed == "" || trimmed == "-" {
		return ""
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err != nil {
		return ""
	}
	return strings.ReplaceAll(trimmed, ",", "")
}

// truthy reports whether a cell holds an affirmative marker.
func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "x", "y":
		return true
	default:
		return false
	}
}

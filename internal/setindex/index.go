package setindex

import (
	"strings"

	"deckport/internal/scryfall"
	"deckport/internal/textutil"
)

// Scoring adjustments for the fuzzy pass. The acceptance threshold is the
// caller's to supply; these shape relative ranking only.
const (
	hintBonus      = 0.15
	childPenalty   = 0.05
	digitalPenalty = 0.10
	parityBonus    = 0.05
)

// DefaultMinScore is the fuzzy acceptance threshold used when the caller
// has no tuned value.
const DefaultMinScore = 0.7

// Hints bias fuzzy resolution toward ancillary products.
type Hints struct {
	Token     bool
	ArtSeries bool
}

// Match is a resolved set with the evidence behind it.
type Match struct {
	Set   scryfall.Set
	Score float64
	// Exact is true for code and exact-name hits, which bypass scoring.
	Exact bool
}

type entry struct {
	set   scryfall.Set
	words []string
}

// Index answers set lookups against a snapshot of the Scryfall set list.
type Index struct {
	entries []entry
	byCode  map[string]scryfall.Set
	byName  map[string]scryfall.Set
}

// New builds an index over the given sets.
func New(sets []scryfall.Set) *Index {
	ix := &Index{
		byCode: make(map[string]scryfall.Set, len(sets)),
		byName: make(map[string]scryfall.Set, len(sets)),
	}
	for _, set := range sets {
		ix.entries = append(ix.entries, entry{set: set, words: canonicalWords(set.Name)})
		ix.byCode[strings.ToLower(set.Code)] = set
		normalized := textutil.Normalize(set.Name)
		if _, dup := ix.byName[normalized]; !dup {
			ix.byName[normalized] = set
		}
	}
	return ix
}

// Len reports how many sets the index covers.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// ByCode looks up a set by its exact code.
func (ix *Index) ByCode(code string) (scryfall.Set, bool) {
	set, ok := ix.byCode[strings.ToLower(strings.TrimSpace(code))]
	return set, ok
}

// Resolve maps a vendor-supplied set name to a canonical set. The passes
// run in order: exact code, exact normalized name, then fuzzy word overlap
// scored against minScore. A zero Match and false means no set cleared the
// threshold.
func (ix *Index) Resolve(name string, hints Hints, minScore float64) (Match, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Match{}, false
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	if set, ok := ix.ByCode(trimmed); ok {
		return Match{Set: set, Score: 1, Exact: true}, true
	}
	if set, ok := ix.byName[textutil.Normalize(trimmed)]; ok {
		return Match{Set: set, Score: 1, Exact: true}, true
	}

	query := canonicalWords(trimmed)
	if len(query) == 0 {
		return Match{}, false
	}

	best := Match{}
	for _, e := range ix.entries {
		score := scoreWords(query, e.words)
		if score <= 0 {
			continue
		}
		score += ix.bias(e.set, hints)
		if score > best.Score {
			best = Match{Set: e.set, Score: score}
		}
	}
	if best.Score < minScore {
		return best, false
	}
	return best, true
}

// bias nudges scores by product type so "Eldraine tokens" lands on the
// token set and plain names land on the main expansion rather than a
// promo or digital child.
func (ix *Index) bias(set scryfall.Set, hints Hints) float64 {
	bias := 0.0
	isToken := set.SetType == "token"
	isArt := strings.Contains(strings.ToLower(set.Name), "art series")

	switch {
	case hints.ArtSeries && isArt:
		bias += hintBonus
	case hints.Token && isToken:
		bias += hintBonus
	case !hints.Token && isToken, !hints.ArtSeries && isArt:
		bias -= hintBonus
	}
	if set.ParentSetCode != "" && !hints.Token && !hints.ArtSeries {
		bias -= childPenalty
	}
	if set.Digital {
		bias -= digitalPenalty
	}
	return bias
}

// scoreWords computes word-overlap similarity between two tokenized names.
// Numbered editions guard each other: differing numeric words disqualify a
// pair outright so "Seventh Edition" never drifts to "Eighth Edition".
func scoreWords(query, candidate []string) float64 {
	if len(query) == 0 || len(candidate) == 0 {
		return 0
	}
	if numericMismatch(query, candidate) {
		return 0
	}

	counts := make(map[string]int, len(candidate))
	for _, w := range candidate {
		counts[w]++
	}
	matched := 0
	for _, w := range query {
		if counts[w] > 0 {
			counts[w]--
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	score := 2 * float64(matched) / float64(len(query)+len(candidate))
	if len(query) == len(candidate) {
		score += parityBonus
	}
	return score
}

func numericMismatch(a, b []string) bool {
	numsA, numsB := numericWords(a), numericWords(b)
	if len(numsA) == 0 || len(numsB) == 0 {
		return false
	}
	if len(numsA) != len(numsB) {
		return true
	}
	for i := range numsA {
		if numsA[i] != numsB[i] {
			return true
		}
	}
	return false
}

func numericWords(words []string) []string {
	var nums []string
	for _, w := range words {
		if strings.IndexFunc(w, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			nums = append(nums, w)
		}
	}
	return nums
}

// ordinalWords maps spelled-out edition ordinals to the digit forms
// Scryfall uses, so "Seventh Edition" and "7th Edition" tokenize alike.
var ordinalWords = map[string]string{
	"first": "1st", "second": "2nd", "third": "3rd", "fourth": "4th",
	"fifth": "5th", "sixth": "6th", "seventh": "7th", "eighth": "8th",
	"ninth": "9th", "tenth": "10th",
}

func canonicalWords(name string) []string {
	words := textutil.Words(name)
	for i, w := range words {
		if canonical, ok := ordinalWords[w]; ok {
			words[i] = canonical
		}
	}
	return words
}

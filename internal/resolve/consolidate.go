package resolve

import (
	"sort"
	"strings"

	"deckport/internal/cards"
)

type groupKey struct {
	failed     bool
	reason     string
	cardID     string
	name       string
	set        string
	collector  string
	finish     string
	condition  string
	lang       string
	price      string
	method     cards.Method
	confidence cards.Confidence
	warnings   string
}

// Consolidate merges outcomes that would export identically except for
// their counts, sums the counts, and orders the result for review:
// failures first, then successes with warnings, then clean rows, each
// sorted by name.
func Consolidate(outcomes []Outcome) []Outcome {
	merged := make([]Outcome, 0, len(outcomes))
	index := make(map[groupKey]int, len(outcomes))

	for i := range outcomes {
		key := keyFor(&outcomes[i])
		if at, ok := index[key]; ok {
			merged[at].Record.Count += outcomes[i].Record.Count
			if outcomes[i].Record.SourceRow < merged[at].Record.SourceRow {
				merged[at].Record.SourceRow = outcomes[i].Record.SourceRow
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, outcomes[i])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ci, cj := orderClass(&merged[i]), orderClass(&merged[j])
		if ci != cj {
			return ci < cj
		}
		ni, nj := displayName(&merged[i]), displayName(&merged[j])
		if ni != nj {
			return ni < nj
		}
		si, sj := displaySet(&merged[i]), displaySet(&merged[j])
		if si != sj {
			return si < sj
		}
		return merged[i].Record.SourceRow < merged[j].Record.SourceRow
	})
	return merged
}

func keyFor(o *Outcome) groupKey {
	key := groupKey{
		failed:     o.Failed(),
		reason:     o.FailureReason,
		name:       o.Record.Name,
		set:        o.Record.Set,
		collector:  o.Record.CollectorNumber,
		finish:     o.Record.Finish,
		condition:  o.Record.Condition,
		lang:       o.Record.Language,
		price:      o.Record.PurchasePrice,
		method:     o.Method,
		confidence: o.Confidence,
		warnings:   strings.Join(o.Record.Warnings, "\n"),
	}
	if o.Card != nil {
		key.cardID = o.Card.ID
		key.name = o.Card.Name
		key.set = o.Card.Set
		key.collector = o.Card.CollectorNumber
		key.lang = o.Card.Lang
	}
	return key
}

func orderClass(o *Outcome) int {
	switch {
	case o.Failed():
		return 0
	case o.Warned():
		return 1
	default:
		return 2
	}
}

func displayName(o *Outcome) string {
	if o.Card != nil {
		return strings.ToLower(o.Card.Name)
	}
	return strings.ToLower(o.Record.Name)
}

func displaySet(o *Outcome) string {
	if o.Card != nil {
		return o.Card.Set
	}
	return o.Record.Set
}

package resolve

import (
	"testing"

	"deckport/internal/cards"
	"deckport/internal/scryfall"
)

func successOutcome(row, count int, card scryfall.Card, warnings ...string) Outcome {
	rec := cards.ParsedRecord{SourceRow: row, Count: count, Name: card.Name}
	for _, w := range warnings {
		rec.AddWarning(w)
	}
	return Outcome{
		Record:     rec,
		Card:       &card,
		Method:     cards.MethodSetCollector,
		Confidence: cards.ConfidenceHigh,
	}
}

func failedOutcome(row, count int, name, reason string) Outcome {
	return Outcome{
		Record:        cards.ParsedRecord{SourceRow: row, Count: count, Name: name},
		Method:        cards.MethodFailed,
		Confidence:    cards.ConfidenceLow,
		FailureReason: reason,
	}
}

func TestConsolidateMergesIdenticalRows(t *testing.T) {
	bolt := boltCard()
	outcomes := []Outcome{
		successOutcome(2, 1, bolt),
		successOutcome(5, 3, bolt),
	}

	merged := Consolidate(outcomes)
	if len(merged) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(merged))
	}
	if merged[0].Record.Count != 4 {
		t.Fatalf("count = %d, want summed 4", merged[0].Record.Count)
	}
	if merged[0].Record.SourceRow != 2 {
		t.Fatalf("source row = %d, want earliest", merged[0].Record.SourceRow)
	}
}

func TestConsolidateKeepsDistinctFinishesApart(t *testing.T) {
	bolt := boltCard()
	foil := successOutcome(3, 1, bolt)
	foil.Record.Finish = cards.FinishFoil

	merged := Consolidate([]Outcome{successOutcome(2, 1, bolt), foil})
	if len(merged) != 2 {
		t.Fatalf("got %d outcomes, want finishes kept apart", len(merged))
	}
}

func TestConsolidateOrdersFailuresFirst(t *testing.T) {
	bolt := boltCard()
	counterspell := boltCard()
	counterspell.ID = "different"
	counterspell.Name = "Counterspell"

	outcomes := []Outcome{
		successOutcome(2, 1, bolt),
		successOutcome(3, 1, counterspell, "found via collector number search"),
		failedOutcome(4, 1, "Zquiggle", "no card named \"Zquiggle\""),
	}

	merged := Consolidate(outcomes)
	if len(merged) != 3 {
		t.Fatalf("got %d outcomes", len(merged))
	}
	if !merged[0].Failed() {
		t.Fatalf("first outcome should be the failure, got %+v", merged[0])
	}
	if !merged[1].Warned() {
		t.Fatalf("second outcome should be the warned success, got %+v", merged[1])
	}
	if merged[2].Warned() || merged[2].Failed() {
		t.Fatalf("third outcome should be clean, got %+v", merged[2])
	}
}

func TestConsolidateSortsByNameWithinClass(t *testing.T) {
	a := boltCard()
	a.ID = "a"
	a.Name = "Augur of Bolas"
	z := boltCard()
	z.ID = "z"
	z.Name = "Zealous Conscripts"

	merged := Consolidate([]Outcome{successOutcome(2, 1, z), successOutcome(3, 1, a)})
	if merged[0].Card.Name != "Augur of Bolas" || merged[1].Card.Name != "Zealous Conscripts" {
		t.Fatalf("order = %q, %q", merged[0].Card.Name, merged[1].Card.Name)
	}
}

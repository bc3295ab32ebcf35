package resolve

import (
	"deckport/internal/cards"
	"deckport/internal/scryfall"
)

// Outcome is the terminal state of one parsed record: either a matched
// printing or a failure reason, plus the method and confidence behind it.
type Outcome struct {
	Record     cards.ParsedRecord
	Card       *scryfall.Card
	Method     cards.Method
	Confidence cards.Confidence

	// FailureReason is empty on success.
	FailureReason string
}

// Failed reports whether the record could not be resolved.
func (o *Outcome) Failed() bool {
	return o.FailureReason != ""
}

// Warned reports whether a successful outcome carries warnings.
func (o *Outcome) Warned() bool {
	return !o.Failed() && len(o.Record.Warnings) > 0
}

func (o *Outcome) fail(reason string) {
	o.Card = nil
	o.Method = cards.MethodFailed
	o.Confidence = cards.ConfidenceLow
	o.FailureReason = reason
}

func (o *Outcome) succeed(card *scryfall.Card, method cards.Method) {
	o.Card = card
	o.Method = method
	o.Confidence = o.Confidence.Min(ConfidenceFor(method))
	o.FailureReason = ""
}

package resolve

import (
	"context"
	"fmt"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/language"
	"deckport/internal/logging"
	"deckport/internal/scryfall"
	"deckport/internal/textutil"
)

// validate checks the matched printing against what the row claimed.
// Disagreement on name, set, or collector number means the lookup keyed on
// something stale, so the match is treated as not found. Finish and
// language issues are recoverable.
//
// Name-only matches skip validation entirely: there is nothing on the row
// to validate against.
func (r *Resolver) validate(ctx context.Context, o *Outcome) {
	if o.Method == cards.MethodNameOnly {
		return
	}
	rec := &o.Record
	card := o.Card

	if strings.TrimSpace(rec.Name) != "" && !sameCardName(rec.Name, card) {
		o.fail(fmt.Sprintf("matched %q, which does not agree with row name %q", card.Name, rec.Name))
		return
	}

	switch o.Method {
	case cards.MethodDirectID, cards.MethodNumericID:
		if rec.HasSet() && !strings.EqualFold(rec.Set, card.Set) {
			o.fail(fmt.Sprintf("id points at %s #%s, which does not agree with row set %s",
				strings.ToUpper(card.Set), card.CollectorNumber, strings.ToUpper(rec.Set)))
			return
		}
	case cards.MethodNameSet, cards.MethodNameSetCorrected:
		if rec.CollectorNumber != "" && !strings.EqualFold(rec.CollectorNumber, card.CollectorNumber) {
			o.fail(fmt.Sprintf("matched collector number %s, which does not agree with row number %s",
				card.CollectorNumber, rec.CollectorNumber))
			return
		}
	}

	if !r.validateFinish(o) {
		return
	}
	r.validateLanguage(ctx, o)
}

// validateFinish confirms the printing exists in the requested finish. An
// etched finish that came from a free-form tag degrades gracefully; a
// structured finish column that disagrees is a hard error.
func (r *Resolver) validateFinish(o *Outcome) bool {
	rec := &o.Record
	card := o.Card
	if card.HasFinish(rec.Finish) {
		return true
	}

	if rec.Finish == cards.FinishEtched && rec.EtchedFromNotes {
		fallback := cards.FinishNonfoil
		if card.HasFinish(cards.FinishFoil) {
			fallback = cards.FinishFoil
		}
		rec.AddWarning(fmt.Sprintf("printing has no etched finish; recorded as %s", finishLabel(fallback)))
		rec.Finish = fallback
		return true
	}

	o.fail(fmt.Sprintf("%s #%s has no %s printing", strings.ToUpper(card.Set), card.CollectorNumber, finishLabel(rec.Finish)))
	return false
}

// validateLanguage compares the requested printed language and refetches
// the same collector number in that language on mismatch. A failed refetch
// or a request for a language nothing is printed in keeps the matched
// printing one tier lower.
func (r *Resolver) validateLanguage(ctx context.Context, o *Outcome) {
	if r.opts.SkipLanguageCheck {
		return
	}
	rec := &o.Record
	requested := strings.TrimSpace(rec.Language)
	if requested == "" {
		return
	}

	code := language.Normalize(requested)
	if code == "" {
		rec.AddWarning(fmt.Sprintf("unrecognized language %q; kept the %s printing",
			requested, language.DisplayName(o.Card.Lang)))
		o.Confidence = o.Confidence.Lower()
		rec.LowerConfidence()
		return
	}
	if language.Same(code, o.Card.Lang) {
		return
	}

	refetched, err := r.client.CardByCollectorNumber(ctx, o.Card.Set, o.Card.CollectorNumber, code)
	if err == nil && refetched != nil {
		o.Card = refetched
		return
	}
	if ctx.Err() != nil {
		return
	}
	if err != nil && !scryfall.IsNotFound(err) {
		r.logger.Debug("language refetch failed",
			logging.Int(logging.FieldRow, rec.SourceRow),
			logging.String("lang", code),
			logging.Error(err))
	}
	rec.AddWarning(fmt.Sprintf("not printed in %s; matched the %s printing",
		language.DisplayName(code), language.DisplayName(o.Card.Lang)))
	o.Confidence = o.Confidence.Lower()
	rec.LowerConfidence()
}

// sameCardName compares accent-folded names, accepting the front face of a
// multi-face printing.
func sameCardName(rowName string, card *scryfall.Card) bool {
	want := textutil.Normalize(rowName)
	if want == "" {
		return true
	}
	candidates := []string{card.Name, card.PrintedName}
	if strings.Contains(card.Name, " // ") {
		candidates = append(candidates, strings.SplitN(card.Name, " // ", 2)[0])
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if textutil.Normalize(candidate) == want {
			return true
		}
	}
	return false
}

func finishLabel(finish string) string {
	if finish == cards.FinishNonfoil {
		return "nonfoil"
	}
	return finish
}

// Package export renders resolved outcomes as the destination CSV. The
// column set is fixed: stable headers keep the output ingestible by the
// inventory tools that accept generic CSV imports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"deckport/internal/resolve"
)

// Headers is the destination column layout, in order.
var Headers = []string{
	"Row",
	"Count",
	"Name",
	"Set Code",
	"Set Name",
	"Collector Number",
	"Language",
	"Finish",
	"Condition",
	"Scryfall ID",
	"Purchase Price",
	"Confidence",
	"Method",
	"Source Row",
	"Status",
	"Warnings",
}

// Write serializes consolidated outcomes to w. Outcomes are written in the
// order given; the Row column numbers them from 1.
func Write(w io.Writer, outcomes []resolve.Outcome) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range outcomes {
		if err := writer.Write(row(i+1, &outcomes[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func row(number int, o *resolve.Outcome) []string {
	rec := &o.Record

	name := rec.Name
	setCode := rec.Set
	setName := rec.SetName
	collector := rec.CollectorNumber
	lang := rec.Language
	scryfallID := rec.ScryfallID
	if o.Card != nil {
		name = o.Card.Name
		setCode = o.Card.Set
		setName = o.Card.SetName
		collector = o.Card.CollectorNumber
		lang = o.Card.Lang
		scryfallID = o.Card.ID
	}

	status := "ok"
	if o.Failed() {
		status = "failed: " + o.FailureReason
	}

	return []string{
		itoa(number),
		itoa(rec.Count),
		name,
		strings.ToUpper(setCode),
		setName,
		collector,
		lang,
		finishLabel(rec.Finish),
		rec.Condition,
		scryfallID,
		rec.PurchasePrice,
		o.Confidence.String(),
		string(o.Method),
		itoa(rec.SourceRow),
		status,
		strings.Join(rec.Warnings, "; "),
	}
}

func finishLabel(finish string) string {
	if finish == "" {
		return "nonfoil"
	}
	return finish
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

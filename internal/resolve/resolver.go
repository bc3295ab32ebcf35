package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/logging"
	"deckport/internal/scryfall"
	"deckport/internal/setindex"
)

// Options tunes the lookup pipeline.
type Options struct {
	// BatchSize caps identifiers per collection request. Values outside
	// [1, scryfall.MaxCollectionIdentifiers] are clamped.
	BatchSize int
	// MinSetScore is the fuzzy set resolution acceptance threshold.
	MinSetScore float64
	// SkipLanguageCheck disables printed-language validation and its
	// corrective refetches.
	SkipLanguageCheck bool
}

// Progress reports completed terminal records out of the total.
type Progress func(completed, total int)

// Resolver drives records through set resolution, lookup, and validation.
type Resolver struct {
	client scryfall.Searcher
	sets   *setindex.Index
	logger *slog.Logger
	opts   Options
}

// New builds a Resolver. sets may be nil, in which case set names pass
// through unresolved and codes go unverified.
func New(client scryfall.Searcher, sets *setindex.Index, logger *slog.Logger, opts Options) *Resolver {
	if opts.BatchSize < 1 || opts.BatchSize > scryfall.MaxCollectionIdentifiers {
		opts.BatchSize = scryfall.MaxCollectionIdentifiers
	}
	if opts.MinSetScore <= 0 {
		opts.MinSetScore = setindex.DefaultMinScore
	}
	return &Resolver{
		client: client,
		sets:   sets,
		logger: logging.NewComponentLogger(logger, "resolver"),
		opts:   opts,
	}
}

// Resolve runs the full pipeline over records. Per-record and per-batch
// failures become failed outcomes; the only error returned is context
// cancellation.
func (r *Resolver) Resolve(ctx context.Context, records []cards.ParsedRecord, progress Progress) ([]Outcome, error) {
	outcomes := make([]Outcome, len(records))
	plans := make([]plan, len(records))
	report := func() {
		if progress != nil {
			progress(r.terminalCount(outcomes), len(outcomes))
		}
	}

	for i := range records {
		outcomes[i].Record = records[i]
		rec := &outcomes[i].Record
		r.resolveSet(rec)

		plans[i] = planFor(rec)
		outcomes[i].Method = plans[i].method
		outcomes[i].Confidence = ConfidenceFor(plans[i].method)
		if plans[i].route == routeNone {
			outcomes[i].fail("row has no name, identifier, or set and collector number to look up")
		}
	}
	report()

	for i := range outcomes {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		switch plans[i].route {
		case routeCollectorSearch:
			r.collectorSearch(ctx, &outcomes[i], &plans[i])
		case routePromoSearch:
			r.promoSearch(ctx, &outcomes[i], &plans[i])
		}
		report()
	}

	if err := r.collectionPass(ctx, outcomes, plans, report); err != nil {
		return outcomes, err
	}

	for i := range outcomes {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		if !outcomes[i].Failed() && outcomes[i].Card != nil {
			r.validate(ctx, &outcomes[i])
		}
	}
	report()

	return outcomes, nil
}

func (r *Resolver) terminalCount(outcomes []Outcome) int {
	n := 0
	for i := range outcomes {
		if outcomes[i].Failed() || outcomes[i].Card != nil {
			n++
		}
	}
	return n
}

// resolveSet verifies a record's set code against the catalog, or resolves
// its vendor set name into a code. Missing sets never reject the record.
func (r *Resolver) resolveSet(rec *cards.ParsedRecord) {
	if r.sets == nil {
		return
	}
	hints := setindex.Hints{Token: rec.TokenHint, ArtSeries: rec.ArtSeriesHint}

	if rec.HasSet() {
		if _, ok := r.sets.ByCode(rec.Set); ok {
			return
		}
		if rec.SetName != "" {
			if match, ok := r.sets.Resolve(rec.SetName, hints, r.opts.MinSetScore); ok {
				r.applySetMatch(rec, match)
				return
			}
		}
		rec.AddWarning(fmt.Sprintf("set code %q is not in the set catalog", rec.Set))
		return
	}

	if rec.SetName == "" {
		return
	}
	match, ok := r.sets.Resolve(rec.SetName, hints, r.opts.MinSetScore)
	if !ok {
		rec.AddWarning(fmt.Sprintf("set name %q did not match any set; continuing without one", rec.SetName))
		return
	}
	r.applySetMatch(rec, match)
}

func (r *Resolver) applySetMatch(rec *cards.ParsedRecord, match setindex.Match) {
	rec.Set = match.Set.Code
	if !match.Exact {
		rec.SetCorrected = true
		rec.AddWarning(fmt.Sprintf("set name %q resolved to %s (%s)", rec.SetName, match.Set.Name, match.Set.Code))
		r.logger.Debug("fuzzy set resolution",
			logging.Int(logging.FieldRow, rec.SourceRow),
			logging.String("set_name", rec.SetName),
			logging.String("resolved", match.Set.Code),
			logging.Float64("score", match.Score))
	}
}

// collectorSearch resolves a name+collector row with no set through one
// search call. A unique hit is a match; anything else demotes the row to a
// name lookup.
func (r *Resolver) collectorSearch(ctx context.Context, o *Outcome, p *plan) {
	rec := &o.Record
	query := fmt.Sprintf("!%q cn:%q", strings.TrimSpace(rec.Name), rec.CollectorNumber)

	result, err := r.client.Search(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.fail(fmt.Sprintf("collector number search failed: %v", err))
		p.route = routeNone
		return
	}
	if len(result.Data) == 1 && !result.HasMore {
		card := result.Data[0]
		rec.AddWarning(fmt.Sprintf("found via collector number search in %s", strings.ToUpper(card.Set)))
		o.succeed(&card, cards.MethodNameCollectorSearch)
		p.route = routeNone
		return
	}

	if len(result.Data) == 0 {
		rec.AddWarning("collector number search found nothing; falling back to name")
	} else {
		rec.AddWarning("collector number search was ambiguous; falling back to name")
	}
	*p = nameOnlyPlan(rec)
	o.Method = p.method
	o.Confidence = ConfidenceFor(p.method)
	if p.route == routeNone {
		o.fail("row has no name to fall back to")
	}
}

// promoSearch resolves judge, prerelease, and promo-pack prints, which the
// collection endpoint cannot target.
func (r *Resolver) promoSearch(ctx context.Context, o *Outcome, p *plan) {
	rec := &o.Record
	filter := promoFilter(rec.PromoType)
	if filter == "" {
		*p = nameOnlyPlan(rec)
		o.Method = p.method
		o.Confidence = ConfidenceFor(p.method)
		return
	}

	query := fmt.Sprintf("!%q %s", strings.TrimSpace(rec.Name), filter)
	result, err := r.client.Search(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.fail(fmt.Sprintf("promo search failed: %v", err))
		p.route = routeNone
		return
	}

	if card := pickPromoPrinting(result.Data, rec); card != nil {
		o.succeed(card, p.method)
		p.route = routeNone
		return
	}

	rec.AddWarning(fmt.Sprintf("no %s printing found; using the regular printing", rec.PromoType))
	*p = nameOnlyPlan(rec)
	o.Method = p.method
	o.Confidence = ConfidenceFor(p.method).Lower()
}

// pickPromoPrinting prefers a hit carrying the requested promo tag in the
// record's set or one of its children, then any hit with the tag.
func pickPromoPrinting(hits []scryfall.Card, rec *cards.ParsedRecord) *scryfall.Card {
	tag := promoTypeTag(rec.PromoType)
	var tagged *scryfall.Card
	for i := range hits {
		card := &hits[i]
		if !card.HasPromoType(tag) {
			continue
		}
		if rec.HasSet() && strings.Contains(card.Set, strings.ToLower(rec.Set)) {
			return card
		}
		if tagged == nil {
			tagged = card
		}
	}
	if tagged != nil {
		return tagged
	}
	if !rec.HasSet() && len(hits) == 1 {
		return &hits[0]
	}
	return nil
}

type pendingLookup struct {
	key        string
	identifier scryfall.Identifier
	indices    []int
}

// collectionPass batches every remaining record through /cards/collection.
// Identical identifiers collapse into one request entry; a failed batch
// fails only its own records.
func (r *Resolver) collectionPass(ctx context.Context, outcomes []Outcome, plans []plan, report func()) error {
	var order []*pendingLookup
	byKey := make(map[string]*pendingLookup)
	for i := range outcomes {
		if plans[i].route != routeCollection || outcomes[i].Failed() || outcomes[i].Card != nil {
			continue
		}
		key := plans[i].identifier.Key()
		pending, ok := byKey[key]
		if !ok {
			pending = &pendingLookup{key: key, identifier: plans[i].identifier}
			byKey[key] = pending
			order = append(order, pending)
		}
		pending.indices = append(pending.indices, i)
	}

	for start := 0; start < len(order); start += r.opts.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + r.opts.BatchSize
		if end > len(order) {
			end = len(order)
		}
		chunk := order[start:end]

		identifiers := make([]scryfall.Identifier, len(chunk))
		for i, pending := range chunk {
			identifiers[i] = pending.identifier
		}

		result, err := r.client.Collection(ctx, identifiers)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("batch lookup failed",
				logging.Int("identifiers", len(identifiers)),
				logging.Error(err))
			for _, pending := range chunk {
				for _, idx := range pending.indices {
					outcomes[idx].fail(fmt.Sprintf("batch lookup failed: %v", err))
				}
			}
			report()
			continue
		}

		notFound := make(map[string]struct{}, len(result.NotFound))
		for _, ident := range result.NotFound {
			notFound[ident.Key()] = struct{}{}
		}

		// Found cards come back in request order with misses omitted.
		dataIdx := 0
		for _, pending := range chunk {
			if _, miss := notFound[pending.key]; miss || dataIdx >= len(result.Data) {
				for _, idx := range pending.indices {
					outcomes[idx].fail(missReason(plans[idx].method, &outcomes[idx].Record))
				}
				continue
			}
			card := result.Data[dataIdx]
			dataIdx++
			for _, idx := range pending.indices {
				copied := card
				outcomes[idx].succeed(&copied, plans[idx].method)
			}
		}
		report()
	}
	return nil
}

func missReason(method cards.Method, rec *cards.ParsedRecord) string {
	switch method {
	case cards.MethodDirectID:
		return fmt.Sprintf("Scryfall id %s not found", rec.ScryfallID)
	case cards.MethodNumericID:
		return fmt.Sprintf("multiverse id %s not found", rec.MultiverseID)
	case cards.MethodSetCollector, cards.MethodSetCollectorCorrected:
		return fmt.Sprintf("no card at collector number %s in set %s", rec.CollectorNumber, strings.ToUpper(rec.Set))
	case cards.MethodNameSet, cards.MethodNameSetCorrected:
		return fmt.Sprintf("no card named %q in set %s", rec.Name, strings.ToUpper(rec.Set))
	default:
		return fmt.Sprintf("no card named %q", rec.Name)
	}
}

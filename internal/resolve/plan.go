package resolve

import (
	"strconv"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/scryfall"
)

// confidenceFor is the ceiling each identification method grants. Later
// stages only ever lower it.
var confidenceFor = map[cards.Method]cards.Confidence{
	cards.MethodDirectID:              cards.ConfidenceVeryHigh,
	cards.MethodNumericID:             cards.ConfidenceHigh,
	cards.MethodSetCollector:          cards.ConfidenceHigh,
	cards.MethodSetCollectorCorrected: cards.ConfidenceMedium,
	cards.MethodNameSet:               cards.ConfidenceMedium,
	cards.MethodNameSetCorrected:      cards.ConfidenceMedium,
	cards.MethodNameCollectorSearch:   cards.ConfidenceMedium,
	cards.MethodFuzzySet:              cards.ConfidenceMedium,
	cards.MethodNameOnly:              cards.ConfidenceLow,
	cards.MethodFailed:                cards.ConfidenceLow,
}

// ConfidenceFor returns the ceiling tier for a method.
func ConfidenceFor(method cards.Method) cards.Confidence {
	if tier, ok := confidenceFor[method]; ok {
		return tier
	}
	return cards.ConfidenceLow
}

type route int

const (
	routeNone route = iota
	// routeCollection records resolve through the batched endpoint.
	routeCollection
	// routeCollectorSearch is for name+collector rows with no set: one
	// search call each.
	routeCollectorSearch
	// routePromoSearch is for judge/prerelease/promo-pack prints, which
	// the batch endpoint cannot express.
	routePromoSearch
)

type plan struct {
	route      route
	method     cards.Method
	identifier scryfall.Identifier
}

// planFor picks the best identifier a record carries. Precedence: canonical
// id, numeric id, set+collector, name+set, name alone.
func planFor(rec *cards.ParsedRecord) plan {
	name := strings.TrimSpace(rec.Name)

	if rec.ScryfallID != "" {
		return plan{
			route:      routeCollection,
			method:     cards.MethodDirectID,
			identifier: scryfall.Identifier{ID: rec.ScryfallID},
		}
	}
	if rec.MultiverseID != "" {
		if mvid, err := strconv.ParseInt(rec.MultiverseID, 10, 64); err == nil && mvid > 0 {
			return plan{
				route:      routeCollection,
				method:     cards.MethodNumericID,
				identifier: scryfall.Identifier{MultiverseID: mvid},
			}
		}
	}
	if rec.PromoType != "" && name != "" {
		return plan{route: routePromoSearch, method: promoMethod(rec)}
	}
	if rec.HasSet() && rec.CollectorNumber != "" {
		method := cards.MethodSetCollector
		if rec.SetCorrected {
			method = cards.MethodSetCollectorCorrected
		}
		return plan{
			route:      routeCollection,
			method:     method,
			identifier: scryfall.Identifier{Set: rec.Set, CollectorNumber: rec.CollectorNumber},
		}
	}
	if name != "" && rec.HasSet() {
		method := cards.MethodNameSet
		if rec.SetCorrected {
			method = cards.MethodNameSetCorrected
		}
		return plan{
			route:      routeCollection,
			method:     method,
			identifier: scryfall.Identifier{Name: name, Set: rec.Set},
		}
	}
	if name != "" && rec.CollectorNumber != "" {
		return plan{route: routeCollectorSearch, method: cards.MethodNameCollectorSearch}
	}
	if name != "" {
		return plan{
			route:      routeCollection,
			method:     cards.MethodNameOnly,
			identifier: scryfall.Identifier{Name: name},
		}
	}
	return plan{route: routeNone, method: cards.MethodFailed}
}

// nameOnlyPlan is the demotion target when a search strategy finds nothing
// distinctive.
func nameOnlyPlan(rec *cards.ParsedRecord) plan {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return plan{route: routeNone, method: cards.MethodFailed}
	}
	if rec.HasSet() {
		method := cards.MethodNameSet
		if rec.SetCorrected {
			method = cards.MethodNameSetCorrected
		}
		return plan{
			route:      routeCollection,
			method:     method,
			identifier: scryfall.Identifier{Name: name, Set: rec.Set},
		}
	}
	return plan{
		route:      routeCollection,
		method:     cards.MethodNameOnly,
		identifier: scryfall.Identifier{Name: name},
	}
}

func promoMethod(rec *cards.ParsedRecord) cards.Method {
	if rec.HasSet() {
		if rec.SetCorrected {
			return cards.MethodNameSetCorrected
		}
		return cards.MethodNameSet
	}
	return cards.MethodNameOnly
}

// promoFilter maps a parsed promo subtype to the search filter that isolates
// it.
func promoFilter(promoType string) string {
	switch promoType {
	case cards.PromoPrerelease:
		return "is:prerelease"
	case cards.PromoPack:
		return "is:promopack"
	case cards.PromoJudge:
		return "is:judgegift"
	default:
		return ""
	}
}

// promoTypeTag is the promo_types value Scryfall attaches to matching
// printings.
func promoTypeTag(promoType string) string {
	switch promoType {
	case cards.PromoPrerelease:
		return "prerelease"
	case cards.PromoPack:
		return "promopack"
	case cards.PromoJudge:
		return "judgegift"
	default:
		return ""
	}
}

package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"deckport/internal/scryfall"
)

// ScryfallServer is an in-process stand-in for the Scryfall API backed by
// fixture data. It answers the endpoints the lookup pipeline uses: the set
// catalog, batched collection lookups, search, and single-printing fetches.
type ScryfallServer struct {
	Server *httptest.Server

	cards    []scryfall.Card
	sets     []scryfall.Set
	requests atomic.Int64
}

// NewScryfallServer starts a fixture-backed API server and registers cleanup.
func NewScryfallServer(t testing.TB, cards []scryfall.Card, sets []scryfall.Set) *ScryfallServer {
	t.Helper()

	s := &ScryfallServer{cards: cards, sets: sets}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Server.Close)
	return s
}

// URL returns the base URL to hand to the client or config.
func (s *ScryfallServer) URL() string {
	return s.Server.URL
}

// Requests reports how many API calls the server has answered.
func (s *ScryfallServer) Requests() int {
	return int(s.requests.Load())
}

func (s *ScryfallServer) handle(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	switch {
	case r.URL.Path == "/sets":
		writeJSON(w, map[string]any{"data": s.sets, "has_more": false})
	case r.URL.Path == "/cards/collection" && r.Method == http.MethodPost:
		s.handleCollection(w, r)
	case r.URL.Path == "/cards/search":
		s.handleSearch(w, r)
	case strings.HasPrefix(r.URL.Path, "/cards/"):
		s.handleCard(w, r)
	default:
		writeNotFound(w)
	}
}

func (s *ScryfallServer) handleCollection(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Identifiers []scryfall.Identifier `json:"identifiers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"status": 400, "code": "bad_request", "details": err.Error()})
		return
	}

	result := scryfall.CollectionResult{Data: []scryfall.Card{}, NotFound: []scryfall.Identifier{}}
	for _, ident := range payload.Identifiers {
		if card, ok := s.match(ident); ok {
			result.Data = append(result.Data, card)
		} else {
			result.NotFound = append(result.NotFound, ident)
		}
	}
	writeJSON(w, result)
}

func (s *ScryfallServer) match(ident scryfall.Identifier) (scryfall.Card, bool) {
	for _, card := range s.cards {
		switch {
		case ident.ID != "":
			if strings.EqualFold(card.ID, ident.ID) {
				return card, true
			}
		case ident.MultiverseID > 0:
			for _, mv := range card.MultiverseIDs {
				if mv == ident.MultiverseID {
					return card, true
				}
			}
		case ident.Set != "" && ident.CollectorNumber != "" && ident.Name == "":
			if strings.EqualFold(card.Set, ident.Set) && strings.EqualFold(card.CollectorNumber, ident.CollectorNumber) {
				return card, true
			}
		case ident.Name != "" && ident.Set != "":
			if strings.EqualFold(card.Name, ident.Name) && strings.EqualFold(card.Set, ident.Set) {
				return card, true
			}
		case ident.Name != "":
			if strings.EqualFold(card.Name, ident.Name) {
				return card, true
			}
		}
	}
	return scryfall.Card{}, false
}

// handleSearch understands the narrow query shapes the pipeline issues:
// an exact-name term, an optional collector number term, and optional
// promo filters.
func (s *ScryfallServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	name, terms := splitQuery(r.URL.Query().Get("q"))

	var hits []scryfall.Card
	for _, card := range s.cards {
		if name != "" && !strings.EqualFold(card.Name, name) {
			continue
		}
		if cn, ok := terms["cn"]; ok && !strings.EqualFold(card.CollectorNumber, cn) {
			continue
		}
		if promo, ok := terms["is"]; ok && !card.HasPromoType(promo) {
			continue
		}
		hits = append(hits, card)
	}
	if len(hits) == 0 {
		writeNotFound(w)
		return
	}
	writeJSON(w, scryfall.SearchResult{Data: hits, TotalCards: len(hits)})
}

// splitQuery pulls the exact-name term out of a search query and returns the
// remaining key:value terms.
func splitQuery(query string) (string, map[string]string) {
	name := ""
	terms := map[string]string{}
	rest := strings.TrimSpace(query)
	if strings.HasPrefix(rest, `!"`) {
		if end := strings.Index(rest[2:], `"`); end >= 0 {
			name = rest[2 : 2+end]
			rest = rest[3+end:]
		}
	}
	for _, token := range strings.Fields(rest) {
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		terms[key] = strings.Trim(value, `"`)
	}
	return name, terms
}

func (s *ScryfallServer) handleCard(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 3 {
		writeNotFound(w)
		return
	}
	set, cn := parts[1], parts[2]
	lang := ""
	if len(parts) > 3 {
		lang = parts[3]
	}
	for _, card := range s.cards {
		if !strings.EqualFold(card.Set, set) || !strings.EqualFold(card.CollectorNumber, cn) {
			continue
		}
		if lang != "" && !strings.EqualFold(card.Lang, lang) {
			continue
		}
		writeJSON(w, card)
		return
	}
	writeNotFound(w)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	writeJSON(w, map[string]any{
		"status": 404, "code": "not_found", "details": "no results matched the query",
	})
}

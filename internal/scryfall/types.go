package scryfall

import "strings"

// MaxCollectionIdentifiers is the upstream cap on identifiers per
// /cards/collection request. Larger inputs must be split into batches.
const MaxCollectionIdentifiers = 75

// Card is Scryfall's view of one printing. Read-only once fetched.
type Card struct {
	ID              string   `json:"id"`
	OracleID        string   `json:"oracle_id"`
	Name            string   `json:"name"`
	PrintedName     string   `json:"printed_name"`
	Lang            string   `json:"lang"`
	Set             string   `json:"set"`
	SetName         string   `json:"set_name"`
	CollectorNumber string   `json:"collector_number"`
	Finishes        []string `json:"finishes"`
	PromoTypes      []string `json:"promo_types"`
	Layout          string   `json:"layout"`
	MultiverseIDs   []int64  `json:"multiverse_ids"`
	Prices          Prices   `json:"prices"`
}

// Prices carries the vendor price snapshot attached to a printing.
type Prices struct {
	USD       string `json:"usd"`
	USDFoil   string `json:"usd_foil"`
	USDEtched string `json:"usd_etched"`
	EUR       string `json:"eur"`
	Tix       string `json:"tix"`
}

// HasFinish reports whether the printing is available in the given finish.
// The empty finish means nonfoil.
func (c *Card) HasFinish(finish string) bool {
	want := strings.TrimSpace(finish)
	if want == "" {
		want = "nonfoil"
	}
	for _, f := range c.Finishes {
		if f == want {
			return true
		}
	}
	return false
}

// HasPromoType reports whether the printing carries the given promo subtype.
func (c *Card) HasPromoType(promoType string) bool {
	for _, p := range c.PromoTypes {
		if p == promoType {
			return true
		}
	}
	return false
}

// Identifier is one entry in a /cards/collection request. Exactly one
// identifier shape should be populated: id, multiverse id, set+collector
// number, name+set, or name alone.
type Identifier struct {
	ID              string `json:"id,omitempty"`
	MultiverseID    int64  `json:"multiverse_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Set             string `json:"set,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
}

// Key returns a stable deduplication key: identical identifiers within one
// batch collapse into a single request entry.
func (i Identifier) Key() string {
	var b strings.Builder
	b.WriteString("id=")
	b.WriteString(strings.ToLower(i.ID))
	b.WriteString("|mv=")
	if i.MultiverseID > 0 {
		b.WriteString(itoa(i.MultiverseID))
	}
	b.WriteString("|n=")
	b.WriteString(strings.ToLower(i.Name))
	b.WriteString("|s=")
	b.WriteString(strings.ToLower(i.Set))
	b.WriteString("|cn=")
	b.WriteString(strings.ToLower(i.CollectorNumber))
	return b.String()
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[pos:])
}

// CollectionResult is the response of a batched lookup: matched printings
// plus the identifiers the service could not resolve.
type CollectionResult struct {
	Data     []Card       `json:"data"`
	NotFound []Identifier `json:"not_found"`
}

// SearchResult is a page of the search endpoint. The pipeline only issues
// narrow disambiguation queries, so pagination beyond the first page is
// treated as "multiple results".
type SearchResult struct {
	Data       []Card `json:"data"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
}

// Set is one entry of the canonical set catalog.
type Set struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	SetType       string `json:"set_type"`
	ParentSetCode string `json:"parent_set_code"`
	ReleasedAt    string `json:"released_at"`
	CardCount     int    `json:"card_count"`
	Digital       bool   `json:"digital"`
}

type setList struct {
	Data     []Set  `json:"data"`
	HasMore  bool   `json:"has_more"`
	NextPage string `json:"next_page"`
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

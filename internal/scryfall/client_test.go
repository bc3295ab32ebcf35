package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(server.URL, "deckport-test", WithRequestGap(0))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestCollectionPostsIdentifiers(t *testing.T) {
	var gotPath, gotAgent string
	var gotBody struct {
		Identifiers []Identifier `json:"identifiers"`
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(CollectionResult{
			Data:     []Card{{ID: "abc", Name: "Opt"}},
			NotFound: []Identifier{{Name: "Zquiggle"}},
		})
	}))

	result, err := client.Collection(context.Background(), []Identifier{
		{ID: "abc"},
		{Name: "Zquiggle"},
	})
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	if gotPath != "/cards/collection" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAgent != "deckport-test" {
		t.Errorf("user agent = %q", gotAgent)
	}
	if len(gotBody.Identifiers) != 2 {
		t.Errorf("sent %d identifiers", len(gotBody.Identifiers))
	}
	if len(result.Data) != 1 || len(result.NotFound) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestCollectionRejectsOversizedRequests(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should never reach the server")
	}))

	identifiers := make([]Identifier, MaxCollectionIdentifiers+1)
	for i := range identifiers {
		identifiers[i] = Identifier{Name: "Opt"}
	}
	if _, err := client.Collection(context.Background(), identifiers); err == nil {
		t.Fatal("expected an error above the identifier cap")
	}
}

func TestSearchSetsUniquePrints(t *testing.T) {
	var gotQuery, gotUnique string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUnique = r.URL.Query().Get("unique")
		_ = json.NewEncoder(w).Encode(SearchResult{Data: []Card{{Name: "Opt"}}, TotalCards: 1})
	}))

	result, err := client.Search(context.Background(), `!"Opt" cn:"65"`)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotQuery != `!"Opt" cn:"65"` || gotUnique != "prints" {
		t.Errorf("q=%q unique=%q", gotQuery, gotUnique)
	}
	if len(result.Data) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestSearchNotFoundIsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": 404, "code": "not_found", "details": "no cards found",
		})
	}))

	result, err := client.Search(context.Background(), `!"Zquiggle"`)
	if err != nil {
		t.Fatalf("404 search should not error: %v", err)
	}
	if len(result.Data) != 0 || result.HasMore {
		t.Errorf("result = %+v", result)
	}
}

func TestCardByCollectorNumberBuildsPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Card{ID: "abc", Set: "lea", CollectorNumber: "161", Lang: "ja"})
	}))

	card, err := client.CardByCollectorNumber(context.Background(), "LEA", "161", "ja")
	if err != nil {
		t.Fatalf("card: %v", err)
	}
	if gotPath != "/cards/lea/161/ja" {
		t.Errorf("path = %q", gotPath)
	}
	if card.Lang != "ja" {
		t.Errorf("card = %+v", card)
	}

	if _, err := client.CardByCollectorNumber(context.Background(), "", "161", ""); err == nil {
		t.Fatal("missing set must error before the network")
	}
}

func TestSetsFollowsPagination(t *testing.T) {
	var server *httptest.Server
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/sets" && r.URL.Query().Get("page") == "":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data":      []Set{{Code: "lea", Name: "Limited Edition Alpha"}},
				"has_more":  true,
				"next_page": server.URL + "/sets?page=2",
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data":     []Set{{Code: "leb", Name: "Limited Edition Beta"}},
				"has_more": false,
			})
		}
	})
	client, srv := newTestClient(t, handler)
	server = srv

	sets, err := client.Sets(context.Background())
	if err != nil {
		t.Fatalf("sets: %v", err)
	}
	if len(sets) != 2 || sets[0].Code != "lea" || sets[1].Code != "leb" {
		t.Fatalf("sets = %+v", sets)
	}
}

func TestPaceEnforcesRequestGap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResult{})
	}))
	t.Cleanup(server.Close)
	client, err := New(server.URL, "deckport-test", WithRequestGap(60*time.Millisecond))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := client.Search(context.Background(), `!"Opt"`); err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("two requests completed in %v, want at least the 60ms gap", elapsed)
	}
}

func TestPaceHonorsContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResult{})
	}))
	client.requestGap = time.Minute
	client.lastRequest = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.Search(ctx, `!"Opt"`); err == nil {
		t.Fatal("expected context deadline while pacing")
	}
}

func TestAPIErrorDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": 400, "code": "bad_request", "details": "query is malformed",
		})
	}))

	_, err := client.Collection(context.Background(), []Identifier{{Name: "Opt"}})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest || apiErr.Details != "query is malformed" {
		t.Fatalf("err = %v", err)
	}
	if IsNotFound(err) {
		t.Fatal("400 is not a not-found")
	}
}

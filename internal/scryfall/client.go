package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Searcher defines the Scryfall operations used by the lookup pipeline.
type Searcher interface {
	Collection(ctx context.Context, identifiers []Identifier) (*CollectionResult, error)
	Search(ctx context.Context, query string) (*SearchResult, error)
	CardByCollectorNumber(ctx context.Context, set, collectorNumber, lang string) (*Card, error)
	Sets(ctx context.Context) ([]Set, error)
}

// Client provides access to the Scryfall API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client

	mu          sync.Mutex
	requestGap  time.Duration
	lastRequest time.Time
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestGap overrides the minimum delay between consecutive requests.
func WithRequestGap(gap time.Duration) Option {
	return func(c *Client) {
		if gap >= 0 {
			c.requestGap = gap
		}
	}
}

// New creates a Scryfall client.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("scryfall base url required")
	}
	client := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   strings.TrimSpace(userAgent),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		requestGap:  100 * time.Millisecond,
		lastRequest: time.Unix(0, 0),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// pace blocks until the minimum gap since the previous request has elapsed.
// The lock is held across the wait so consecutive requests stay serialized.
func (c *Client) pace(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	wait := c.requestGap - time.Since(c.lastRequest)
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	c.lastRequest = time.Now()
	return nil
}

// Collection resolves up to MaxCollectionIdentifiers identifiers in one
// round trip. Identifiers beyond the cap are rejected; splitting into
// batches is the caller's responsibility.
func (c *Client) Collection(ctx context.Context, identifiers []Identifier) (*CollectionResult, error) {
	if len(identifiers) == 0 {
		return &CollectionResult{}, nil
	}
	if len(identifiers) > MaxCollectionIdentifiers {
		return nil, fmt.Errorf("collection request holds %d identifiers, cap is %d", len(identifiers), MaxCollectionIdentifiers)
	}
	payload := struct {
		Identifiers []Identifier `json:"identifiers"`
	}{Identifiers: identifiers}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal collection request: %w", err)
	}

	var result CollectionResult
	if err := c.do(ctx, http.MethodPost, "/cards/collection", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search issues a full-text search with structured filters. Used for
// single-card disambiguation (promos, name+collector resolution).
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("unique", "prints")

	var result SearchResult
	err := c.do(ctx, http.MethodGet, "/cards/search", params, nil, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return &SearchResult{}, nil
		}
		return nil, err
	}
	return &result, nil
}

// CardByCollectorNumber fetches one printing by set and collector number,
// optionally in a specific printed language.
func (c *Client) CardByCollectorNumber(ctx context.Context, set, collectorNumber, lang string) (*Card, error) {
	set = strings.ToLower(strings.TrimSpace(set))
	collectorNumber = strings.TrimSpace(collectorNumber)
	if set == "" || collectorNumber == "" {
		return nil, errors.New("set and collector number are required")
	}
	path := "/cards/" + url.PathEscape(set) + "/" + url.PathEscape(collectorNumber)
	if lang = strings.TrimSpace(lang); lang != "" {
		path += "/" + url.PathEscape(lang)
	}
	var card Card
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Sets fetches the full canonical set catalog, following pagination.
func (c *Client) Sets(ctx context.Context) ([]Set, error) {
	sets := make([]Set, 0, 1024)
	path := "/sets"
	for {
		var page setList
		if err := c.do(ctx, http.MethodGet, path, nil, nil, &page); err != nil {
			return nil, err
		}
		sets = append(sets, page.Data...)
		if !page.HasMore || strings.TrimSpace(page.NextPage) == "" {
			return sets, nil
		}
		next, err := url.Parse(page.NextPage)
		if err != nil {
			return nil, fmt.Errorf("parse next page url: %w", err)
		}
		path = next.Path
		if next.RawQuery != "" {
			path += "?" + next.RawQuery
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte, out any) error {
	if err := c.pace(ctx); err != nil {
		return err
	}
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse scryfall url: %w", err)
	}
	if params != nil {
		endpoint.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Details != "" {
			return &APIError{Status: resp.StatusCode, Code: payload.Code, Details: payload.Details}
		}
		return &APIError{Status: resp.StatusCode, Details: fmt.Sprintf("scryfall returned %d (latency=%v)", resp.StatusCode, latency)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode scryfall response: %w", err)
	}
	return nil
}

// APIError is a non-200 response from Scryfall.
type APIError struct {
	Status  int
	Code    string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("scryfall error (status %d)", e.Status)
	}
	return fmt.Sprintf("scryfall: %s (status %d)", e.Details, e.Status)
}

// IsNotFound reports whether err is a Scryfall 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

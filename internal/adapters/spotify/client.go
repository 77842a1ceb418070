// Package spotify is the live-catalog adapter: token management, track
// search with retry, and bounded-concurrency aggregation of a query plan.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
)

// Client is an HTTP client for the catalog search API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      *TokenCache
	log         zerolog.Logger
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.TrackSource = (*Client)(nil)

// NewClient constructs a catalog client. tokens may not be nil; callers
// without credentials should not build a Client at all and run in fallback
// mode instead.
func NewClient(httpClient *http.Client, baseURL string, tokens *TokenCache, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokens:      tokens,
		log:         log.With().Str("component", "spotify").Logger(),
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBaseBackoff,
	}
}

// Search runs a single free-text track search.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.TrackCandidate, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: %w: %v", ports.ErrCatalogAuth, err)
	}
	return c.searchTracks(ctx, tok.AccessToken, query, limit)
}

func (c *Client) searchTracks(ctx context.Context, bearer, query string, limit int) ([]domain.TrackCandidate, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}
	params := searchURL.Query()
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("market", "US")
	searchURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("spotify adapter: %w: search status %d", ports.ErrCatalogAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("spotify adapter: search decode error: %w", err)
	}

	tracks := make([]domain.TrackCandidate, 0, len(body.Tracks.Items))
	for _, item := range body.Tracks.Items {
		tracks = append(tracks, mapTrackToDomain(item))
	}
	return tracks, nil
}

package spotify

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// refreshWindow is how long before expiry a cached token is refreshed.
const refreshWindow = 60 * time.Second

// TokenCache owns the client-credentials token for the catalog API. The
// wrapped reuse source caches the token, refreshes it refreshWindow before
// expiry, and serializes refreshes behind its mutex, so concurrent requests
// never trigger more than one in-flight token call.
type TokenCache struct {
	src oauth2.TokenSource
}

// NewTokenCache builds a cache for the given client credentials. ctx scopes
// the HTTP client used for token calls and should be process-lived.
func NewTokenCache(ctx context.Context, clientID, clientSecret, tokenURL string) *TokenCache {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return &TokenCache{
		src: oauth2.ReuseTokenSourceWithExpiry(nil, cfg.TokenSource(ctx), refreshWindow),
	}
}

// Token returns a valid bearer token, refreshing if needed.
func (tc *TokenCache) Token() (*oauth2.Token, error) {
	tok, err := tc.src.Token()
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: token: %w", err)
	}
	return tok, nil
}

package ports

import (
	"context"
	"errors"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// ErrCatalogAuth indicates the live catalog rejected or never produced an
// access token. It is the only catalog failure that moves a request onto the
// local fallback path; individual query failures are absorbed upstream.
var ErrCatalogAuth = errors.New("catalog authentication failed")

// TrackSource is the live catalog as the core sees it.
type TrackSource interface {
	// CollectCandidates runs a query plan against the catalog, merging
	// results in plan order and keeping the first occurrence of every track
	// id. A failing individual query is skipped; only an auth failure is
	// returned (wrapped around ErrCatalogAuth).
	CollectCandidates(ctx context.Context, queries []domain.SearchQuery) ([]domain.TrackCandidate, error)

	// Search runs a single free-text track search.
	Search(ctx context.Context, query string, limit int) ([]domain.TrackCandidate, error)
}

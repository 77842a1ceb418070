package spotify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
)

const (
	maxPlanQueries  = 6
	perQueryLimit   = 8
	perQueryTimeout = 10 * time.Second
)

// CollectCandidates runs up to maxPlanQueries of the plan concurrently and
// merges the results in plan order. A track id that appears under several
// queries keeps the candidate from the earliest query; failed queries are
// skipped so one bad search does not sink the batch.
func (c *Client) CollectCandidates(ctx context.Context, queries []domain.SearchQuery) ([]domain.TrackCandidate, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: %w: %v", ports.ErrCatalogAuth, err)
	}

	if len(queries) > maxPlanQueries {
		queries = queries[:maxPlanQueries]
	}

	results := make([][]domain.TrackCandidate, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(idx int, query domain.SearchQuery) {
			defer wg.Done()

			qctx, cancel := context.WithTimeout(ctx, perQueryTimeout)
			defer cancel()

			tracks, err := c.searchTracks(qctx, tok.AccessToken, query.Text, perQueryLimit)
			if err != nil {
				c.log.Warn().Err(err).Str("query", query.Text).Str("origin", query.Origin).Msg("search query failed, skipping")
				return
			}
			for j := range tracks {
				tracks[j].Origin = query.Origin
			}
			results[idx] = tracks
		}(i, q)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("spotify adapter: collect canceled: %w", err)
	}

	seen := make(map[string]struct{})
	var merged []domain.TrackCandidate
	for _, batch := range results {
		for _, t := range batch {
			if t.ID == "" {
				continue
			}
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			merged = append(merged, t)
		}
	}

	c.log.Debug().Int("queries", len(queries)).Int("candidates", len(merged)).Msg("collected candidates")
	return merged, nil
}

package ports

import (
	"context"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// SongCatalog is the curated local song store backing the quiz and the
// fallback recommendation path.
type SongCatalog interface {
	All(ctx context.Context) ([]domain.CatalogSong, error)
	GetByID(ctx context.Context, id string) (domain.CatalogSong, error)
	UpdateFeatures(ctx context.Context, id string, features domain.AudioFeatures) error
}

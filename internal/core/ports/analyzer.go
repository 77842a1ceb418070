package ports

import (
	"context"
	"errors"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// ErrCaptionerUnavailable indicates the captioning backend could not be
// reached; callers fall back to the heuristic analyzer.
var ErrCaptionerUnavailable = errors.New("captioner unavailable")

// ImageAnalyzer turns raw image bytes into a caption plus dominant colors.
// Implementations: the ML captioner client and the color-only heuristic.
// Which one serves as primary is fixed at startup by configuration.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (domain.AnalysisResult, error)
}

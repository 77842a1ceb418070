package mood

import (
	"math/rand"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

const (
	unitJitter  = 0.1
	tempoJitter = 10
	tempoMin    = 60
	tempoMax    = 200
)

// Synthesizer maps a fused mood onto a concrete audio-feature vector. The
// RNG drives the jitter applied for variety; a nil RNG disables jitter, which
// is what deterministic tests rely on.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize blends the mood's base vector toward the neutral baseline by
// inverse confidence, then applies bounded jitter. A zero-confidence
// classification lands exactly on the neutral vector, full confidence
// exactly on the mood's base vector.
func (s *Synthesizer) Synthesize(m domain.Mood, confidence float64) domain.AudioFeatures {
	base := BaseFeatures(m)
	neutral := domain.NeutralFeatures()

	blend := func(b, n float64) float64 {
		return b*confidence + n*(1-confidence)
	}
	out := domain.AudioFeatures{
		Valence:          blend(base.Valence, neutral.Valence),
		Energy:           blend(base.Energy, neutral.Energy),
		Danceability:     blend(base.Danceability, neutral.Danceability),
		Acousticness:     blend(base.Acousticness, neutral.Acousticness),
		Instrumentalness: blend(base.Instrumentalness, neutral.Instrumentalness),
		Speechiness:      blend(base.Speechiness, neutral.Speechiness),
		Tempo:            blend(base.Tempo, neutral.Tempo),
	}

	if s.rng != nil {
		out.Valence = clamp01(out.Valence + s.jitter(unitJitter))
		out.Energy = clamp01(out.Energy + s.jitter(unitJitter))
		out.Danceability = clamp01(out.Danceability + s.jitter(unitJitter))
		out.Acousticness = clamp01(out.Acousticness + s.jitter(unitJitter))
		out.Instrumentalness = clamp01(out.Instrumentalness + s.jitter(unitJitter))
		out.Tempo = clampTempo(out.Tempo + s.jitter(tempoJitter))
	}
	return out
}

func (s *Synthesizer) jitter(scale float64) float64 {
	return (s.rng.Float64()*2 - 1) * scale
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampTempo(v float64) float64 {
	if v < tempoMin {
		return tempoMin
	}
	if v > tempoMax {
		return tempoMax
	}
	return v
}

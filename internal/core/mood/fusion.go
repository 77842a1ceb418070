package mood

import "github.com/echolens-labs/echolens/internal/core/domain"

// Per-source fusion weights. Text is the most reliable signal, scene the
// most speculative.
const (
	textWeight  = 0.5
	colorWeight = 0.3
	sceneWeight = 0.2
)

// fallbackConfidence is used when no source produced a usable mood. The
// fused label defaults to peaceful rather than neutral: a safe
// recommendation beats a meaningless one.
const fallbackConfidence = 0.2

// Fuse combines the three signals into one classification. Each non-neutral
// signal contributes confidence × weight to its mood's candidate score;
// agreeing sources accumulate. Ties on the final argmax go to the source
// that contributed first (text before color before scene).
func Fuse(text, color, scene domain.MoodSignal) domain.FusedMood {
	candidates := make(map[domain.Mood]float64)
	var order []domain.Mood

	add := func(sig domain.MoodSignal, weight float64) {
		if sig.Mood == domain.MoodNeutral {
			return
		}
		if _, seen := candidates[sig.Mood]; !seen {
			order = append(order, sig.Mood)
		}
		candidates[sig.Mood] += sig.Confidence * weight
	}
	add(text, textWeight)
	add(color, colorWeight)
	add(scene, sceneWeight)

	fused := domain.FusedMood{
		Mood:       domain.MoodPeaceful,
		Confidence: fallbackConfidence,
		Candidates: candidates,
		Text:       text,
		Color:      color,
		Scene:      scene,
	}
	if len(candidates) == 0 {
		return fused
	}

	best := order[0]
	for _, m := range order[1:] {
		if candidates[m] > candidates[best] {
			best = m
		}
	}
	fused.Mood = best
	fused.Confidence = min1(candidates[best])
	return fused
}

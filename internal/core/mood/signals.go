package mood

import (
	"strings"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// lowConfidence is the confidence attached to a signal that saw nothing.
const lowConfidence = 0.1

// ScoreCaption scores the caption against every mood's keyword set. The mood
// with the most keyword hits wins, ties going to the earlier label in
// declaration order; a caption with no hits at all is neutral.
func ScoreCaption(caption string) domain.MoodSignal {
	caption = strings.ToLower(caption)

	best := domain.MoodNeutral
	bestCount := 0
	bestConfidence := 0.0
	var matched []string

	for _, m := range domain.Moods {
		keywords, ok := moodKeywords[m]
		if !ok {
			continue
		}
		count := 0
		var hits []string
		for _, kw := range keywords {
			if strings.Contains(caption, kw) {
				count++
				hits = append(hits, kw)
			}
		}
		if count > bestCount {
			best = m
			bestCount = count
			bestConfidence = min1(float64(count) / float64(len(keywords)))
			matched = hits
		}
	}

	if bestCount == 0 {
		return domain.MoodSignal{Source: domain.SourceText, Mood: domain.MoodNeutral, Confidence: lowConfidence}
	}
	return domain.MoodSignal{
		Source:     domain.SourceText,
		Mood:       best,
		Confidence: bestConfidence,
		Matched:    matched,
	}
}

// ClassifyColors folds the top three dominant colors into a psychological
// impact vector and maps that onto a mood.
func ClassifyColors(colors []domain.DominantColor) domain.MoodSignal {
	if len(colors) == 0 {
		return domain.MoodSignal{Source: domain.SourceColor, Mood: domain.MoodNeutral, Confidence: lowConfidence}
	}
	if len(colors) > 3 {
		colors = colors[:3]
	}

	impact := make(map[string]float64)
	var buckets []string
	distinct := make(map[string]bool)
	for _, c := range colors {
		bucket := classifyRGB(c.R, c.G, c.B)
		buckets = append(buckets, bucket)
		distinct[bucket] = true
		weight := c.Percentage / 100.0
		for attr, value := range colorImpact[bucket] {
			impact[attr] += value * weight
		}
	}

	m := domain.MoodNeutral
	for _, rule := range impactRules {
		if impact[rule.attr] > rule.threshold {
			m = rule.mood
			break
		}
	}

	return domain.MoodSignal{
		Source:     domain.SourceColor,
		Mood:       m,
		// Repeated buckets count once: two shades of blue are one influence.
		Confidence: minf(0.3*float64(len(distinct)), 0.8),
		Detail:     impact,
		Matched:    buckets,
	}
}

// classifyRGB puts an RGB triple into one of ten named buckets using fixed
// thresholds; gray is the catch-all.
func classifyRGB(r, g, b int) string {
	switch {
	case r > 200 && g < 100 && b < 100:
		return "red"
	case r > 200 && g > 200 && b < 100:
		return "yellow"
	case r < 100 && g > 120 && b < 100:
		return "green"
	case r < 100 && g < 200 && b > 200:
		return "blue"
	case r > 200 && g > 200 && b > 200:
		return "white"
	case r > 150 && g < 150 && b > 150:
		return "purple"
	case r > 200 && g > 150 && b < 100:
		return "orange"
	case r > 200 && g > 150 && b > 150:
		return "pink"
	case r < 50 && g < 50 && b < 50:
		return "black"
	default:
		return "gray"
	}
}

// sceneRule infers a mood from detected scene types. Rules run in priority
// order; a rule may require two scene types at once.
type sceneRule struct {
	scene      string
	also       string
	mood       domain.Mood
	confidence float64
}

var sceneRules = []sceneRule{
	{scene: "nature", mood: domain.MoodPeaceful, confidence: 0.6},
	{scene: "social", also: "day", mood: domain.MoodHappy, confidence: 0.5},
	{scene: "night", mood: domain.MoodMysterious, confidence: 0.4},
	{scene: "urban", mood: domain.MoodEnergetic, confidence: 0.3},
}

// ClassifyScene matches the caption against the scene-indicator sets and
// applies the fixed priority rules.
func ClassifyScene(caption string) domain.MoodSignal {
	caption = strings.ToLower(caption)

	detected := make(map[string]bool)
	var matched []string
	for scene, keywords := range sceneIndicators {
		for _, kw := range keywords {
			if strings.Contains(caption, kw) {
				detected[scene] = true
				matched = append(matched, scene)
				break
			}
		}
	}

	for _, rule := range sceneRules {
		if detected[rule.scene] && (rule.also == "" || detected[rule.also]) {
			return domain.MoodSignal{
				Source:     domain.SourceScene,
				Mood:       rule.mood,
				Confidence: rule.confidence,
				Matched:    matched,
			}
		}
	}
	return domain.MoodSignal{Source: domain.SourceScene, Mood: domain.MoodNeutral, Confidence: lowConfidence, Matched: matched}
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

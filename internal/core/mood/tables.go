// Package mood turns an image caption and its dominant colors into a single
// mood classification and a target audio-feature vector. Three weak signals
// (caption keywords, color psychology, scene context) are extracted
// independently and fused with fixed weights.
package mood

import "github.com/echolens-labs/echolens/internal/core/domain"

// moodKeywords drives the text scorer. Confidence is the matched fraction of
// a set, so set sizes matter as much as their contents.
var moodKeywords = map[domain.Mood][]string{
	domain.MoodHappy:       {"happy", "joy", "smile", "party", "sunny", "beach"},
	domain.MoodPeaceful:    {"calm", "peaceful", "quiet", "serene", "relaxing", "tranquil", "meditation", "zen"},
	domain.MoodMelancholic: {"sad", "dark", "lonely", "rain", "gray", "melancholy", "depressed", "gloomy"},
	domain.MoodEnergetic:   {"energy", "action", "sports", "running", "dancing", "workout", "active", "dynamic"},
	domain.MoodRomantic:    {"love", "romantic", "couple", "kiss", "intimate", "tender"},
	domain.MoodNature:      {"nature", "outdoor", "forest", "mountain", "ocean", "trees", "landscape", "beach"},
	domain.MoodMysterious:  {"shadow", "mystery", "night", "mysterious", "unknown", "gothic", "dark"},
}

// colorImpact is the psychological-impact vector per color bucket.
var colorImpact = map[string]map[string]float64{
	"red":    {"energy": 0.3, "valence": 0.2, "arousal": 0.4},
	"blue":   {"energy": -0.2, "valence": -0.1, "calmness": 0.4},
	"yellow": {"valence": 0.4, "energy": 0.2, "happiness": 0.5},
	"green":  {"valence": 0.1, "energy": 0, "nature": 0.4},
	"purple": {"energy": 0.1, "mystery": 0.3, "sophistication": 0.2},
	"orange": {"energy": 0.3, "valence": 0.3, "warmth": 0.4},
	"pink":   {"valence": 0.2, "romance": 0.4, "softness": 0.3},
	"black":  {"energy": -0.3, "valence": -0.2, "sophistication": 0.2},
	"white":  {"energy": 0.1, "purity": 0.4, "minimalism": 0.3},
	"gray":   {"energy": -0.1, "valence": -0.1, "neutrality": 0.2},
}

// impactRule maps an accumulated impact attribute onto a mood. Rules are
// evaluated in order; the first attribute over its threshold wins.
type impactRule struct {
	attr      string
	threshold float64
	mood      domain.Mood
}

var impactRules = []impactRule{
	{"happiness", 0.15, domain.MoodHappy},
	{"calmness", 0.3, domain.MoodPeaceful},
	{"energy", 0.3, domain.MoodEnergetic},
	{"romance", 0.3, domain.MoodRomantic},
	{"nature", 0.3, domain.MoodNature},
	{"mystery", 0.2, domain.MoodMysterious},
}

// sceneIndicators are caption substrings hinting at a scene type.
var sceneIndicators = map[string][]string{
	"indoor":   {"room", "kitchen", "bedroom", "office", "house", "building"},
	"outdoor":  {"outside", "park", "street", "garden", "yard", "field"},
	"nature":   {"tree", "forest", "mountain", "ocean", "lake", "sky", "beach"},
	"urban":    {"city", "building", "street", "car", "traffic", "downtown"},
	"social":   {"people", "group", "crowd", "family", "friends", "couple"},
	"solitary": {"alone", "single", "one person", "individual"},
	"day":      {"morning", "day", "noon", "bright", "sunny"},
	"night":    {"night", "dark", "evening", "sunset", "dusk"},
}

// baseFeatures is the canonical mood → audio-feature table.
var baseFeatures = map[domain.Mood]domain.AudioFeatures{
	domain.MoodHappy:       {Valence: 0.8, Energy: 0.7, Danceability: 0.7, Acousticness: 0.3, Instrumentalness: 0.3, Speechiness: 0.1, Tempo: 130},
	domain.MoodPeaceful:    {Valence: 0.6, Energy: 0.3, Danceability: 0.3, Acousticness: 0.8, Instrumentalness: 0.6, Speechiness: 0.1, Tempo: 80},
	domain.MoodMelancholic: {Valence: 0.2, Energy: 0.4, Danceability: 0.3, Acousticness: 0.6, Instrumentalness: 0.4, Speechiness: 0.1, Tempo: 70},
	domain.MoodEnergetic:   {Valence: 0.7, Energy: 0.9, Danceability: 0.8, Acousticness: 0.2, Instrumentalness: 0.2, Speechiness: 0.1, Tempo: 140},
	domain.MoodRomantic:    {Valence: 0.7, Energy: 0.4, Danceability: 0.4, Acousticness: 0.5, Instrumentalness: 0.3, Speechiness: 0.1, Tempo: 90},
	domain.MoodNature:      {Valence: 0.6, Energy: 0.5, Danceability: 0.4, Acousticness: 0.7, Instrumentalness: 0.5, Speechiness: 0.1, Tempo: 100},
	domain.MoodMysterious:  {Valence: 0.3, Energy: 0.6, Danceability: 0.5, Acousticness: 0.4, Instrumentalness: 0.6, Speechiness: 0.1, Tempo: 110},
}

// compatibleGenres maps each mood onto the catalog genres that suit it. Used
// both for admitting a user genre into the query plan and for filtering the
// local catalog on the fallback path. Matching is substring-based.
var compatibleGenres = map[domain.Mood][]string{
	domain.MoodPeaceful:    {"folk", "acoustic", "indie", "ambient", "jazz", "classical", "new age"},
	domain.MoodNature:      {"folk", "acoustic", "indie-folk", "world", "ambient", "country"},
	domain.MoodMelancholic: {"indie", "alternative", "folk", "acoustic", "blues", "ambient"},
	domain.MoodRomantic:    {"r&b", "soul", "acoustic", "jazz", "indie", "pop"},
	domain.MoodHappy:       {"pop", "indie", "funk", "dance", "electronic", "reggae"},
	domain.MoodEnergetic:   {"rock", "electronic", "hip-hop", "dance", "punk", "metal"},
	domain.MoodMysterious:  {"trip-hop", "electronic", "ambient", "alternative", "gothic"},
}

// CompatibleGenres returns the genres that fit a mood; nil for neutral.
func CompatibleGenres(m domain.Mood) []string {
	return compatibleGenres[m]
}

// BaseFeatures returns the canonical feature vector for a mood; the neutral
// baseline when the mood has no row.
func BaseFeatures(m domain.Mood) domain.AudioFeatures {
	if f, ok := baseFeatures[m]; ok {
		return f
	}
	return domain.NeutralFeatures()
}

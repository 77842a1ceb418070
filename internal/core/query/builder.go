// Package query builds the ordered catalog-search plan for a fused mood.
// Scene context dominates: at most one user genre is admitted, and only when
// it is compatible with the mood.
package query

import (
	"fmt"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/mood"
)

const (
	maxQueries      = 7
	sceneQueryCount = 4
	popularCount    = 2
	userGenreCap    = 1
	userGenreCutoff = 0.5
	userGenresTopN  = 3
)

// Strategy labels reported back to the caller.
const (
	StrategySceneOnly    = "pure_scene_based"
	StrategyPersonalized = "scene_dominated_personalized"
)

// sceneQueries holds the per-mood scene-appropriate searches; the first four
// of a list are used. Unknown moods run the happy list.
var sceneQueries = map[domain.Mood][]string{
	domain.MoodHappy:       {"genre:pop", "genre:dance-pop", "pop cheerful", "feel good hits", "upbeat popular", "sunny pop"},
	domain.MoodPeaceful:    {"genre:folk", "genre:acoustic", "peaceful indie", "calm acoustic", "folk popular", "nature acoustic"},
	domain.MoodEnergetic:   {"genre:rock", "genre:electronic", "genre:dance", "high energy hits", "workout popular", "rock anthems"},
	domain.MoodMelancholic: {"genre:alternative", "genre:indie-rock", "emotional indie", "sad alternative", "melancholic popular", "introspective hits"},
	domain.MoodRomantic:    {"genre:pop", "genre:r-n-b", "genre:acoustic", "love song hits", "romantic popular", "soul ballads"},
	domain.MoodNature:      {"genre:folk", "genre:indie-folk", "acoustic nature", "folk popular", "organic acoustic", "nature indie"},
	domain.MoodMysterious:  {"genre:trip-hop", "genre:electronic", "dark ambient", "moody electronic", "night drive songs", "cinematic brooding"},
}

// popularQueries are the mood-specific "popular song" phrase searches
// appended after scene and user genres.
var popularQueries = map[domain.Mood][]string{
	domain.MoodPeaceful:    {"acoustic popular", "folk hits"},
	domain.MoodMelancholic: {"alternative popular", "indie emotional"},
	domain.MoodHappy:       {"pop hits", "feel good popular"},
	domain.MoodEnergetic:   {"rock popular", "electronic hits"},
	domain.MoodRomantic:    {"love song hits", "r&b popular"},
	domain.MoodNature:      {"folk popular", "acoustic hits"},
	domain.MoodMysterious:  {"trip-hop popular", "moody electronic hits"},
}

// BuildPlan assembles the query plan for a mood and an optional taste
// profile. Plan order matters downstream: the aggregator merges results in
// plan order, so earlier queries win duplicate track ids.
func BuildPlan(m domain.Mood, profile *domain.TasteProfile) domain.QueryPlan {
	scene, ok := sceneQueries[m]
	if !ok {
		scene = sceneQueries[domain.MoodHappy]
	}

	plan := domain.QueryPlan{Mood: m, Strategy: StrategySceneOnly}
	for _, q := range scene[:sceneQueryCount] {
		plan.Queries = append(plan.Queries, domain.SearchQuery{Text: q, Origin: domain.OriginSceneGenre})
	}

	if profile != nil && len(profile.GenrePreferences) > 0 {
		plan.Strategy = StrategyPersonalized
		added := 0
		for _, genre := range profile.TopGenres(userGenresTopN) {
			if added >= userGenreCap {
				break
			}
			if profile.GenrePreferences[genre] <= userGenreCutoff {
				continue
			}
			if !genreCompatible(genre, m) {
				continue
			}
			plan.Queries = append(plan.Queries, domain.SearchQuery{
				Text:   fmt.Sprintf("genre:%s", genre),
				Origin: domain.OriginUserGenre,
			})
			added++
		}
	}

	popular, ok := popularQueries[m]
	if !ok {
		popular = []string{"popular music"}
	}
	for _, q := range popular[:minInt(popularCount, len(popular))] {
		plan.Queries = append(plan.Queries, domain.SearchQuery{Text: q, Origin: domain.OriginMoodPopular})
	}

	if len(plan.Queries) > maxQueries {
		plan.Queries = plan.Queries[:maxQueries]
	}
	return plan
}

// genreCompatible checks the user genre against the mood's compatible set by
// substring match, so "indie pop" passes a mood that lists "pop".
func genreCompatible(genre string, m domain.Mood) bool {
	song := domain.CatalogSong{Genres: []string{genre}}
	for _, compatible := range mood.CompatibleGenres(m) {
		if song.HasGenre(compatible) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

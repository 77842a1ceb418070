// Package taste converts quiz like/dislike swipes into a taste profile the
// query builder and ranking can personalize against.
package taste

import (
	"time"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

const (
	likeWeight    = 1.0
	dislikeWeight = 0.5
	// dislikePush steers a feature preference away from the disliked
	// average.
	dislikePush = 0.1
)

// ratedFeatures are the audio features a profile tracks preferences for.
var ratedFeatures = []string{"danceability", "energy", "valence", "acousticness", "instrumentalness"}

// BuildProfile derives a taste profile from quiz ratings against the curated
// catalog. Ratings referencing unknown song ids are silently skipped.
// catalogSize drives the completion rate and should be the size of the full
// quiz catalog.
func BuildProfile(userID string, ratings []domain.SongRating, catalog []domain.CatalogSong, catalogSize int) domain.TasteProfile {
	byID := make(map[string]domain.CatalogSong, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	var liked, disliked []domain.CatalogSong
	for _, r := range ratings {
		song, ok := byID[r.SongID]
		if !ok {
			continue
		}
		if r.Liked {
			liked = append(liked, song)
		} else {
			disliked = append(disliked, song)
		}
	}

	genreScores := make(map[string]float64)
	for _, s := range liked {
		for _, g := range s.Genres {
			genreScores[g] += likeWeight
		}
	}
	for _, s := range disliked {
		for _, g := range s.Genres {
			genreScores[g] -= dislikeWeight
		}
	}

	// Normalize by the actual maximum, even a fractional one, so the top
	// genre always lands at 1.0; the 1.0 default covers an empty map. A
	// non-positive maximum would flip signs, and the floor below zeroes
	// everything anyway.
	maxScore := 1.0
	first := true
	for _, v := range genreScores {
		if first || v > maxScore {
			maxScore = v
			first = false
		}
	}
	if maxScore <= 0 {
		maxScore = 1.0
	}
	genrePrefs := make(map[string]float64, len(genreScores))
	for g, v := range genreScores {
		p := v / maxScore
		if p < 0 {
			p = 0
		}
		genrePrefs[g] = p
	}

	featurePrefs := make(map[string]float64, len(ratedFeatures))
	for _, f := range ratedFeatures {
		featurePrefs[f] = featurePreference(f, liked, disliked)
	}

	rated := len(liked) + len(disliked)
	completion := 0.0
	if catalogSize > 0 {
		completion = float64(rated) / float64(catalogSize)
	}

	return domain.TasteProfile{
		UserID:             userID,
		CreatedAt:          time.Now().UTC(),
		GenrePreferences:   genrePrefs,
		FeaturePreferences: featurePrefs,
		LikedArtists:       uniqueArtists(liked),
		DislikedArtists:    uniqueArtists(disliked),
		Stats: domain.QuizStats{
			TotalRated:     rated,
			Liked:          len(liked),
			Disliked:       len(disliked),
			CompletionRate: completion,
		},
	}
}

func featurePreference(feature string, liked, disliked []domain.CatalogSong) float64 {
	if len(liked) == 0 {
		return 0.5
	}
	likedAvg := average(feature, liked)
	pref := likedAvg
	if len(disliked) > 0 {
		pref = likedAvg + dislikePush*(likedAvg-average(feature, disliked))
	}
	if pref < 0 {
		return 0
	}
	if pref > 1 {
		return 1
	}
	return pref
}

func average(feature string, songs []domain.CatalogSong) float64 {
	var sum float64
	for _, s := range songs {
		sum += featureValue(s.Features, feature)
	}
	return sum / float64(len(songs))
}

func featureValue(f domain.AudioFeatures, name string) float64 {
	switch name {
	case "danceability":
		return f.Danceability
	case "energy":
		return f.Energy
	case "valence":
		return f.Valence
	case "acousticness":
		return f.Acousticness
	case "instrumentalness":
		return f.Instrumentalness
	default:
		return 0
	}
}

func uniqueArtists(songs []domain.CatalogSong) []string {
	seen := make(map[string]bool, len(songs))
	var artists []string
	for _, s := range songs {
		if !seen[s.Artist] {
			seen[s.Artist] = true
			artists = append(artists, s.Artist)
		}
	}
	return artists
}

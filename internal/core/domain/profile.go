package domain

import "time"

// SongRating is one quiz swipe.
type SongRating struct {
	SongID string `json:"song_id"`
	Liked  bool   `json:"liked"`
}

// QuizStats summarises how much of the quiz a user completed.
type QuizStats struct {
	TotalRated     int     `json:"total_rated"`
	Liked          int     `json:"liked"`
	Disliked       int     `json:"disliked"`
	CompletionRate float64 `json:"completion_rate"`
}

// TasteProfile is computed per request from quiz ratings; it is never
// persisted.
type TasteProfile struct {
	UserID             string             `json:"user_id"`
	CreatedAt          time.Time          `json:"created_at"`
	GenrePreferences   map[string]float64 `json:"genre_preferences"`
	FeaturePreferences map[string]float64 `json:"audio_feature_preferences"`
	LikedArtists       []string           `json:"liked_artists"`
	DislikedArtists    []string           `json:"disliked_artists"`
	Stats              QuizStats          `json:"quiz_stats"`
}

// TopGenres returns up to n genres sorted by preference descending, with
// alphabetical order breaking score ties for determinism.
func (p TasteProfile) TopGenres(n int) []string {
	type gs struct {
		genre string
		score float64
	}
	all := make([]gs, 0, len(p.GenrePreferences))
	for g, s := range p.GenrePreferences {
		all = append(all, gs{g, s})
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0; j-- {
			a, b := all[j-1], all[j]
			if b.score > a.score || (b.score == a.score && b.genre < a.genre) {
				all[j-1], all[j] = b, a
			} else {
				break
			}
		}
	}
	if n > len(all) {
		n = len(all)
	}
	genres := make([]string, 0, n)
	for _, e := range all[:n] {
		genres = append(genres, e.genre)
	}
	return genres
}

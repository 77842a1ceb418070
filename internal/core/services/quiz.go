package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
	"github.com/echolens-labs/echolens/internal/core/taste"
)

const (
	defaultQuizSize = 10
	topGenreCount   = 3
)

// QuizService serves quiz songs and turns ratings into a taste profile.
type QuizService struct {
	catalog ports.SongCatalog
	rng     *rand.Rand
	log     zerolog.Logger
}

func NewQuizService(catalog ports.SongCatalog, rng *rand.Rand, log zerolog.Logger) *QuizService {
	return &QuizService{
		catalog: catalog,
		rng:     rng,
		log:     log.With().Str("component", "quiz").Logger(),
	}
}

// QuizSong is a catalog song with its position in the quiz order.
type QuizSong struct {
	Position int `json:"position"`
	domain.CatalogSong
}

// QuizSongs returns a shuffled sample of the curated catalog. With no RNG
// configured the catalog order is kept, which tests rely on.
func (s *QuizService) QuizSongs(ctx context.Context, limit int) ([]QuizSong, error) {
	if limit <= 0 {
		limit = defaultQuizSize
	}

	songs, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load quiz songs: %w", err)
	}

	if s.rng != nil {
		shuffled := make([]domain.CatalogSong, len(songs))
		copy(shuffled, songs)
		s.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		songs = shuffled
	}
	if limit < len(songs) {
		songs = songs[:limit]
	}

	quiz := make([]QuizSong, 0, len(songs))
	for i, song := range songs {
		quiz = append(quiz, QuizSong{Position: i + 1, CatalogSong: song})
	}
	return quiz, nil
}

// ProfileSummary is the caller-facing digest attached to a new profile.
type ProfileSummary struct {
	TopGenres   []string `json:"top_genres"`
	Personality string   `json:"music_personality"`
}

// CalculatePreferences builds a taste profile from quiz ratings. A missing
// user id gets a generated one; unknown song ids are skipped by the profile
// builder.
func (s *QuizService) CalculatePreferences(ctx context.Context, userID string, ratings []domain.SongRating) (domain.TasteProfile, ProfileSummary, error) {
	if len(ratings) == 0 {
		return domain.TasteProfile{}, ProfileSummary{}, &domain.ValidationError{Field: "song_ratings", Reason: "must not be empty"}
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	songs, err := s.catalog.All(ctx)
	if err != nil {
		return domain.TasteProfile{}, ProfileSummary{}, fmt.Errorf("service: failed to load catalog: %w", err)
	}

	profile := taste.BuildProfile(userID, ratings, songs, len(songs))
	summary := ProfileSummary{
		TopGenres:   profile.TopGenres(topGenreCount),
		Personality: taste.Personality(profile),
	}

	s.log.Info().
		Str("user_id", profile.UserID).
		Int("rated", profile.Stats.TotalRated).
		Str("personality", summary.Personality).
		Msg("taste profile built")

	return profile, summary, nil
}

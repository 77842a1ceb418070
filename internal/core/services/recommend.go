// Package services coordinates the core pipeline: mood fusion, query
// planning, candidate aggregation, ranking, and the local fallback chain.
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/mood"
	"github.com/echolens-labs/echolens/internal/core/ports"
	"github.com/echolens-labs/echolens/internal/core/query"
	"github.com/echolens-labs/echolens/internal/core/rank"
)

const (
	fallbackStrategy  = "fallback_local"
	fallbackSize      = 10
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// RecommendationService runs the image-to-music pipeline. The track source
// may be nil when no catalog credentials are configured; every request then
// takes the local fallback path.
type RecommendationService struct {
	source    ports.TrackSource
	catalog   ports.SongCatalog
	analyzer  ports.ImageAnalyzer
	heuristic ports.ImageAnalyzer
	synth     *mood.Synthesizer
	rng       *rand.Rand
	log       zerolog.Logger
}

// NewRecommendationService constructs the service. heuristic backs up the
// primary analyzer; both may point at the same implementation.
func NewRecommendationService(
	source ports.TrackSource,
	catalog ports.SongCatalog,
	analyzer ports.ImageAnalyzer,
	heuristic ports.ImageAnalyzer,
	synth *mood.Synthesizer,
	rng *rand.Rand,
	log zerolog.Logger,
) *RecommendationService {
	return &RecommendationService{
		source:    source,
		catalog:   catalog,
		analyzer:  analyzer,
		heuristic: heuristic,
		synth:     synth,
		rng:       rng,
		log:       log.With().Str("component", "recommend").Logger(),
	}
}

// Recommendation is the result of one pipeline run.
type Recommendation struct {
	Mood         domain.Mood          `json:"mood"`
	Tracks       []domain.RankedTrack `json:"recommendations"`
	Strategy     string               `json:"search_strategy"`
	TotalFound   int                  `json:"total_found"`
	Personalized bool                 `json:"personalized"`
}

// Recommend runs the pipeline for an already-known mood.
func (s *RecommendationService) Recommend(ctx context.Context, rawMood string, profile *domain.TasteProfile) (Recommendation, error) {
	m, ok := domain.ParseMood(rawMood)
	if !ok {
		return Recommendation{}, &domain.ValidationError{Field: "mood", Reason: fmt.Sprintf("unknown mood %q", rawMood)}
	}

	plan := query.BuildPlan(m, profile)
	return s.recommendPlanned(ctx, m, plan)
}

// AnalysisRecommendation extends Recommendation with the signals that
// produced the mood.
type AnalysisRecommendation struct {
	Recommendation
	Analysis domain.AnalysisResult `json:"analysis"`
	Fused    domain.FusedMood      `json:"mood_detail"`
	Features domain.AudioFeatures  `json:"audio_features"`
	Plan     domain.QueryPlan      `json:"query_plan"`
}

// AnalyzeAndRecommend runs the full pipeline from raw image bytes. Analyzer
// failure degrades to the heuristic; total analysis failure degrades to an
// empty analysis, which fusion maps to a low-confidence peaceful mood.
func (s *RecommendationService) AnalyzeAndRecommend(ctx context.Context, image []byte, profile *domain.TasteProfile) (AnalysisRecommendation, error) {
	if len(image) == 0 {
		return AnalysisRecommendation{}, &domain.ValidationError{Field: "image", Reason: "must not be empty"}
	}

	analysis, err := s.analyzer.Analyze(ctx, image)
	if err != nil {
		if errors.Is(err, ports.ErrCaptionerUnavailable) && s.heuristic != nil {
			s.log.Warn().Err(err).Msg("captioner unavailable, using heuristic analyzer")
			analysis, err = s.heuristic.Analyze(ctx, image)
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("image analysis failed, degrading to empty analysis")
			analysis = domain.AnalysisResult{Method: "none"}
		}
	}

	text := mood.ScoreCaption(analysis.Caption)
	color := mood.ClassifyColors(analysis.Colors)
	scene := mood.ClassifyScene(analysis.Caption)
	fused := mood.Fuse(text, color, scene)
	features := s.synth.Synthesize(fused.Mood, fused.Confidence)
	plan := query.BuildPlan(fused.Mood, profile)

	rec, err := s.recommendPlanned(ctx, fused.Mood, plan)
	if err != nil {
		return AnalysisRecommendation{}, err
	}

	return AnalysisRecommendation{
		Recommendation: rec,
		Analysis:       analysis,
		Fused:          fused,
		Features:       features,
		Plan:           plan,
	}, nil
}

func (s *RecommendationService) recommendPlanned(ctx context.Context, m domain.Mood, plan domain.QueryPlan) (Recommendation, error) {
	if s.source == nil {
		s.log.Info().Str("mood", string(m)).Msg("no track source configured, using local catalog")
		return s.localFallback(ctx, m, plan)
	}

	candidates, err := s.source.CollectCandidates(ctx, plan.Queries)
	if err != nil {
		if errors.Is(err, ports.ErrCatalogAuth) {
			s.log.Warn().Err(err).Str("mood", string(m)).Msg("catalog auth failed, using local catalog")
			return s.localFallback(ctx, m, plan)
		}
		return Recommendation{}, fmt.Errorf("service: failed to collect candidates: %w", err)
	}

	ranked := rank.Rank(candidates, m)
	final := rank.Diversify(ranked, rank.DefaultTarget, rank.MaxPerArtist)

	return Recommendation{
		Mood:         m,
		Tracks:       final,
		Strategy:     plan.Strategy,
		TotalFound:   len(candidates),
		Personalized: plan.Strategy == query.StrategyPersonalized,
	}, nil
}

// localFallback recommends straight from the curated catalog: songs whose
// genres suit the mood first, then a random top-up to fallbackSize.
func (s *RecommendationService) localFallback(ctx context.Context, m domain.Mood, plan domain.QueryPlan) (Recommendation, error) {
	songs, err := s.catalog.All(ctx)
	if err != nil {
		return Recommendation{}, fmt.Errorf("service: failed to load local catalog: %w", err)
	}

	genres := mood.CompatibleGenres(m)
	var matched, rest []domain.CatalogSong
	for _, song := range songs {
		if songMatchesGenres(song, genres) {
			matched = append(matched, song)
		} else {
			rest = append(rest, song)
		}
	}

	picked := matched
	if len(picked) > fallbackSize {
		picked = picked[:fallbackSize]
	} else if len(picked) < fallbackSize && len(rest) > 0 {
		picked = append(picked, s.sample(rest, fallbackSize-len(picked))...)
	}

	tracks := make([]domain.RankedTrack, 0, len(picked))
	for _, song := range picked {
		tracks = append(tracks, domain.RankedTrack{TrackCandidate: candidateFromSong(song)})
	}

	strategy := fallbackStrategy
	if plan.Strategy != "" {
		strategy = plan.Strategy + "_" + fallbackStrategy
	}

	return Recommendation{
		Mood:       m,
		Tracks:     tracks,
		Strategy:   strategy,
		TotalFound: len(tracks),
	}, nil
}

// SearchSongs searches the live catalog when available and falls back to a
// substring match over the local catalog otherwise.
func (s *RecommendationService) SearchSongs(ctx context.Context, q string, limit int) ([]domain.TrackCandidate, string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, "", &domain.ValidationError{Field: "query", Reason: "must not be empty"}
	}
	if limit <= 0 {
		limit = defaultSearchSize
	}
	if limit > maxSearchSize {
		limit = maxSearchSize
	}

	if s.source != nil {
		tracks, err := s.source.Search(ctx, q, limit)
		if err == nil {
			return tracks, "live", nil
		}
		s.log.Warn().Err(err).Str("query", q).Msg("live search failed, using local catalog")
	}

	songs, err := s.catalog.All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("service: failed to load local catalog: %w", err)
	}

	needle := strings.ToLower(q)
	var matched, rest []domain.CatalogSong
	for _, song := range songs {
		if songMatchesText(song, needle) {
			matched = append(matched, song)
		} else {
			rest = append(rest, song)
		}
	}

	picked := matched
	if len(picked) > limit {
		picked = picked[:limit]
	} else if len(picked) < limit && len(rest) > 0 {
		picked = append(picked, s.sample(rest, limit-len(picked))...)
	}

	tracks := make([]domain.TrackCandidate, 0, len(picked))
	for _, song := range picked {
		tracks = append(tracks, candidateFromSong(song))
	}
	return tracks, fallbackStrategy, nil
}

// sample picks up to n songs without replacement. With no RNG configured it
// degrades to taking songs in catalog order.
func (s *RecommendationService) sample(songs []domain.CatalogSong, n int) []domain.CatalogSong {
	if n >= len(songs) {
		return songs
	}
	if s.rng == nil {
		return songs[:n]
	}
	shuffled := make([]domain.CatalogSong, len(songs))
	copy(shuffled, songs)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func songMatchesGenres(song domain.CatalogSong, genres []string) bool {
	for _, g := range genres {
		if song.HasGenre(g) {
			return true
		}
	}
	return false
}

func songMatchesText(song domain.CatalogSong, needle string) bool {
	if strings.Contains(strings.ToLower(song.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(song.Artist), needle) {
		return true
	}
	return song.HasGenre(needle)
}

func candidateFromSong(song domain.CatalogSong) domain.TrackCandidate {
	return domain.TrackCandidate{
		ID:         song.ID,
		Title:      song.Title,
		Artist:     song.Artist,
		Album:      song.Album,
		PreviewURL: song.PreviewURL,
		CoverURL:   song.CoverURL,
		Origin:     "local-catalog",
	}
}

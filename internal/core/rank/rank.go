// Package rank scores catalog candidates against mood-specific policies and
// diversifies the final selection across artists and query strategies.
package rank

import (
	"sort"
	"strings"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// Policy is the per-mood ranking preference row.
type Policy struct {
	MinPopularity int
	PreferRecent  bool
	AvoidExplicit bool
	MinDurationMs int
	MaxDurationMs int
}

var policies = map[domain.Mood]Policy{
	domain.MoodHappy:       {MinPopularity: 50, PreferRecent: true, AvoidExplicit: true, MinDurationMs: 120000, MaxDurationMs: 300000},
	domain.MoodMelancholic: {MinPopularity: 40, PreferRecent: false, AvoidExplicit: false, MinDurationMs: 180000, MaxDurationMs: 360000},
	domain.MoodEnergetic:   {MinPopularity: 60, PreferRecent: true, AvoidExplicit: false, MinDurationMs: 150000, MaxDurationMs: 300000},
	domain.MoodPeaceful:    {MinPopularity: 45, PreferRecent: false, AvoidExplicit: true, MinDurationMs: 180000, MaxDurationMs: 420000},
	domain.MoodRomantic:    {MinPopularity: 50, PreferRecent: false, AvoidExplicit: true, MinDurationMs: 200000, MaxDurationMs: 360000},
}

// PolicyFor returns the ranking policy for a mood; moods without their own
// row rank like happy.
func PolicyFor(m domain.Mood) Policy {
	if p, ok := policies[m]; ok {
		return p
	}
	return policies[domain.MoodHappy]
}

// moodWords trigger the on-the-nose title penalty: a track literally called
// "sad song" is rarely what a melancholic image wants.
var moodWords = []string{
	"sad", "happy", "melancholy", "lonely", "depressed",
	"peaceful", "energetic", "mysterious", "romantic mood",
}

// genericArtistTerms mark stock-music suppliers whose results clutter
// phrase searches.
var genericArtistTerms = []string{
	"karaoke", "tribute", "cover band", "workout music", "meditation music",
	"sleep music", "various artists", "lullaby", "study music",
}

// Score computes a single candidate's score under a policy. Terms are
// independent and summed; the total may be negative.
func Score(t domain.TrackCandidate, p Policy) float64 {
	var score float64

	switch {
	case t.Popularity >= p.MinPopularity:
		score += minf(float64(t.Popularity)*0.6, 60)
	case t.Popularity >= 30:
		score += float64(t.Popularity) * 0.3
	default:
		score -= 20
	}

	switch {
	case t.DurationMs >= p.MinDurationMs && t.DurationMs <= p.MaxDurationMs:
		score += 20
	case t.DurationMs > 0:
		score += 10
	}

	if p.AvoidExplicit && t.Explicit {
		score -= 15
	}

	if p.PreferRecent && t.ReleaseYear > 0 {
		switch {
		case t.ReleaseYear >= 2020:
			score += 15
		case t.ReleaseYear >= 2015:
			score += 8
		}
	}

	title := strings.ToLower(t.Title)
	for _, w := range moodWords {
		if strings.Contains(title, w) {
			score -= 25
			break
		}
	}

	artist := strings.ToLower(t.Artist)
	generic := false
	for _, term := range genericArtistTerms {
		if strings.Contains(artist, term) {
			generic = true
			break
		}
	}
	if !generic {
		score += 10
	}

	return score
}

// Rank scores every candidate under the mood's policy and returns them in
// descending score order. Equal scores fall back to catalog popularity, then
// to track id, so the order is fully deterministic.
func Rank(candidates []domain.TrackCandidate, m domain.Mood) []domain.RankedTrack {
	p := PolicyFor(m)
	ranked := make([]domain.RankedTrack, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, domain.RankedTrack{TrackCandidate: c, Score: Score(c, p)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		return a.ID < b.ID
	})
	return ranked
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

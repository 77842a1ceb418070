package taste

import (
	"fmt"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

type personalityKey struct {
	genre  string
	energy string
	mood   string
}

var personalities = map[personalityKey]string{
	{"pop", "high_energy", "positive"}:          "Pop Enthusiast - You love catchy, upbeat songs that make you smile!",
	{"rock", "high_energy", "positive"}:         "Rock Warrior - You crave powerful, energetic anthems!",
	{"hip hop", "high_energy", "positive"}:      "Hip-Hop Head - You vibe with rhythmic beats and clever lyrics!",
	{"electronic", "high_energy", "positive"}:   "Electronic Explorer - You're drawn to digital soundscapes and dance beats!",
	{"indie", "medium_energy", "positive"}:      "Indie Soul - You appreciate artistic, alternative sounds!",
	{"r&b", "medium_energy", "positive"}:        "R&B Lover - You're into smooth, soulful melodies!",
	{"country", "medium_energy", "positive"}:    "Country Heart - You enjoy storytelling and authentic vibes!",
	{"alternative", "medium_energy", "neutral"}: "Alternative Spirit - You march to your own musical beat!",
}

// Personality renders a one-line description of a profile from its top genre
// and its energy/valence buckets.
func Personality(p domain.TasteProfile) string {
	topGenre := "eclectic"
	if genres := p.TopGenres(1); len(genres) > 0 {
		topGenre = genres[0]
	}

	energy := "medium_energy"
	if p.FeaturePreferences["energy"] > 0.6 {
		energy = "high_energy"
	}
	moodBucket := "neutral"
	if p.FeaturePreferences["valence"] > 0.6 {
		moodBucket = "positive"
	}

	if line, ok := personalities[personalityKey{topGenre, energy, moodBucket}]; ok {
		return line
	}
	return fmt.Sprintf("Eclectic Listener - You have diverse taste in %s and beyond!", topGenre)
}

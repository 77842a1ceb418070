package mood

import (
	"math/rand"
	"testing"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

func TestSynthesizeBlending(t *testing.T) {
	s := NewSynthesizer(nil) // no jitter

	t.Run("zero confidence lands on the neutral vector", func(t *testing.T) {
		got := s.Synthesize(domain.MoodEnergetic, 0)
		if got != domain.NeutralFeatures() {
			t.Errorf("got %+v, want neutral baseline", got)
		}
	})

	t.Run("full confidence lands on the base vector", func(t *testing.T) {
		got := s.Synthesize(domain.MoodEnergetic, 1)
		if got != BaseFeatures(domain.MoodEnergetic) {
			t.Errorf("got %+v, want energetic base vector", got)
		}
	})

	t.Run("half confidence is the midpoint", func(t *testing.T) {
		got := s.Synthesize(domain.MoodMelancholic, 0.5)
		if !almostEqual(got.Valence, (0.2+0.5)/2) {
			t.Errorf("valence = %v, want 0.35", got.Valence)
		}
		if !almostEqual(got.Tempo, (70.0+120.0)/2) {
			t.Errorf("tempo = %v, want 95", got.Tempo)
		}
	})

	t.Run("unknown mood synthesizes from the neutral baseline", func(t *testing.T) {
		got := s.Synthesize(domain.MoodNeutral, 1)
		if got != domain.NeutralFeatures() {
			t.Errorf("got %+v, want neutral baseline", got)
		}
	})
}

func TestSynthesizeJitterBounds(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		got := s.Synthesize(domain.MoodHappy, 0.9)

		for name, v := range map[string]float64{
			"valence":          got.Valence,
			"energy":           got.Energy,
			"danceability":     got.Danceability,
			"acousticness":     got.Acousticness,
			"instrumentalness": got.Instrumentalness,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("%s = %v, want within [0,1]", name, v)
			}
		}
		if got.Tempo < 60 || got.Tempo > 200 {
			t.Fatalf("tempo = %v, want within [60,200]", got.Tempo)
		}

		// Jitter never widens the band beyond ±0.1 / ±10 around the blend.
		base := NewSynthesizer(nil).Synthesize(domain.MoodHappy, 0.9)
		if diff := got.Valence - base.Valence; diff > 0.1+1e-9 || diff < -0.1-1e-9 {
			t.Fatalf("valence jitter = %v, want within ±0.1", diff)
		}
		if diff := got.Tempo - base.Tempo; diff > 10+1e-9 || diff < -10-1e-9 {
			t.Fatalf("tempo jitter = %v, want within ±10", diff)
		}
	}
}

func TestBaseFeaturesTable(t *testing.T) {
	for _, m := range domain.Moods {
		if m == domain.MoodNeutral {
			continue
		}
		f := BaseFeatures(m)
		if f == (domain.AudioFeatures{}) {
			t.Errorf("mood %q has no base feature row", m)
		}
		if f.Tempo < 60 || f.Tempo > 200 {
			t.Errorf("mood %q base tempo %v out of range", m, f.Tempo)
		}
	}
}

func TestCompatibleGenresTable(t *testing.T) {
	for _, m := range domain.Moods {
		if m == domain.MoodNeutral {
			continue
		}
		if len(CompatibleGenres(m)) == 0 {
			t.Errorf("mood %q has no compatible genres", m)
		}
	}
}

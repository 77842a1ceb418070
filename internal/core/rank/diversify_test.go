package rank

import (
	"strings"
	"testing"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

func rt(id, artist, origin string, popularity int, score float64) domain.RankedTrack {
	return domain.RankedTrack{
		TrackCandidate: domain.TrackCandidate{ID: id, Artist: artist, Origin: origin, Popularity: popularity},
		Score:          score,
	}
}

func TestDiversifyInvariants(t *testing.T) {
	var tracks []domain.RankedTrack
	// 12 tracks from three origins, two prolific artists.
	tracks = append(tracks,
		rt("s1", "Artist A", "scene-genre", 90, 100),
		rt("s2", "Artist A", "scene-genre", 85, 95),
		rt("s3", "Artist A", "scene-genre", 80, 90),
		rt("s4", "Artist B", "scene-genre", 75, 85),
		rt("u1", "Artist B", "user-genre", 70, 80),
		rt("u2", "artist b", "user-genre", 65, 75), // same artist, different case
		rt("u3", "Artist C", "user-genre", 60, 70),
		rt("p1", "Artist D", "mood-popular", 55, 65),
		rt("p2", "Artist E", "mood-popular", 50, 60),
		rt("p3", "Artist F", "mood-popular", 45, 55),
		rt("p4", "Artist G", "mood-popular", 40, 50),
		rt("p5", "Artist H", "mood-popular", 35, 45),
	)

	out := Diversify(tracks, DefaultTarget, MaxPerArtist)

	if len(out) > DefaultTarget {
		t.Fatalf("len(out) = %d, want <= %d", len(out), DefaultTarget)
	}

	seen := make(map[string]bool)
	artistCount := make(map[string]int)
	for _, tr := range out {
		if seen[tr.ID] {
			t.Errorf("duplicate id %q in output", tr.ID)
		}
		seen[tr.ID] = true
		artistCount[strings.ToLower(tr.Artist)]++
	}
	for artist, n := range artistCount {
		if n > MaxPerArtist {
			t.Errorf("artist %q appears %d times, want <= %d", artist, n, MaxPerArtist)
		}
	}

	for i := 1; i < len(out); i++ {
		if out[i].Popularity > out[i-1].Popularity {
			t.Errorf("output not sorted by popularity: %d after %d", out[i].Popularity, out[i-1].Popularity)
		}
	}
}

func TestDiversifyRoundRobinAcrossOrigins(t *testing.T) {
	tracks := []domain.RankedTrack{
		rt("s1", "A1", "scene-genre", 90, 100),
		rt("s2", "A2", "scene-genre", 85, 95),
		rt("u1", "B1", "user-genre", 70, 80),
		rt("u2", "B2", "user-genre", 65, 75),
		rt("p1", "C1", "mood-popular", 55, 65),
		rt("p2", "C2", "mood-popular", 50, 60),
	}

	out := Diversify(tracks, 3, MaxPerArtist)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	origins := map[string]bool{}
	for _, tr := range out {
		origins[tr.Origin] = true
	}
	if len(origins) != 3 {
		t.Errorf("first round-robin pass covered %d origins, want all 3", len(origins))
	}
}

func TestDiversifyExhaustedGroupIsSkipped(t *testing.T) {
	tracks := []domain.RankedTrack{
		rt("s1", "A", "scene-genre", 90, 100),
		rt("p1", "B", "mood-popular", 55, 65),
		rt("p2", "C", "mood-popular", 50, 60),
		rt("p3", "D", "mood-popular", 45, 55),
	}

	out := Diversify(tracks, 4, MaxPerArtist)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want all 4 tracks", len(out))
	}
}

func TestDiversifyDedupesById(t *testing.T) {
	tracks := []domain.RankedTrack{
		rt("x", "A", "scene-genre", 90, 100),
		rt("x", "A", "user-genre", 90, 100),
		rt("y", "B", "user-genre", 70, 80),
	}
	out := Diversify(tracks, DefaultTarget, MaxPerArtist)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}

func TestDiversifyEmptyInput(t *testing.T) {
	if out := Diversify(nil, DefaultTarget, MaxPerArtist); out != nil {
		t.Errorf("Diversify(nil) = %v, want nil", out)
	}
}

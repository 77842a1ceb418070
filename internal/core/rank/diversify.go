package rank

import (
	"sort"
	"strings"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

const (
	// DefaultTarget is the size of the final recommendation list.
	DefaultTarget = 8
	// MaxPerArtist caps how often one artist may appear in the output.
	MaxPerArtist = 2
)

// Diversify balances the final selection across query origins and artists.
// Tracks are grouped by origin tag in first-seen order and consumed
// round-robin; within a group the ranking order is preserved, and a track is
// skipped while its artist is already at the cap. A group with no eligible
// track left is marked exhausted. The result is re-sorted by popularity for
// presentation.
func Diversify(tracks []domain.RankedTrack, target, maxPerArtist int) []domain.RankedTrack {
	if len(tracks) == 0 {
		return nil
	}
	if target <= 0 {
		target = DefaultTarget
	}
	if maxPerArtist <= 0 {
		maxPerArtist = MaxPerArtist
	}

	// Dedupe by id first; earlier entries win.
	seen := make(map[string]bool, len(tracks))
	var groupOrder []string
	groups := make(map[string][]domain.RankedTrack)
	for _, t := range tracks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		origin := t.Origin
		if _, ok := groups[origin]; !ok {
			groupOrder = append(groupOrder, origin)
		}
		groups[origin] = append(groups[origin], t)
	}

	artistCount := make(map[string]int)
	var out []domain.RankedTrack
	exhausted := make(map[string]bool)

	for i := 0; len(out) < target && len(exhausted) < len(groupOrder); i++ {
		origin := groupOrder[i%len(groupOrder)]
		if exhausted[origin] {
			continue
		}
		group := groups[origin]
		picked := -1
		for j, t := range group {
			artist := strings.ToLower(t.Artist)
			if artistCount[artist] < maxPerArtist {
				picked = j
				artistCount[artist]++
				out = append(out, t)
				break
			}
		}
		if picked == -1 {
			exhausted[origin] = true
			continue
		}
		groups[origin] = append(group[:picked:picked], group[picked+1:]...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	return out
}

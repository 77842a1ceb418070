package spotify

import (
	"strconv"
	"strings"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// mapTrackToDomain converts a raw catalog track into a clean candidate.
func mapTrackToDomain(wt wireTrack) domain.TrackCandidate {
	var artistNames []string
	for _, a := range wt.Artists {
		artistNames = append(artistNames, a.Name)
	}

	coverURL := ""
	if len(wt.Album.Images) > 0 {
		coverURL = wt.Album.Images[0].URL
	}

	return domain.TrackCandidate{
		ID:          wt.ID,
		Title:       wt.Name,
		Artist:      strings.Join(artistNames, ", "),
		Album:       wt.Album.Name,
		Popularity:  wt.Popularity,
		DurationMs:  wt.DurationMs,
		Explicit:    wt.Explicit,
		ReleaseYear: parseReleaseYear(wt.Album.ReleaseDate),
		PreviewURL:  wt.PreviewURL,
		ExternalURL: wt.ExternalURLs.Spotify,
		CoverURL:    coverURL,
	}
}

// parseReleaseYear pulls the year out of a release date, which the catalog
// reports as "2020", "2020-06" or "2020-06-15". Zero means unknown.
func parseReleaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

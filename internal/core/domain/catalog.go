package domain

import "strings"

// CatalogSong is an entry of the curated local catalog. The catalog serves
// the preference quiz and doubles as the fallback source when the live
// catalog is unreachable.
type CatalogSong struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Artist     string        `json:"artist"`
	Album      string        `json:"album"`
	Genres     []string      `json:"genres"`
	PreviewURL string        `json:"preview_url,omitempty"`
	CoverURL   string        `json:"cover_url,omitempty"`
	Features   AudioFeatures `json:"audio_features"`
}

// HasGenre reports whether any of the song's genres contains the given
// fragment, case-insensitively. Genre matching throughout the pipeline is
// substring-based ("indie pop" matches "pop").
func (s CatalogSong) HasGenre(fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, g := range s.Genres {
		if strings.Contains(strings.ToLower(g), fragment) {
			return true
		}
	}
	return false
}

package domain

// SearchQuery is one entry of a query plan. Origin records which strategy
// produced the query and travels with every result it finds, so the
// diversification step can balance across strategies.
type SearchQuery struct {
	Text   string `json:"text"`
	Origin string `json:"origin"`
}

// Origin tags for query plan entries.
const (
	OriginSceneGenre  = "scene-genre"
	OriginUserGenre   = "user-genre"
	OriginMoodPopular = "mood-popular"
)

// QueryPlan is the ordered set of catalog searches for one request.
type QueryPlan struct {
	Queries  []SearchQuery `json:"queries"`
	Strategy string        `json:"strategy"`
	Mood     Mood          `json:"mood"`
}

// TrackCandidate is a track as returned by the catalog search, before
// scoring. ReleaseYear is 0 when the catalog did not report a release date.
type TrackCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Popularity  int    `json:"popularity"`
	DurationMs  int    `json:"duration_ms"`
	Explicit    bool   `json:"explicit"`
	ReleaseYear int    `json:"release_year,omitempty"`
	PreviewURL  string `json:"preview_url,omitempty"`
	ExternalURL string `json:"external_url"`
	CoverURL    string `json:"cover_url,omitempty"`
	Origin      string `json:"origin,omitempty"`
}

// RankedTrack is a candidate plus its policy score. Scores may be negative.
type RankedTrack struct {
	TrackCandidate
	Score float64 `json:"score"`
}

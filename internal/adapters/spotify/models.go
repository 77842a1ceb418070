package spotify

// Wire types for the catalog search response. Only the fields the pipeline
// consumes are declared.

type searchResponse struct {
	Tracks struct {
		Items []wireTrack `json:"items"`
	} `json:"tracks"`
}

type wireTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
		ReleaseDate string `json:"release_date"`
	} `json:"album"`
	PreviewURL   string `json:"preview_url"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Popularity int  `json:"popularity"`
	DurationMs int  `json:"duration_ms"`
	Explicit   bool `json:"explicit"`
}

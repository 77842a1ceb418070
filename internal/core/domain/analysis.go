package domain

// DominantColor is one entry of the captioner's color breakdown. Percentage
// is the share of the image covered by the color, in [0,100].
type DominantColor struct {
	R          int     `json:"r"`
	G          int     `json:"g"`
	B          int     `json:"b"`
	Percentage float64 `json:"percentage"`
}

// AnalysisResult is what an image analyzer hands the pipeline. Any mood the
// analyzer itself guessed is deliberately absent: the fusion engine is the
// only authority on mood.
type AnalysisResult struct {
	Caption string          `json:"caption"`
	Colors  []DominantColor `json:"dominant_colors,omitempty"`
	Method  string          `json:"analysis_method"`
}

package domain

// AudioFeatures describes a target sound in catalog terms. The six unit
// fields live in [0,1]; Tempo is BPM in [60,200].
type AudioFeatures struct {
	Valence          float64 `json:"valence"`
	Energy           float64 `json:"energy"`
	Danceability     float64 `json:"danceability"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
}

// NeutralFeatures is the baseline every low-confidence classification is
// blended toward.
func NeutralFeatures() AudioFeatures {
	return AudioFeatures{
		Valence:          0.5,
		Energy:           0.5,
		Danceability:     0.5,
		Acousticness:     0.5,
		Instrumentalness: 0.3,
		Speechiness:      0.1,
		Tempo:            120,
	}
}

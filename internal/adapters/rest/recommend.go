package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

type recommendationsRequest struct {
	Mood    string               `json:"mood"`
	Caption string               `json:"caption,omitempty"`
	Profile *domain.TasteProfile `json:"user_profile,omitempty"`
}

type recommendationsResponse struct {
	Success      bool                 `json:"success"`
	Mood         domain.Mood          `json:"mood"`
	Tracks       []domain.RankedTrack `json:"recommendations"`
	Strategy     string               `json:"search_strategy"`
	TotalFound   int                  `json:"total_found"`
	Personalized bool                 `json:"personalized"`
}

// Recommendations handles POST /recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.recommend.Recommend(r.Context(), req.Mood, req.Profile)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		Success:      true,
		Mood:         rec.Mood,
		Tracks:       rec.Tracks,
		Strategy:     rec.Strategy,
		TotalFound:   rec.TotalFound,
		Personalized: rec.Personalized,
	})
}

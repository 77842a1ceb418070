package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

type searchSongsResponse struct {
	Success bool                    `json:"success"`
	Tracks  []domain.TrackCandidate `json:"songs"`
	Source  string                  `json:"source"`
	Total   int                     `json:"total"`
}

// SearchSongs handles GET /search/songs.
func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	tracks, source, err := h.recommend.SearchSongs(r.Context(), query, limit)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, searchSongsResponse{Success: true, Tracks: tracks, Source: source, Total: len(tracks)})
}

package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/services"
)

type quizSongsResponse struct {
	Success bool                `json:"success"`
	Songs   []services.QuizSong `json:"songs"`
	Total   int                 `json:"total"`
}

// QuizSongs handles GET /quiz/songs.
func (h *Handler) QuizSongs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	songs, err := h.quiz.QuizSongs(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quizSongsResponse{Success: true, Songs: songs, Total: len(songs)})
}

type quizPreferencesRequest struct {
	UserID  string              `json:"user_id,omitempty"`
	Ratings []domain.SongRating `json:"song_ratings"`
}

type quizPreferencesResponse struct {
	Success bool                    `json:"success"`
	Profile domain.TasteProfile     `json:"profile"`
	Summary services.ProfileSummary `json:"summary"`
}

// QuizPreferences handles POST /quiz/preferences.
func (h *Handler) QuizPreferences(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req quizPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, summary, err := h.quiz.CalculatePreferences(r.Context(), req.UserID, req.Ratings)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quizPreferencesResponse{Success: true, Profile: profile, Summary: summary})
}

// Package rest is the caller-facing HTTP surface.
package rest

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/core/services"
)

// Handler manages the HTTP interface for the service.
type Handler struct {
	recommend *services.RecommendationService
	quiz      *services.QuizService
	router    *http.ServeMux
	log       zerolog.Logger
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(recommend *services.RecommendationService, quiz *services.QuizService, log zerolog.Logger) *Handler {
	h := &Handler{
		recommend: recommend,
		quiz:      quiz,
		router:    http.NewServeMux(),
		log:       log.With().Str("component", "rest").Logger(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.HandleFunc("POST /recommendations", h.Recommendations)
	h.router.HandleFunc("POST /analyze", h.Analyze)
	h.router.HandleFunc("GET /quiz/songs", h.QuizSongs)
	h.router.HandleFunc("POST /quiz/preferences", h.QuizPreferences)
	h.router.HandleFunc("GET /search/songs", h.SearchSongs)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

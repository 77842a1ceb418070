package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/services"
)

const maxImageBytes = 10 << 20

type analyzeResponse struct {
	Success bool `json:"success"`
	services.AnalysisRecommendation
}

// Analyze handles POST /analyze. The image arrives either as the raw request
// body or as the "image" part of a multipart form; the form may also carry a
// "user_profile" JSON part.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	image, profile, err := readAnalyzeInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.recommend.AnalyzeAndRecommend(r.Context(), image, profile)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, AnalysisRecommendation: result})
}

func readAnalyzeInput(r *http.Request) ([]byte, *domain.TasteProfile, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			return nil, nil, errors.New("invalid multipart form")
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			return nil, nil, errors.New("image file is required")
		}
		defer file.Close()

		image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			return nil, nil, errors.New("failed to read image")
		}

		var profile *domain.TasteProfile
		if raw := r.FormValue("user_profile"); raw != "" {
			profile = &domain.TasteProfile{}
			if err := json.Unmarshal([]byte(raw), profile); err != nil {
				return nil, nil, errors.New("invalid user_profile")
			}
		}
		return image, profile, nil
	}

	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		return nil, nil, errors.New("failed to read request body")
	}
	return image, nil, nil
}

// Package captioner provides image analyzers: an HTTP client for the
// ML captioning service and a local heuristic fallback that works on
// raw pixels alone.
package captioner

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
)

const defaultBaseURL = "http://localhost:8001"

// MLClient calls the captioning service over HTTP.
type MLClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.ImageAnalyzer = (*MLClient)(nil)

type analyzeRequest struct {
	Image string `json:"image"`
}

type wireColor struct {
	R          int     `json:"r"`
	G          int     `json:"g"`
	B          int     `json:"b"`
	Percentage float64 `json:"percentage"`
}

type analyzeResponse struct {
	Caption        string      `json:"caption"`
	DominantColors []wireColor `json:"dominant_colors"`
	Mood           string      `json:"mood,omitempty"`
	Error          string      `json:"error,omitempty"`
}

func NewMLClient(baseURL string) *MLClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &MLClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Analyze sends the image to the captioning service. The service also
// reports a mood guess, but fusion owns the mood decision so that field
// is dropped here.
func (c *MLClient) Analyze(ctx context.Context, image []byte) (domain.AnalysisResult, error) {
	payload := analyzeRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: %w: %v", ports.ErrCaptionerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: %w: status %d", ports.ErrCaptionerUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: unexpected status %d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: decode response: %w", err)
	}
	if parsed.Error != "" {
		return domain.AnalysisResult{}, fmt.Errorf("captioner: %s", parsed.Error)
	}

	colors := make([]domain.DominantColor, 0, len(parsed.DominantColors))
	for _, wc := range parsed.DominantColors {
		colors = append(colors, domain.DominantColor{
			R:          wc.R,
			G:          wc.G,
			B:          wc.B,
			Percentage: wc.Percentage,
		})
	}

	return domain.AnalysisResult{
		Caption: parsed.Caption,
		Colors:  colors,
		Method:  "ml",
	}, nil
}

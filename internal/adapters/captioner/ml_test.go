package captioner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/echolens-labs/echolens/internal/core/ports"
)

func TestMLClientAnalyze(t *testing.T) {
	image := []byte{0x89, 0x50, 0x4e, 0x47}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req analyzeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("request body: %v", err)
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil || string(decoded) != string(image) {
			t.Errorf("image payload not base64 round-trippable: %v", err)
		}

		_ = json.NewEncoder(w).Encode(analyzeResponse{
			Caption: "a sunny beach",
			DominantColors: []wireColor{
				{R: 255, G: 221, B: 51, Percentage: 40},
				{R: 51, G: 153, B: 230, Percentage: 30},
			},
			Mood: "energetic", // service opinion, must be dropped
		})
	}))
	defer ts.Close()

	result, err := NewMLClient(ts.URL).Analyze(context.Background(), image)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Caption != "a sunny beach" {
		t.Errorf("caption = %q", result.Caption)
	}
	if len(result.Colors) != 2 || result.Colors[0].R != 255 {
		t.Errorf("colors = %+v", result.Colors)
	}
	if result.Method != "ml" {
		t.Errorf("method = %q, want ml", result.Method)
	}
}

func TestMLClientUnavailable(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		_, err := NewMLClient(ts.URL).Analyze(context.Background(), []byte("img"))
		if !errors.Is(err, ports.ErrCaptionerUnavailable) {
			t.Fatalf("err = %v, want ErrCaptionerUnavailable", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		ts.Close() // server gone before the call

		_, err := NewMLClient(ts.URL).Analyze(context.Background(), []byte("img"))
		if !errors.Is(err, ports.ErrCaptionerUnavailable) {
			t.Fatalf("err = %v, want ErrCaptionerUnavailable", err)
		}
	})

	t.Run("client error is not unavailability", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer ts.Close()

		_, err := NewMLClient(ts.URL).Analyze(context.Background(), []byte("img"))
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, ports.ErrCaptionerUnavailable) {
			t.Fatalf("400 should not map to ErrCaptionerUnavailable: %v", err)
		}
	})
}

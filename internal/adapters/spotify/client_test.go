package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
)

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("invalid_client")
}

func staticTokens() *TokenCache {
	return &TokenCache{src: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})}
}

func failingTokens() *TokenCache {
	return &TokenCache{src: failingTokenSource{}}
}

func wireBody(tracks ...wireTrack) []byte {
	var resp searchResponse
	resp.Tracks.Items = tracks
	body, _ := json.Marshal(resp)
	return body
}

func wire(id, name, artist string, popularity int) wireTrack {
	var wt wireTrack
	wt.ID = id
	wt.Name = name
	wt.Artists = []struct {
		Name string `json:"name"`
	}{{Name: artist}}
	wt.Popularity = popularity
	return wt
}

func testClient(baseURL string, tokens *TokenCache) *Client {
	return &Client{
		httpClient:  http.DefaultClient,
		baseURL:     baseURL,
		tokens:      tokens,
		log:         zerolog.Nop(),
		maxRetries:  1,
		baseBackoff: time.Millisecond,
	}
}

func TestClientSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("type") != "track" || q.Get("market") != "US" {
			t.Errorf("unexpected query params: %v", q)
		}
		if q.Get("q") != "calm acoustic" || q.Get("limit") != "5" {
			t.Errorf("q=%q limit=%q", q.Get("q"), q.Get("limit"))
		}

		var resp searchResponse
		item := wire("t1", "Quiet River", "River Folk", 61)
		item.Album.Name = "Streams"
		item.Album.ReleaseDate = "2021-03-12"
		item.Album.Images = []struct {
			URL string `json:"url"`
		}{{URL: "https://img/cover.jpg"}}
		item.DurationMs = 215000
		resp.Tracks.Items = []wireTrack{item}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client := testClient(ts.URL, staticTokens())
	tracks, err := client.Search(context.Background(), "calm acoustic", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("len(tracks) = %d, want 1", len(tracks))
	}

	got := tracks[0]
	if got.ID != "t1" || got.Title != "Quiet River" || got.Artist != "River Folk" {
		t.Errorf("mapped track = %+v", got)
	}
	if got.ReleaseYear != 2021 {
		t.Errorf("ReleaseYear = %d, want 2021", got.ReleaseYear)
	}
	if got.CoverURL != "https://img/cover.jpg" {
		t.Errorf("CoverURL = %q", got.CoverURL)
	}
}

func TestClientSearchAuthRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := testClient(ts.URL, staticTokens())
	_, err := client.Search(context.Background(), "anything", 5)
	if !errors.Is(err, ports.ErrCatalogAuth) {
		t.Fatalf("err = %v, want ErrCatalogAuth", err)
	}
}

func TestCollectCandidatesTokenFailure(t *testing.T) {
	client := testClient("http://unused.invalid", failingTokens())
	_, err := client.CollectCandidates(context.Background(), []domain.SearchQuery{
		{Text: "genre:pop", Origin: domain.OriginSceneGenre},
	})
	if !errors.Is(err, ports.ErrCatalogAuth) {
		t.Fatalf("err = %v, want ErrCatalogAuth", err)
	}
}

func TestCollectCandidatesMergeOrderAndDedup(t *testing.T) {
	// The shared track appears in both queries; the first query's version
	// must win and keep its origin tag.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "first":
			w.Write(wireBody(wire("shared", "Shared Song", "A", 50), wire("only-first", "First Song", "B", 40)))
		case "second":
			w.Write(wireBody(wire("shared", "Shared Song", "A", 50), wire("only-second", "Second Song", "C", 30)))
		default:
			w.Write(wireBody())
		}
	}))
	defer ts.Close()

	client := testClient(ts.URL, staticTokens())
	got, err := client.CollectCandidates(context.Background(), []domain.SearchQuery{
		{Text: "first", Origin: domain.OriginSceneGenre},
		{Text: "second", Origin: domain.OriginMoodPopular},
	})
	if err != nil {
		t.Fatalf("CollectCandidates: %v", err)
	}

	wantIDs := []string{"shared", "only-first", "only-second"}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	if got[0].Origin != domain.OriginSceneGenre {
		t.Errorf("shared track origin = %q, want the first query's origin", got[0].Origin)
	}
	if got[2].Origin != domain.OriginMoodPopular {
		t.Errorf("only-second origin = %q", got[2].Origin)
	}
}

func TestCollectCandidatesSkipsFailedQueries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "broken" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write(wireBody(wire("ok", "Fine Song", "D", 70)))
	}))
	defer ts.Close()

	client := testClient(ts.URL, staticTokens())
	got, err := client.CollectCandidates(context.Background(), []domain.SearchQuery{
		{Text: "broken", Origin: domain.OriginSceneGenre},
		{Text: "fine", Origin: domain.OriginMoodPopular},
	})
	if err != nil {
		t.Fatalf("CollectCandidates: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("got = %+v, want just the healthy query's track", got)
	}
}

func TestCollectCandidatesCapsQueries(t *testing.T) {
	served := make(chan string, 16)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served <- r.URL.Query().Get("q")
		w.Write(wireBody())
	}))
	defer ts.Close()

	queries := make([]domain.SearchQuery, 8)
	for i := range queries {
		queries[i] = domain.SearchQuery{Text: fmt.Sprintf("q%d", i), Origin: domain.OriginSceneGenre}
	}

	client := testClient(ts.URL, staticTokens())
	if _, err := client.CollectCandidates(context.Background(), queries); err != nil {
		t.Fatalf("CollectCandidates: %v", err)
	}
	close(served)

	count := 0
	for range served {
		count++
	}
	if count != maxPlanQueries {
		t.Errorf("served %d queries, want %d", count, maxPlanQueries)
	}
}

func TestCollectCandidatesCanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(wireBody(wire("x", "X", "A", 10)))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := testClient(ts.URL, staticTokens())
	got, err := client.CollectCandidates(ctx, []domain.SearchQuery{
		{Text: "anything", Origin: domain.OriginSceneGenre},
	})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if got != nil {
		t.Errorf("partial results returned on cancelation: %v", got)
	}
}

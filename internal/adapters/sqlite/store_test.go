package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/echolens-labs/echolens/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSeedsCatalog(t *testing.T) {
	store := newTestStore(t)

	songs, err := store.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(songs) != len(seedSongs) {
		t.Fatalf("got %d songs, want %d", len(songs), len(seedSongs))
	}

	for _, song := range songs {
		if song.ID == "" || song.Title == "" || song.Artist == "" {
			t.Errorf("incomplete song: %+v", song)
		}
		if len(song.Genres) == 0 {
			t.Errorf("song %s has no genres", song.ID)
		}
	}

	// Sorted by id, so the first row is deterministic across runs.
	for i := 1; i < len(songs); i++ {
		if songs[i-1].ID >= songs[i].ID {
			t.Fatalf("songs not ordered by id: %s before %s", songs[i-1].ID, songs[i].ID)
		}
	}
}

func TestStoreGetByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	song, err := store.GetByID(ctx, "4uLU6hMCjMI75M1A2tKUQC")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if song.Title != "Anti-Hero" || song.Artist != "Taylor Swift" {
		t.Errorf("song = %q by %q", song.Title, song.Artist)
	}
	if len(song.Genres) != 2 || song.Genres[0] != "pop" || song.Genres[1] != "indie pop" {
		t.Errorf("genres = %v", song.Genres)
	}
	if song.Features.Tempo != 96.881 {
		t.Errorf("tempo = %v", song.Features.Tempo)
	}

	if _, err := store.GetByID(ctx, "no-such-song"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestStoreUpdateFeatures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	features := domain.AudioFeatures{
		Valence:      0.9,
		Energy:       0.42,
		Danceability: 0.7,
		Acousticness: 0.1,
		Speechiness:  0.05,
		Tempo:        128,
	}
	if err := store.UpdateFeatures(ctx, "4uLU6hMCjMI75M1A2tKUQC", features); err != nil {
		t.Fatalf("UpdateFeatures: %v", err)
	}

	song, err := store.GetByID(ctx, "4uLU6hMCjMI75M1A2tKUQC")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if song.Features != features {
		t.Errorf("features = %+v, want %+v", song.Features, features)
	}

	if err := store.UpdateFeatures(ctx, "no-such-song", features); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestStoreDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	updated := domain.AudioFeatures{Valence: 0.11, Energy: 0.22, Tempo: 99}
	if err := store.UpdateFeatures(ctx, "4uLU6hMCjMI75M1A2tKUQC", updated); err != nil {
		t.Fatalf("UpdateFeatures: %v", err)
	}
	store.Close()

	// Reopening an already populated database must not overwrite rows.
	store, err = NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	song, err := store.GetByID(ctx, "4uLU6hMCjMI75M1A2tKUQC")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if song.Features != updated {
		t.Errorf("features = %+v, want the updated values preserved", song.Features)
	}
}

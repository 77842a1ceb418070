// Package sqlite provides a SQLite-backed implementation of the song
// catalog port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/echolens-labs/echolens/internal/core/domain"
)

// Store implements the catalog port for SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a connection, runs the schema migration, and seeds
// the curated songs when the table is empty.
func NewStore(storagePath string) (*Store, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	if err := store.seedIfEmpty(); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	return store, nil
}

// Close ensures the DB connection is closed gracefully.
func (s *Store) Close() error {
	return s.db.Close()
}

const songColumns = `id, title, artist, album, genres, preview_url, cover_url,
		IFNULL(valence, 0), IFNULL(energy, 0), IFNULL(danceability, 0),
		IFNULL(acousticness, 0), IFNULL(instrumentalness, 0),
		IFNULL(speechiness, 0), IFNULL(tempo, 0)`

func (s *Store) All(ctx context.Context) ([]domain.CatalogSong, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+songColumns+" FROM songs ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.CatalogSong
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate songs: %w", err)
	}

	return songs, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (domain.CatalogSong, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+songColumns+" FROM songs WHERE id = ?", id)
	song, err := scanSong(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CatalogSong{}, domain.ErrNotFound
		}
		return domain.CatalogSong{}, err
	}
	return song, nil
}

func (s *Store) UpdateFeatures(ctx context.Context, id string, features domain.AudioFeatures) error {
	query := `
		UPDATE songs
		SET
			valence = ?,
			energy = ?,
			danceability = ?,
			acousticness = ?,
			instrumentalness = ?,
			speechiness = ?,
			tempo = ?
		WHERE id = ?
	`
	res, err := s.db.ExecContext(
		ctx,
		query,
		features.Valence,
		features.Energy,
		features.Danceability,
		features.Acousticness,
		features.Instrumentalness,
		features.Speechiness,
		features.Tempo,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update song features: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (domain.CatalogSong, error) {
	var song domain.CatalogSong
	var album, genres, previewURL, coverURL sql.NullString
	if err := row.Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&album,
		&genres,
		&previewURL,
		&coverURL,
		&song.Features.Valence,
		&song.Features.Energy,
		&song.Features.Danceability,
		&song.Features.Acousticness,
		&song.Features.Instrumentalness,
		&song.Features.Speechiness,
		&song.Features.Tempo,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CatalogSong{}, err
		}
		return domain.CatalogSong{}, fmt.Errorf("failed to scan song: %w", err)
	}
	if album.Valid {
		song.Album = album.String
	}
	if genres.Valid && genres.String != "" {
		song.Genres = strings.Split(genres.String, ",")
	}
	if previewURL.Valid {
		song.PreviewURL = previewURL.String
	}
	if coverURL.Valid {
		song.CoverURL = coverURL.String
	}

	return song, nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS songs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		album TEXT,
		genres TEXT,
		preview_url TEXT,
		cover_url TEXT,
		valence REAL,
		energy REAL,
		danceability REAL,
		acousticness REAL,
		instrumentalness REAL,
		speechiness REAL,
		tempo REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}

	return nil
}

func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM songs").Scan(&count); err != nil {
		return fmt.Errorf("failed to count songs: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO songs (
			id, title, artist, album, genres, preview_url, cover_url,
			valence, energy, danceability, acousticness, instrumentalness, speechiness, tempo
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, song := range seedSongs {
		if _, err := stmt.Exec(
			song.ID,
			song.Title,
			song.Artist,
			song.Album,
			strings.Join(song.Genres, ","),
			song.PreviewURL,
			song.CoverURL,
			song.Features.Valence,
			song.Features.Energy,
			song.Features.Danceability,
			song.Features.Acousticness,
			song.Features.Instrumentalness,
			song.Features.Speechiness,
			song.Features.Tempo,
		); err != nil {
			return fmt.Errorf("failed to seed song %s: %w", song.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

// Package config loads service configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spotify holds the live-catalog credentials and endpoints. Empty
// credentials are legal: the service then serves from the local catalog.
type Spotify struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TokenURL     string `yaml:"token_url"`
	APIBaseURL   string `yaml:"api_base_url"`
}

// Config is the full service configuration.
type Config struct {
	ListenAddr    string  `yaml:"listen_addr"`
	CatalogDBPath string  `yaml:"catalog_db_path"`
	Analyzer      string  `yaml:"analyzer"` // "ml" or "heuristic"
	CaptionerURL  string  `yaml:"captioner_url"`
	Spotify       Spotify `yaml:"spotify"`
	WorkerCount   int     `yaml:"worker_count"`
	WorkerQueue   int     `yaml:"worker_queue"`
}

func defaults() Config {
	return Config{
		ListenAddr:    ":8080",
		CatalogDBPath: "echolens.db",
		Analyzer:      "heuristic",
		Spotify: Spotify{
			TokenURL:   "https://accounts.spotify.com/api/token",
			APIBaseURL: "https://api.spotify.com/v1",
		},
		WorkerCount: 2,
		WorkerQueue: 100,
	}
}

// Load reads the YAML file at path (when non-empty and present) over the
// defaults and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Analyzer != "ml" && cfg.Analyzer != "heuristic" {
		return Config{}, fmt.Errorf("config: unknown analyzer %q", cfg.Analyzer)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	setFromEnv(&cfg.CatalogDBPath, "CATALOG_DB_PATH")
	setFromEnv(&cfg.Analyzer, "ANALYZER")
	setFromEnv(&cfg.CaptionerURL, "CAPTIONER_URL")
	setFromEnv(&cfg.Spotify.ClientID, "SPOTIFY_CLIENT_ID")
	setFromEnv(&cfg.Spotify.ClientSecret, "SPOTIFY_CLIENT_SECRET")
	setFromEnv(&cfg.Spotify.TokenURL, "SPOTIFY_TOKEN_URL")
	setFromEnv(&cfg.Spotify.APIBaseURL, "SPOTIFY_API_BASE_URL")
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// HasSpotifyCredentials reports whether the live catalog can be used.
func (c Config) HasSpotifyCredentials() bool {
	return c.Spotify.ClientID != "" && c.Spotify.ClientSecret != ""
}

package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/adapters/captioner"
	"github.com/echolens-labs/echolens/internal/adapters/rest"
	"github.com/echolens-labs/echolens/internal/adapters/spotify"
	"github.com/echolens-labs/echolens/internal/adapters/sqlite"
	"github.com/echolens-labs/echolens/internal/config"
	"github.com/echolens-labs/echolens/internal/core/mood"
	"github.com/echolens-labs/echolens/internal/core/ports"
	"github.com/echolens-labs/echolens/internal/core/services"
	"github.com/echolens-labs/echolens/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := sqlite.NewStore(cfg.CatalogDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog store")
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// The track source stays nil without credentials; the services then
	// serve every request from the local catalog.
	var source ports.TrackSource
	if cfg.HasSpotifyCredentials() {
		tokens := spotify.NewTokenCache(context.Background(), cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL)
		source = spotify.NewClient(nil, cfg.Spotify.APIBaseURL, tokens, log)
	} else {
		log.Warn().Msg("no catalog credentials configured, running in local-fallback mode")
	}

	heuristic := captioner.NewHeuristic()
	var analyzer ports.ImageAnalyzer = heuristic
	if cfg.Analyzer == "ml" {
		analyzer = captioner.NewMLClient(cfg.CaptionerURL)
	}

	synth := mood.NewSynthesizer(rng)
	recommendSvc := services.NewRecommendationService(source, store, analyzer, heuristic, synth, rng, log)
	quizSvc := services.NewQuizService(store, rng, log)

	pool := worker.NewPool(store, cfg.WorkerQueue, log)
	pool.Start(cfg.WorkerCount)
	defer pool.Stop()
	enqueuePreviews(context.Background(), store, pool, log)

	handler := rest.NewHandler(recommendSvc, quizSvc, log)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Str("analyzer", cfg.Analyzer).Msg("echolens api starting")

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}
}

// enqueuePreviews schedules a preview-energy pass over every catalog song
// that carries a preview URL.
func enqueuePreviews(ctx context.Context, store *sqlite.Store, pool *worker.Pool, log zerolog.Logger) {
	songs, err := store.All(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load catalog for preview analysis")
		return
	}
	for _, song := range songs {
		if song.PreviewURL == "" {
			continue
		}
		pool.Submit(worker.Job{SongID: song.ID, PreviewURL: song.PreviewURL})
	}
}

// Package worker refines catalog audio features in the background from
// 30-second track previews.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/echolens-labs/echolens/internal/core/ports"
)

// Job names one catalog song whose preview should be analyzed.
type Job struct {
	SongID     string
	PreviewURL string
}

// Pool manages background workers for preview analysis.
type Pool struct {
	catalog ports.SongCatalog
	jobs    chan Job
	wg      sync.WaitGroup
	log     zerolog.Logger
}

// NewPool creates a worker pool with the given queue size.
func NewPool(catalog ports.SongCatalog, queueSize int, log zerolog.Logger) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		catalog: catalog,
		jobs:    make(chan Job, queueSize),
		log:     log.With().Str("component", "worker").Logger(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking; a full queue drops the job.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		p.log.Warn().Str("song_id", job.SongID).Msg("queue full, dropping job")
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		p.log.Debug().Str("song_id", job.SongID).Msg("no preview url, skipping")
		return
	}

	energy, err := AnalyzePreviewFunc(job.PreviewURL)
	if err != nil {
		p.log.Warn().Err(err).Str("song_id", job.SongID).Msg("preview analysis failed")
		return
	}

	ctx := context.Background()
	song, err := p.catalog.GetByID(ctx, job.SongID)
	if err != nil {
		p.log.Warn().Err(err).Str("song_id", job.SongID).Msg("song lookup failed")
		return
	}

	features := song.Features
	features.Energy = energy
	if err := p.catalog.UpdateFeatures(ctx, job.SongID, features); err != nil {
		p.log.Warn().Err(err).Str("song_id", job.SongID).Msg("feature update failed")
		return
	}
	p.log.Info().Str("song_id", job.SongID).Float64("energy", energy).Msg("preview energy updated")
}

package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/platform"
	"github.com/poiesic/recollect/storage"
)

// Report summarizes one batch run.
type Report struct {
	Processed int // posts enriched and upserted
	Failed    int // posts whose fetch or enrichment failed
	Skipped   int // posts already on record, or with no enrichable media
}

// BatchProcessor walks an owner's saved posts and enriches the ones that
// have no content record yet. Posts are worked concurrently on an ants
// pool; one post failing never aborts the batch.
type BatchProcessor struct {
	repository storage.ContentRepository
	source     platform.SavedPostSource
	fetcher    platform.MediaFetcher
	enricher   *Orchestrator
	pool       *ants.Pool
	logger     *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(p *BatchProcessor) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BatchOption {
	return func(p *BatchProcessor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(
	repository storage.ContentRepository,
	source platform.SavedPostSource,
	fetcher platform.MediaFetcher,
	enricher *Orchestrator,
	opts ...BatchOption,
) (*BatchProcessor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if enricher == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &BatchProcessor{
		repository: repository,
		source:     source,
		fetcher:    fetcher,
		enricher:   enricher,
		pool:       pool,
		logger:     slog.Default().With("component", "batch"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Process enriches the owner's unprocessed saved posts and returns a
// per-post tally. Only listing the saved posts can fail the whole call;
// everything after that is counted, logged, and carried on.
func (p *BatchProcessor) Process(ctx context.Context, owner string) (*Report, error) {
	posts, err := p.source.SavedPosts(ctx, owner)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report Report
	)

	for _, post := range posts {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			outcome := p.processPost(ctx, owner, post)

			mu.Lock()
			switch outcome {
			case outcomeProcessed:
				report.Processed++
			case outcomeFailed:
				report.Failed++
			case outcomeSkipped:
				report.Skipped++
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.Failed++
			mu.Unlock()
			p.logger.Error("error submitting post for processing", "post", post.Id, "err", submitErr)
		}
	}
	wg.Wait()

	return &report, nil
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeFailed
	outcomeSkipped
)

func (p *BatchProcessor) processPost(ctx context.Context, owner string, post core.SavedPost) outcome {
	// Already on record means already processed
	_, err := p.repository.FindByOwnerAndExternalID(ctx, owner, post.Id)
	if err == nil {
		return outcomeSkipped
	}
	if !errors.Is(err, storage.ErrNotFound) {
		p.logger.Error("error checking record", "post", post.Id, "err", err)
		return outcomeFailed
	}

	var kind PayloadKind
	switch post.MediaType {
	case core.MediaTypeImage:
		kind = PayloadKindImage
	case core.MediaTypeVideo:
		kind = PayloadKindAudio
	default:
		// Albums have no single enrichable payload
		return outcomeSkipped
	}

	payload, err := p.fetcher.Fetch(ctx, post.MediaURL)
	if err != nil {
		p.logger.Error("error fetching media", "post", post.Id, "err", err)
		return outcomeFailed
	}

	result, err := p.enricher.Enrich(ctx, kind, payload)
	if err != nil {
		p.logger.Error("error enriching post", "post", post.Id, "err", err)
		return outcomeFailed
	}

	fields := core.RecordUpsert{
		MediaType:  post.MediaType,
		MediaURL:   post.MediaURL,
		Permalink:  post.Permalink,
		Categories: &result.Suggestions.Categories,
		Tags:       &result.Suggestions.Tags,
	}
	if kind == PayloadKindImage {
		fields.ExtractedText = &result.Text
	} else {
		fields.Transcription = &result.Text
	}

	if _, err := p.repository.Upsert(ctx, owner, post.Id, fields); err != nil {
		p.logger.Error("error saving record", "post", post.Id, "err", err)
		return outcomeFailed
	}
	return outcomeProcessed
}

// Release releases the worker pool.
// The processor should not be used after calling Release.
func (p *BatchProcessor) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

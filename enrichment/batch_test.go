package enrichment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/recollect/ai/mock"
	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSource implements platform.SavedPostSource for testing
type testSource struct {
	posts []core.SavedPost
	err   error
}

func (s *testSource) SavedPosts(ctx context.Context, owner string) ([]core.SavedPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posts, nil
}

// testFetcher implements platform.MediaFetcher for testing
type testFetcher struct {
	payloads map[string][]byte
	failOn   string
}

func (f *testFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == f.failOn {
		return nil, errors.New("fetch failed")
	}
	if payload, ok := f.payloads[url]; ok {
		return payload, nil
	}
	return []byte("media bytes"), nil
}

func testPosts() []core.SavedPost {
	now := time.Now().UTC()
	return []core.SavedPost{
		{Id: "p1", MediaType: core.MediaTypeImage, MediaURL: "https://cdn/p1.jpg", Permalink: "https://ig/p1", Timestamp: now},
		{Id: "p2", MediaType: core.MediaTypeVideo, MediaURL: "https://cdn/p2.mp4", Permalink: "https://ig/p2", Timestamp: now},
		{Id: "p3", MediaType: core.MediaTypeAlbum, MediaURL: "https://cdn/p3.jpg", Permalink: "https://ig/p3", Timestamp: now},
	}
}

func newTestProcessor(t *testing.T, source *testSource, fetcher *testFetcher) (*BatchProcessor, *badger.Backend, func()) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	orch, err := NewOrchestrator(mock.NewMockProvider())
	require.NoError(t, err)

	proc, err := NewBatchProcessor(repo, source, fetcher, orch, WithPoolSize(2))
	require.NoError(t, err)

	cleanup := func() {
		proc.Release()
		repo.Close()
		backend.Close()
	}
	return proc, backend, cleanup
}

func TestBatchProcess(t *testing.T) {
	source := &testSource{posts: testPosts()}
	fetcher := &testFetcher{}
	proc, _, cleanup := newTestProcessor(t, source, fetcher)
	defer cleanup()

	ctx := context.Background()
	report, err := proc.Process(ctx, "alice")
	require.NoError(t, err)

	// Image and video get enriched, the album is skipped
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 1, report.Skipped)

	records, err := proc.repository.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)

	image, err := proc.repository.FindByOwnerAndExternalID(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, image.ExtractedText)
	assert.Empty(t, image.Transcription)

	video, err := proc.repository.FindByOwnerAndExternalID(ctx, "alice", "p2")
	require.NoError(t, err)
	assert.NotEmpty(t, video.Transcription)
	assert.Empty(t, video.ExtractedText)
}

func TestBatchProcessSkipsExistingRecords(t *testing.T) {
	source := &testSource{posts: testPosts()}
	fetcher := &testFetcher{}
	proc, _, cleanup := newTestProcessor(t, source, fetcher)
	defer cleanup()

	ctx := context.Background()

	_, err := proc.repository.Upsert(ctx, "alice", "p1", core.RecordUpsert{MediaType: core.MediaTypeImage})
	require.NoError(t, err)

	report, err := proc.Process(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 2, report.Skipped) // existing p1 + album p3
}

func TestBatchProcessOneFailureDoesNotAbort(t *testing.T) {
	source := &testSource{posts: testPosts()}
	fetcher := &testFetcher{failOn: "https://cdn/p1.jpg"}
	proc, _, cleanup := newTestProcessor(t, source, fetcher)
	defer cleanup()

	ctx := context.Background()
	report, err := proc.Process(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)

	// The failing post left no record behind
	_, err = proc.repository.FindByOwnerAndExternalID(ctx, "alice", "p1")
	assert.Error(t, err)

	// The healthy post still made it
	_, err = proc.repository.FindByOwnerAndExternalID(ctx, "alice", "p2")
	assert.NoError(t, err)
}

func TestBatchProcessListingFailureAborts(t *testing.T) {
	source := &testSource{err: errors.New("upstream down")}
	fetcher := &testFetcher{}
	proc, _, cleanup := newTestProcessor(t, source, fetcher)
	defer cleanup()

	_, err := proc.Process(context.Background(), "alice")
	assert.Error(t, err)
}

func TestBatchProcessIsIdempotent(t *testing.T) {
	source := &testSource{posts: testPosts()}
	fetcher := &testFetcher{}
	proc, _, cleanup := newTestProcessor(t, source, fetcher)
	defer cleanup()

	ctx := context.Background()

	first, err := proc.Process(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)

	second, err := proc.Process(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 3, second.Skipped)
}

func TestNewBatchProcessorValidation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	orch, err := NewOrchestrator(mock.NewMockProvider())
	require.NoError(t, err)

	_, err = NewBatchProcessor(nil, &testSource{}, &testFetcher{}, orch)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewBatchProcessor(repo, nil, &testFetcher{}, orch)
	assert.ErrorIs(t, err, ErrSourceRequired)

	_, err = NewBatchProcessor(repo, &testSource{}, nil, orch)
	assert.ErrorIs(t, err, ErrFetcherRequired)

	_, err = NewBatchProcessor(repo, &testSource{}, &testFetcher{}, nil)
	assert.ErrorIs(t, err, ErrProviderRequired)
}

package enrichment

import "errors"

var (
	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrRepositoryRequired is returned when a content repository is not provided.
	ErrRepositoryRequired = errors.New("content repository required")

	// ErrSourceRequired is returned when a saved-post source is not provided.
	ErrSourceRequired = errors.New("saved-post source required")

	// ErrFetcherRequired is returned when a media fetcher is not provided.
	ErrFetcherRequired = errors.New("media fetcher required")

	// ErrUnknownPayloadKind is returned for a payload kind the pipeline
	// has no stage for.
	ErrUnknownPayloadKind = errors.New("unknown payload kind")
)

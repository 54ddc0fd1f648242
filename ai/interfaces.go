package ai

import "context"

// TextExtractor converts an image payload into plain text.
// Implementations must be thread-safe for concurrent use.
type TextExtractor interface {
	// ExtractText performs optical text recognition on the given image bytes.
	// The call is blocking and may be slow; it carries no internal retries.
	// Returns an error wrapping ErrExtractionFailed on any processing fault
	// (corrupt image, unsupported format, engine failure).
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// Transcriber converts an audio payload into plain text.
// Implementations must be thread-safe for concurrent use.
type Transcriber interface {
	// Transcribe produces a transcript of the given audio bytes.
	// The target spoken language is fixed by configuration, not negotiated
	// per call. Returns an error wrapping ErrTranscriptionFailed on any
	// processing fault.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Classifier converts plain text into suggested categories and tags.
// Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// Classify analyzes text and suggests general categories (expected 1-3)
	// and specific tags (expected 3-5). A malformed or unparseable service
	// response is indistinguishable from a service failure: both return an
	// error wrapping ErrClassificationFailed.
	Classify(ctx context.Context, text string) (Suggestions, error)
}

// Provider aggregates the enrichment services for convenient initialization
// and lifecycle management. A provider creates and manages TextExtractor,
// Transcriber, and Classifier instances, ensuring they share configuration
// and resources appropriately.
type Provider interface {
	// TextExtractor returns the image text recognition service.
	TextExtractor() TextExtractor

	// Transcriber returns the audio transcription service.
	Transcriber() Transcriber

	// Classifier returns the text classification service.
	Classifier() Classifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}

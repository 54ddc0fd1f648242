package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/poiesic/recollect/ai"
)

// MockTranscriber is a test double for ai.Transcriber.
// It allows custom behavior injection via function fields.
type MockTranscriber struct {
	// TranscribeFunc is called by Transcribe if set.
	// If nil, a deterministic placeholder transcript is returned.
	TranscribeFunc func(ctx context.Context, audio []byte) (string, error)

	// callCount is atomic: batch processing calls mocks from pool workers.
	callCount atomic.Int64
}

// NewMockTranscriber creates a mock transcriber with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe returns a deterministic placeholder derived from the payload
// size, or delegates to TranscribeFunc when set.
func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	m.callCount.Add(1)

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audio)
	}

	if len(audio) == 0 {
		return "", fmt.Errorf("%w: empty audio", ai.ErrTranscriptionFailed)
	}
	return fmt.Sprintf("mock transcription (%d bytes)", len(audio)), nil
}

// CallCount returns the number of times Transcribe was called.
func (m *MockTranscriber) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockTranscriber) Reset() {
	m.callCount.Store(0)
	m.TranscribeFunc = nil
}

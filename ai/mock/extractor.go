package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/poiesic/recollect/ai"
)

// MockTextExtractor is a test double for ai.TextExtractor.
// It allows custom behavior injection via function fields.
type MockTextExtractor struct {
	// ExtractTextFunc is called by ExtractText if set.
	// If nil, a deterministic placeholder transcript is returned.
	ExtractTextFunc func(ctx context.Context, image []byte) (string, error)

	// callCount is atomic: batch processing calls mocks from pool workers.
	callCount atomic.Int64
}

// NewMockTextExtractor creates a mock text extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockTextExtractor() *MockTextExtractor {
	return &MockTextExtractor{}
}

// ExtractText returns a deterministic placeholder derived from the payload
// size, or delegates to ExtractTextFunc when set.
func (m *MockTextExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	m.callCount.Add(1)

	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, image)
	}

	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image", ai.ErrExtractionFailed)
	}
	return fmt.Sprintf("mock extracted text (%d bytes)", len(image)), nil
}

// CallCount returns the number of times ExtractText was called.
func (m *MockTextExtractor) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockTextExtractor) Reset() {
	m.callCount.Store(0)
	m.ExtractTextFunc = nil
}

package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/poiesic/recollect/ai"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses simple word-based suggestion extraction.
	ClassifyFunc func(ctx context.Context, text string) (ai.Suggestions, error)

	// callCount is atomic: batch processing calls mocks from pool workers.
	callCount atomic.Int64
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify produces simple deterministic suggestions from the text.
// Default behavior: the first word becomes the category, the first few
// distinct words become tags.
func (m *MockClassifier) Classify(ctx context.Context, text string) (ai.Suggestions, error) {
	m.callCount.Add(1)

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return ai.EmptySuggestions(), nil
	}

	suggestions := ai.Suggestions{
		Categories: []string{strings.Trim(words[0], ".,!?;:\"'()[]{}")},
		Tags:       make([]string, 0, 5),
	}
	for _, word := range words {
		if len(suggestions.Tags) >= 5 {
			break
		}
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" {
			continue
		}
		suggestions.Tags = append(suggestions.Tags, word)
	}

	return suggestions, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockClassifier) Reset() {
	m.callCount.Store(0)
	m.ClassifyFunc = nil
}

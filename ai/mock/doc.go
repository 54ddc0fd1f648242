// Package mock provides test double implementations of the enrichment
// service interfaces.
//
// This package contains mock implementations of ai.TextExtractor,
// ai.Transcriber, ai.Classifier, and ai.Provider for use in unit tests. The
// mocks allow tests to run without external services and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	text, err := mockProvider.TextExtractor().ExtractText(ctx, imageBytes)
//
//	// Custom behavior injection
//	mockCls := mock.NewMockClassifier()
//	mockCls.ClassifyFunc = func(ctx context.Context, text string) (ai.Suggestions, error) {
//	    return ai.Suggestions{Categories: []string{"Groceries"}, Tags: []string{"milk"}}, nil
//	}
//
//	// Check call counts
//	count := mockCls.CallCount()
//
// # Default Behavior
//
//   - MockTextExtractor / MockTranscriber: deterministic placeholder text
//     derived from the payload size
//   - MockClassifier: simple word-based category/tag extraction
//   - MockProvider: aggregates the three
package mock

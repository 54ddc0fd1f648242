// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/recollect/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock extractor, transcriber, and classifier instances.
type MockProvider struct {
	extractor   *MockTextExtractor
	transcriber *MockTranscriber
	classifier  *MockClassifier
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockExtractor()/GetMockTranscriber()/GetMockClassifier() to access
// concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		extractor:   NewMockTextExtractor(),
		transcriber: NewMockTranscriber(),
		classifier:  NewMockClassifier(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services. This allows full control over the behavior of each service.
func NewMockProviderWithServices(extractor *MockTextExtractor, transcriber *MockTranscriber, classifier *MockClassifier) ai.Provider {
	return &MockProvider{
		extractor:   extractor,
		transcriber: transcriber,
		classifier:  classifier,
	}
}

// TextExtractor returns the mock text extractor.
func (p *MockProvider) TextExtractor() ai.TextExtractor {
	return p.extractor
}

// Transcriber returns the mock transcriber.
func (p *MockProvider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// Classifier returns the mock classifier.
func (p *MockProvider) Classifier() ai.Classifier {
	return p.classifier
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockExtractor returns the underlying mock extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockTextExtractor {
	return p.extractor
}

// GetMockTranscriber returns the underlying mock transcriber for test assertions.
func (p *MockProvider) GetMockTranscriber() *MockTranscriber {
	return p.transcriber
}

// GetMockClassifier returns the underlying mock classifier for test assertions.
func (p *MockProvider) GetMockClassifier() *MockClassifier {
	return p.classifier
}

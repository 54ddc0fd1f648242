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


// Package ai provides abstractions for the external enrichment services.
//
// This package defines interfaces for the three service calls the content
// pipeline depends on: optical text recognition on images, audio
// transcription, and category/tag classification of derived text. It follows
// the dependency inversion principle, allowing the orchestration and storage
// logic to depend on abstractions rather than concrete implementations, and
// making every service substitutable with a fake at construction time.
//
// # Design Principles
//
// The package is designed around four interfaces:
//
//   - TextExtractor: converts image bytes into plain text
//   - Transcriber: converts audio bytes into plain text
//   - Classifier: converts plain text into category/tag suggestions
//   - Provider: aggregates the three for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewClassifier, etc.)
// return INTERFACE types to enforce abstraction and prevent accidental
// coupling to concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockClassifier and friends) return
// CONCRETE types to enable behavior injection and call-count assertions.
//
//	mockCls := mock.NewMockClassifier()
//	mockCls.ClassifyFunc = func(...) (ai.Suggestions, error) { ... }
//	count := mockCls.CallCount()
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.TextExtractor().ExtractText(ctx, imageBytes)
//	suggestions, err := provider.Classifier().Classify(ctx, text)
package ai

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


package openai

import (
	"log/slog"

	"github.com/poiesic/recollect/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the text extractor, transcriber, and classifier instances.
type Provider struct {
	config      *ai.Config
	extractor   *TextExtractor
	transcriber *Transcriber
	classifier  *Classifier
	logger      *slog.Logger
}

// NewProvider creates a new enrichment provider backed by OpenAI-compatible
// services. The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction and
// prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	extractor, err := newTextExtractor(config)
	if err != nil {
		return nil, err
	}

	transcriber, err := newTranscriber(config)
	if err != nil {
		return nil, err
	}

	classifier, err := newClassifier(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:      config,
		extractor:   extractor,
		transcriber: transcriber,
		classifier:  classifier,
		logger:      slog.Default().With("component", "openai-provider"),
	}, nil
}

// TextExtractor returns the image text recognition service.
func (p *Provider) TextExtractor() ai.TextExtractor {
	return p.extractor
}

// Transcriber returns the audio transcription service.
func (p *Provider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// Classifier returns the text classification service.
func (p *Provider) Classifier() ai.Classifier {
	return p.classifier
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}

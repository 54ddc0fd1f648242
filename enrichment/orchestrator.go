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


package enrichment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/recollect/ai"
	"github.com/poiesic/recollect/core"
)

// PayloadKind selects which text-producing stage a payload runs through.
type PayloadKind int

const (
	// PayloadKindImage routes the payload through text extraction (OCR).
	PayloadKindImage PayloadKind = iota + 1
	// PayloadKindAudio routes the payload through transcription.
	PayloadKindAudio
)

// Result is the outcome of one enrichment call: the text produced by the
// media stage plus the classifier's suggestions for it.
type Result struct {
	Text        string
	Suggestions ai.Suggestions
}

// Orchestrator runs a media payload through exactly one text-producing
// stage and then classification.
//
// The two halves fail differently on purpose. Extraction and transcription
// errors abort the call: without text there is nothing worth persisting.
// Classification errors never abort: the text itself is the valuable part,
// so a broken classifier degrades to empty suggestions and the caller still
// gets its text. No stage is retried.
type Orchestrator struct {
	provider ai.Provider
	logger   *slog.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithOrchestratorLogger sets a custom logger.
// Default is slog.Default().
func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// NewOrchestrator creates an enrichment orchestrator.
func NewOrchestrator(provider ai.Provider, opts ...OrchestratorOption) (*Orchestrator, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	o := &Orchestrator{
		provider: provider,
		logger:   slog.Default().With("component", "enrichment"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Enrich runs the payload through the stage selected by kind, then
// classifies the resulting text.
func (o *Orchestrator) Enrich(ctx context.Context, kind PayloadKind, payload []byte) (*Result, error) {
	if len(payload) == 0 {
		return nil, core.ErrEmptyPayload
	}

	var text string
	var err error

	switch kind {
	case PayloadKindImage:
		text, err = o.provider.TextExtractor().ExtractText(ctx, payload)
	case PayloadKindAudio:
		text, err = o.provider.Transcriber().Transcribe(ctx, payload)
	default:
		return nil, ErrUnknownPayloadKind
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:        text,
		Suggestions: o.classify(ctx, text),
	}, nil
}

// classify wraps the classifier in the fail-open policy: any classifier
// error, and text with nothing to classify, yields empty suggestions.
func (o *Orchestrator) classify(ctx context.Context, text string) ai.Suggestions {
	if strings.TrimSpace(text) == "" {
		return ai.EmptySuggestions()
	}

	suggestions, err := o.provider.Classifier().Classify(ctx, text)
	if err != nil {
		o.logger.Warn("classification failed, continuing without suggestions", "err", err)
		return ai.EmptySuggestions()
	}
	return suggestions
}

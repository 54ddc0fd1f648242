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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/recollect/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// suggestionsPayload matches the JSON structure the model is instructed to emit.
type suggestionsPayload struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new classifier using the provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// Classify suggests categories and tags for the given text using an LLM.
// One service call per invocation; a malformed response is reported as a
// classification failure rather than re-asked.
func (c *Classifier) Classify(ctx context.Context, text string) (ai.Suggestions, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(classificationPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return ai.Suggestions{}, fmt.Errorf("%w: %w", ai.ErrClassificationFailed, err)
	}

	if len(response.Choices) < 1 {
		c.logger.Debug("no choices returned from model")
		return ai.Suggestions{}, fmt.Errorf("%w: %w", ai.ErrClassificationFailed, ai.ErrMalformedResponse)
	}

	suggestions, err := parseSuggestions(response.Choices[0].Content)
	if err != nil {
		c.logger.Warn("error parsing classifier response", "err", err)
		return ai.Suggestions{}, fmt.Errorf("%w: %w", ai.ErrClassificationFailed, err)
	}

	c.logger.Debug("classified text",
		"categories", len(suggestions.Categories),
		"tags", len(suggestions.Tags))

	return suggestions, nil
}

// parseSuggestions extracts a Suggestions value from the raw model output.
// Markdown code fences are stripped and common JSON issues repaired before
// parsing; a response missing either expected key is malformed.
func parseSuggestions(raw string) (ai.Suggestions, error) {
	responseText := strings.TrimSpace(raw)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	responseText = repairJSON(responseText)

	var payload suggestionsPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		return ai.Suggestions{}, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	if payload.Categories == nil || payload.Tags == nil {
		return ai.Suggestions{}, fmt.Errorf("%w: missing categories or tags key", ai.ErrMalformedResponse)
	}

	return ai.Suggestions{
		Categories: payload.Categories,
		Tags:       payload.Tags,
	}, nil
}

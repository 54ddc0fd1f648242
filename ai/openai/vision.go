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
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/poiesic/recollect/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TextExtractor implements ai.TextExtractor using an OpenAI-compatible
// multimodal chat API. The image is sent to a vision-capable model with a
// transcription instruction; the model's reply is the extracted text.
type TextExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newTextExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTextExtractor(config *ai.Config) (*TextExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.VisionModel),
	)
	if err != nil {
		return nil, err
	}

	return &TextExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-vision"),
	}, nil
}

// NewTextExtractor creates a new vision-backed text extractor.
//
// Returns ai.TextExtractor interface to enforce abstraction.
func NewTextExtractor(config *ai.Config) (ai.TextExtractor, error) {
	return newTextExtractor(config)
}

// ExtractText performs optical text recognition on the given image bytes.
func (e *TextExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image", ai.ErrExtractionFailed)
	}

	mimeType := http.DetectContentType(image)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: unsupported payload type %s", ai.ErrExtractionFailed, mimeType)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(extractionPrompt),
				llms.BinaryPart(mimeType, image),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Error("vision model call failed", "err", err)
		return "", fmt.Errorf("%w: %w", ai.ErrExtractionFailed, err)
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("%w: no choices returned from model", ai.ErrExtractionFailed)
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	e.logger.Debug("extracted text from image", "bytes", len(image), "chars", len(text))
	return text, nil
}

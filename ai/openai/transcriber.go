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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/poiesic/recollect/ai"
)

// Transcriber implements ai.Transcriber against the OpenAI-compatible
// /audio/transcriptions endpoint. langchaingo does not cover the audio API,
// so the multipart request is issued directly.
type Transcriber struct {
	endpoint   string
	model      string
	language   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// newTranscriber is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTranscriber(config *ai.Config) (*Transcriber, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Transcriber{
		endpoint:   config.TranscriptionHost + "/audio/transcriptions",
		model:      config.TranscriptionModel,
		language:   config.Language,
		token:      config.APIToken,
		httpClient: &http.Client{},
		logger:     slog.Default().With("component", "openai-transcriber"),
	}, nil
}

// NewTranscriber creates a new speech-to-text transcriber.
//
// Returns ai.Transcriber interface to enforce abstraction.
func NewTranscriber(config *ai.Config) (ai.Transcriber, error) {
	return newTranscriber(config)
}

// Transcribe produces a transcript of the given audio bytes.
// The target language is the configured one; response_format=text keeps the
// response body free of JSON framing.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("%w: empty audio", ai.ErrTranscriptionFailed)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.mp3")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	if err := writer.WriteField("model", t.model); err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	if err := writer.WriteField("language", t.language); err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	if err := writer.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Error("transcription request failed", "err", err)
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ai.ErrTranscriptionFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.logger.Error("transcription service returned error",
			"status", resp.StatusCode,
			"body", truncateForLog(string(respBody)))
		return "", fmt.Errorf("%w: service returned status %d", ai.ErrTranscriptionFailed, resp.StatusCode)
	}

	transcript := strings.TrimSpace(string(respBody))
	t.logger.Debug("transcribed audio", "bytes", len(audio), "chars", len(transcript))
	return transcript, nil
}

// truncateForLog limits error bodies included in log output.
func truncateForLog(s string) string {
	const maxLen = 512
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

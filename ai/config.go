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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the enrichment service providers.
type Config struct {
	// Host is the base URL of the OpenAI-compatible API serving the vision
	// and classification models.
	// Example: "http://localhost:11434/v1" for a local server
	Host string

	// TranscriptionHost is the base URL of the audio transcription API.
	// Defaults to Host when empty.
	TranscriptionHost string

	// ClassifierModel is the model identifier used for category/tag
	// suggestions. Example: "qwen2.5:3b", "gpt-4o-mini"
	ClassifierModel string

	// VisionModel is the multimodal model identifier used for optical text
	// recognition. Example: "llava:13b", "gpt-4o-mini"
	VisionModel string

	// TranscriptionModel is the speech-to-text model identifier.
	// Example: "whisper-1"
	TranscriptionModel string

	// Language is the fixed target spoken language for transcription,
	// as an ISO 639-1 code. Not negotiated per call.
	Language string

	// APIToken authenticates against the services. Local OpenAI-compatible
	// servers generally accept any value; "none" works for those.
	APIToken string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the base URL for the vision and classification services.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithTranscriptionHost sets a separate base URL for the transcription service.
func WithTranscriptionHost(host string) ConfigOption {
	return func(c *Config) {
		c.TranscriptionHost = host
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithVisionModel sets the vision model identifier used for text extraction.
func WithVisionModel(model string) ConfigOption {
	return func(c *Config) {
		c.VisionModel = model
	}
}

// WithTranscriptionModel sets the speech-to-text model identifier.
func WithTranscriptionModel(model string) ConfigOption {
	return func(c *Config) {
		c.TranscriptionModel = model
	}
}

// WithLanguage sets the fixed transcription target language.
func WithLanguage(language string) ConfigOption {
	return func(c *Config) {
		c.Language = language
	}
}

// WithAPIToken sets the API authentication token.
func WithAPIToken(token string) ConfigOption {
	return func(c *Config) {
		c.APIToken = token
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. The default language matches the deployment
// this system was built for.
func DefaultConfig() *Config {
	return &Config{
		Host:               "http://localhost:11434/v1",
		ClassifierModel:    "qwen2.5:3b",
		VisionModel:        "llava:13b",
		TranscriptionModel: "whisper-1",
		Language:           "es",
		APIToken:           "none",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithClassifierModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to hosts if missing, which is required by most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc), and defaults the
// transcription host to the main host.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
	if c.TranscriptionHost == "" {
		c.TranscriptionHost = c.Host
	}
	if c.TranscriptionHost != "" && !strings.HasSuffix(c.TranscriptionHost, "/v1") {
		c.TranscriptionHost = strings.TrimSuffix(c.TranscriptionHost, "/")
		c.TranscriptionHost = c.TranscriptionHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.VisionModel == "" {
		return errors.New("ai config: VisionModel is required")
	}
	if c.TranscriptionModel == "" {
		return errors.New("ai config: TranscriptionModel is required")
	}
	if c.Language == "" {
		return errors.New("ai config: Language is required")
	}
	return nil
}

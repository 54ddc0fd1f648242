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


// Package openai provides enrichment service implementations using
// OpenAI-compatible APIs.
//
// This package implements the ai.Provider interface. Classification and
// optical text recognition go through the langchaingo library against the
// chat completions endpoint (the vision model receiving the image as a
// binary content part); audio transcription talks to the
// /audio/transcriptions endpoint directly, since langchaingo does not wrap
// the audio API.
//
// All three services work equally against OpenAI itself or local
// OpenAI-compatible servers (Ollama, LocalAI, vLLM, faster-whisper-server).
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithClassifierModel("qwen2.5:3b"),
//	    ai.WithVisionModel("llava:13b"),
//	)
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.TextExtractor().ExtractText(ctx, imageBytes)
//	suggestions, err := provider.Classifier().Classify(ctx, text)
package openai
